package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"denogotchi/internal/pet"
)

// How often the loop samples the machine. The machine runs on absolute
// deadlines, so this only bounds display latency.
const frameTickInterval = 100 * time.Millisecond

type frameTickMsg time.Time

// menu entries in display order.
var menuActions = []struct {
	label  string
	action pet.Action
}{
	{"Feed", pet.ActionFeed},
	{"Play", pet.ActionPlay},
	{"Cuddle", pet.ActionCuddle},
	{"Reset", pet.ActionReset},
	{"Power off", ""},
	{"Quit", ""},
}

const (
	menuPower = 4
	menuQuit  = 5
)

// Model is the bubbletea shell around the pet machine. All game state lives
// in the machine; the model only tracks menu position and exit flags.
type Model struct {
	Machine     *pet.Machine
	Choice      int
	Quitting    bool
	PoweringOff bool
}

// NewModel wraps a machine for the TUI.
func NewModel(m *pet.Machine) Model {
	return Model{Machine: m}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return frameTick()
}

func frameTick() tea.Cmd {
	return tea.Tick(frameTickInterval, func(t time.Time) tea.Msg {
		return frameTickMsg(t)
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case frameTickMsg:
		m.Machine.Tick(time.Time(msg))
		return m, frameTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m.quit(false)
	}

	snap := m.Machine.Snapshot()

	if snap.Dead {
		switch msg.String() {
		case "r", "enter", " ":
			m.Machine.HandleAction(pet.ActionReset)
		}
		return m, nil
	}

	// The machine rejects actions while locked too; gating here keeps the
	// menu from even dispatching them.
	if snap.Locked {
		return m, nil
	}

	switch msg.String() {
	case "f":
		m.Machine.HandleAction(pet.ActionFeed)
	case "p":
		m.Machine.HandleAction(pet.ActionPlay)
	case "c":
		m.Machine.HandleAction(pet.ActionCuddle)
	case "up", "k":
		if m.Choice > 0 {
			m.Choice--
		}
	case "down", "j":
		if m.Choice < len(menuActions)-1 {
			m.Choice++
		}
	case "enter", " ":
		switch m.Choice {
		case menuPower:
			return m.quit(true)
		case menuQuit:
			return m.quit(false)
		default:
			m.Machine.HandleAction(menuActions[m.Choice].action)
		}
	}
	return m, nil
}

// quit flushes a final save before the program exits. Power-off additionally
// signals the host to run the shutdown sequence.
func (m Model) quit(powerOff bool) (tea.Model, tea.Cmd) {
	m.Machine.Save()
	m.Quitting = true
	m.PoweringOff = powerOff
	return m, tea.Quit
}
