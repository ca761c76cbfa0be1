package ui

import (
	"math/rand"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"denogotchi/internal/pet"
)

func newTestModel(t *testing.T, st pet.State) Model {
	t.Helper()
	cfg := pet.DefaultConfig()
	cfg.Rand = rand.New(rand.NewSource(1))
	store := pet.NewStore(filepath.Join(t.TempDir(), "save.json"))
	return NewModel(pet.NewMachine(st, store, cfg))
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestHotkeyDispatchesAction(t *testing.T) {
	m := newTestModel(t, pet.DefaultState())

	next, _ := m.Update(keyMsg("f"))
	m = next.(Model)

	snap := m.Machine.Snapshot()
	if snap.Sprite != pet.SpriteFeed || !snap.Locked {
		t.Errorf("f did not start feeding: %+v", snap)
	}
}

func TestMenuNavigationBounds(t *testing.T) {
	m := newTestModel(t, pet.DefaultState())

	next, _ := m.Update(keyMsg("up"))
	m = next.(Model)
	if m.Choice != 0 {
		t.Errorf("choice went above the first entry: %d", m.Choice)
	}

	for i := 0; i < len(menuActions)+3; i++ {
		next, _ = m.Update(keyMsg("down"))
		m = next.(Model)
	}
	if m.Choice != len(menuActions)-1 {
		t.Errorf("choice went past the last entry: %d", m.Choice)
	}
}

func TestMenuEnterDispatchesSelection(t *testing.T) {
	m := newTestModel(t, pet.DefaultState())

	// Second entry is Play
	next, _ := m.Update(keyMsg("down"))
	m = next.(Model)
	next, _ = m.Update(keyMsg("enter"))
	m = next.(Model)

	if snap := m.Machine.Snapshot(); snap.Sprite != pet.SpritePlay {
		t.Errorf("enter on Play gave sprite %s", snap.Sprite)
	}
}

func TestQuitKeySavesAndQuits(t *testing.T) {
	m := newTestModel(t, pet.DefaultState())

	next, cmd := m.Update(keyMsg("q"))
	m = next.(Model)

	if !m.Quitting || m.PoweringOff {
		t.Errorf("q should quit without power-off: %+v", m)
	}
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
}

func TestPowerOffMenuEntry(t *testing.T) {
	m := newTestModel(t, pet.DefaultState())
	m.Choice = menuPower

	next, cmd := m.Update(keyMsg("enter"))
	m = next.(Model)

	if !m.Quitting || !m.PoweringOff {
		t.Errorf("power entry should quit with power-off: %+v", m)
	}
	if cmd == nil {
		t.Fatal("power off returned no command")
	}
}

func TestDeadPetKeysResetOnly(t *testing.T) {
	st := pet.DefaultState()
	st.Dead = true
	m := newTestModel(t, st)

	next, _ := m.Update(keyMsg("f"))
	m = next.(Model)
	if !m.Machine.Snapshot().Dead {
		t.Fatal("feed key revived a dead pet")
	}

	next, _ = m.Update(keyMsg("r"))
	m = next.(Model)
	if m.Machine.Snapshot().Dead {
		t.Error("r did not reset a dead pet")
	}
}

func TestKeysIgnoredWhileLocked(t *testing.T) {
	m := newTestModel(t, pet.DefaultState())

	next, _ := m.Update(keyMsg("f"))
	m = next.(Model)
	xp := m.Machine.State().XP

	next, _ = m.Update(keyMsg("p"))
	m = next.(Model)
	if got := m.Machine.State().XP; got != xp {
		t.Errorf("locked machine accepted a key, xp %d -> %d", xp, got)
	}
}

func TestFrameTickAdvancesMachine(t *testing.T) {
	m := newTestModel(t, pet.DefaultState())
	before := m.Machine.State()

	next, cmd := m.Update(frameTickMsg(time.Now().Add(11 * time.Second)))
	m = next.(Model)

	if cmd == nil {
		t.Fatal("frame tick did not re-arm")
	}
	if got := m.Machine.State().Hunger; got != before.Hunger-1 {
		t.Errorf("tick did not decay, hunger %d -> %d", before.Hunger, got)
	}
}

func TestViewRendersCoreSections(t *testing.T) {
	m := newTestModel(t, pet.DefaultState())
	out := m.View()

	for _, want := range []string{"Deno", "Hunger", "Feed", "Quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestViewDead(t *testing.T) {
	st := pet.DefaultState()
	st.Dead = true
	m := newTestModel(t, st)

	out := m.View()
	if !strings.Contains(out, "died") {
		t.Error("dead view has no death notice")
	}
	if strings.Contains(out, "Feed") {
		t.Error("dead view still shows the action menu")
	}
}
