package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"denogotchi/internal/pet"
)

var gameStyles = struct {
	title    lipgloss.Style
	sprite   lipgloss.Style
	bar      lipgloss.Style
	dialog   lipgloss.Style
	menu     lipgloss.Style
	disabled lipgloss.Style
	help     lipgloss.Style
}{
	title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7EE787")).
		Padding(0, 1),

	sprite: lipgloss.NewStyle().
		Padding(0, 2),

	bar: lipgloss.NewStyle().
		Width(40),

	dialog: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#C8C8C8")).
		Padding(0, 1),

	menu: lipgloss.NewStyle().
		Padding(0, 2),

	disabled: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666666")),

	help: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")),
}

var bucketColors = map[pet.Bucket]lipgloss.Color{
	pet.BucketGreen:  lipgloss.Color("#3CAA5A"),
	pet.BucketOrange: lipgloss.Color("#C8AA3C"),
	pet.BucketRed:    lipgloss.Color("#C85046"),
}

// View implements tea.Model.
func (m Model) View() string {
	if m.PoweringOff {
		return "Saving and powering off...\n"
	}
	if m.Quitting {
		return "Bye! Deno will miss you.\n"
	}

	snap := m.Machine.Snapshot()
	if snap.Dead {
		return m.deadView(snap)
	}

	sections := []string{
		gameStyles.title.Render(headerLine(snap)),
		gameStyles.sprite.Render(Frame(snap.Phase, snap.Sprite, snap.FrameIndex)),
		renderBars(snap),
	}

	if snap.Message != "" {
		sections = append(sections, "", gameStyles.dialog.Render(snap.Message))
	}

	sections = append(sections,
		"",
		m.renderMenu(snap),
		"",
		gameStyles.help.Render("f/p/c act • arrows+enter menu • q quit"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func headerLine(snap pet.Snapshot) string {
	xpText := "MAX"
	if snap.Level < pet.MaxLevel {
		xpText = fmt.Sprintf("%d/%d", snap.XP, snap.XPNeeded)
	}
	return fmt.Sprintf("🦖 Deno  Level %d (%s)  XP %s", snap.Level, snap.Phase, xpText)
}

func renderBars(snap pet.Snapshot) string {
	bars := []struct {
		label  string
		value  int
		bucket pet.Bucket
	}{
		{"Hunger", snap.Hunger, snap.HungerBucket},
		{"Happiness", snap.Happiness, snap.HappinessBucket},
		{"Love", snap.Love, snap.LoveBucket},
		{"Energy", snap.Energy, snap.EnergyBucket},
	}

	lines := make([]string, 0, len(bars))
	for _, b := range bars {
		fill := lipgloss.NewStyle().Foreground(bucketColors[b.bucket])
		lines = append(lines, fmt.Sprintf("%-10s %s %3d%%", b.label, fill.Render(statBar(b.value)), b.value))
	}
	return gameStyles.bar.Render(strings.Join(lines, "\n"))
}

func statBar(value int) string {
	filled := value / 10
	var sb strings.Builder
	for i := 0; i < 10; i++ {
		if i < filled {
			sb.WriteString("█")
		} else {
			sb.WriteString("░")
		}
	}
	return sb.String()
}

func (m Model) renderMenu(snap pet.Snapshot) string {
	rules := pet.DefaultRules()

	items := make([]string, 0, len(menuActions))
	for i, entry := range menuActions {
		cursor := " "
		if m.Choice == i {
			cursor = ">"
		}

		label := entry.label
		style := lipgloss.NewStyle()

		if rule, ok := rules[entry.action]; ok && entry.action != "" {
			if rule.Cost > 0 {
				label = fmt.Sprintf("%s (%d)", entry.label, rule.Cost)
			}
			if snap.Locked || snap.Energy < rule.Cost {
				style = gameStyles.disabled
			}
		}
		if entry.action == pet.ActionReset {
			// Reset only does something once the pet is gone.
			style = gameStyles.disabled
		}

		items = append(items, fmt.Sprintf("%s %s", cursor, style.Render(label)))
	}
	return gameStyles.menu.Render(strings.Join(items, "\n"))
}

func (m Model) deadView(snap pet.Snapshot) string {
	sections := []string{
		gameStyles.title.Render("💀 Deno 💀"),
		gameStyles.sprite.Render(Frame(snap.Phase, pet.SpriteDead, 0)),
	}
	if snap.Message != "" {
		sections = append(sections, gameStyles.dialog.Render(snap.Message))
	}
	sections = append(sections,
		"",
		gameStyles.help.Render(fmt.Sprintf("Deno died at level %d (%s).", snap.Level, snap.Phase)),
		gameStyles.help.Render("Press r to adopt a new Deno, q to quit."),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// StatusCard renders a one-shot snapshot of a loaded state, for the status
// subcommand. No machine, no mutation.
func StatusCard(st pet.State) string {
	xpText := "MAX"
	if st.Level < pet.MaxLevel {
		xpText = fmt.Sprintf("%d/%d", st.XP, pet.XPNeeded(st.Level))
	}

	var sb strings.Builder
	if st.Dead {
		sb.WriteString("💀 Deno has passed away.\n")
	} else {
		sb.WriteString("🦖 Deno\n")
	}
	sb.WriteString(Frame(st.Phase(), spriteFor(st), 0))
	sb.WriteString(fmt.Sprintf("Level:     %d (%s)\n", st.Level, st.Phase()))
	sb.WriteString(fmt.Sprintf("XP:        %s\n", xpText))
	sb.WriteString(fmt.Sprintf("Hunger:    %3d%%\n", st.Hunger))
	sb.WriteString(fmt.Sprintf("Happiness: %3d%%\n", st.Happiness))
	sb.WriteString(fmt.Sprintf("Love:      %3d%%\n", st.Love))
	sb.WriteString(fmt.Sprintf("Energy:    %3d%%\n", st.Energy))
	sb.WriteString(fmt.Sprintf("Age:       %d days\n", st.AgeDays))
	return sb.String()
}

func spriteFor(st pet.State) pet.SpriteAction {
	if st.Dead {
		return pet.SpriteDead
	}
	return pet.SpriteIdle
}
