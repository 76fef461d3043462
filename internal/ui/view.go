package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tinpet/internal/sim"
)

var gameStyles = struct {
	title   lipgloss.Style
	status  lipgloss.Style
	menu    lipgloss.Style
	menuBox lipgloss.Style
	stats   lipgloss.Style
	warn    lipgloss.Style
}{
	title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7DD3FC")).
		Padding(0, 1),

	status: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7DD3FC")).
		Width(40),

	stats: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7DD3FC")).
		Width(40),

	menu: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7DD3FC")),

	menuBox: lipgloss.NewStyle().
		Padding(0, 2),

	warn: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#F87171")),
}

// statusFaces maps the classified status to a face.
var statusFaces = map[string]string{
	sim.StatusDead:    "💀",
	sim.StatusSick:    "🤒",
	sim.StatusSleep:   "😴",
	sim.StatusAngry:   "😡",
	sim.StatusAnnoyed: "😠",
	sim.StatusLonely:  "🥺",
	sim.StatusHungry:  "😫",
	sim.StatusDirty:   "🙁",
	sim.StatusSad:     "😢",
	sim.StatusHappy:   "😊",
	sim.StatusIdle:    "🤖",
}

// View implements tea.Model
func (m Model) View() string {
	if m.Sim.Snapshot().IsDead {
		return m.deadView()
	}
	if m.Quitting {
		return "Thanks for playing!\n"
	}
	switch m.Mode {
	case modeCheat:
		return m.renderCheatMenu()
	case modeChat:
		return m.renderChat()
	case modeInventory:
		return m.renderInventory()
	}

	// Show animation if one is active
	if m.Animation.Type != AnimNone {
		return m.renderAnimation()
	}

	status := m.Sim.Status()
	face := statusFaces[status]
	if face == "" {
		face = "🤖"
	}
	title := gameStyles.title.Render(face + " " + m.Name + " " + face)
	stats := gameStyles.stats.Render(strings.Join(m.Sim.StatsDisplay(), "\n"))
	statusLine := gameStyles.status.Render("Status: " + status)

	sections := []string{
		title,
		"",
		stats,
		"",
		statusLine,
	}

	if remaining := m.Sim.ColdWarRemaining(); remaining > 0 {
		sections = append(sections, gameStyles.warn.Render(fmt.Sprintf("❄️  Cold war: %ds", remaining)))
	}
	if m.Sim.NeedsApology() {
		sections = append(sections, gameStyles.warn.Render("🤬 Only an apology will fix this. Try chatting."))
	}
	if dream := m.Sim.LastDream(); dream == sim.DreamNightmare {
		sections = append(sections, gameStyles.status.Render("💭 Had a nightmare last night..."))
	} else if dream == sim.DreamGood {
		sections = append(sections, gameStyles.status.Render("💭 Had a lovely dream last night!"))
	}

	if m.Message != "" && sim.TimeNow().Before(m.MessageExpires) {
		sections = append(sections, "", gameStyles.status.Render(m.Message))
	}

	sections = append(sections,
		"",
		m.renderMenu(),
		"",
		gameStyles.status.Render("Use arrows to move • enter to select • q to quit"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderMenu() string {
	var menuItems []string
	for i, choice := range menuChoices {
		cursor := " "
		if m.Choice == i {
			cursor = ">"
		}
		label := choice
		if choice == "Chat" {
			label = fmt.Sprintf("Chat (%d left)", m.Sim.CasualChatRemaining())
		}
		menuItems = append(menuItems, fmt.Sprintf("%s %s", cursor, label))
	}
	return gameStyles.menuBox.Render(strings.Join(menuItems, "\n"))
}

func (m Model) renderChat() string {
	title := gameStyles.title.Render("💬 Chatting with " + m.Name)
	lines := gameStyles.stats.Render(strings.Join(m.ChatLines, "\n"))
	input := gameStyles.menuBox.Render("> " + m.ChatInput + "▌")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		lines,
		"",
		input,
		"",
		gameStyles.status.Render("Enter to send • Esc to leave"),
	)
}

func (m Model) renderInventory() string {
	title := gameStyles.title.Render("🎒 Wardrobe")
	equipped := m.Sim.EquippedItems()
	owned := make(map[string]bool)
	for _, id := range m.Sim.OwnedItems() {
		owned[id] = true
	}

	var lines []string
	for i, it := range inventoryCatalog() {
		cursor := " "
		if m.InventoryChoice == i {
			cursor = ">"
		}
		marker := "🔒"
		if owned[it.ID] {
			marker = "  "
		}
		if equipped[it.Slot] == it.ID {
			marker = "✔ "
		}
		lines = append(lines, fmt.Sprintf("%s %s [%s] %-16s %s", cursor, marker, it.Slot, it.Name, it.Rarity))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		gameStyles.menuBox.Render(strings.Join(lines, "\n")),
		"",
		gameStyles.status.Render("Enter to equip/remove • Esc to go back"),
	)
}

var cheatMenuOptions = []string{
	"Max All Stats",
	"Min All Stats (Critical)",
	"Trust +10",
	"Exp +100",
	"Anger: Annoyed",
	"Anger: Cold War",
	"Anger: Furious",
	"Kill Pet",
	"Back",
}

func (m Model) updateCheat(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quit()
		return m, tea.Quit
	case "c", "esc":
		m.Mode = modeMenu
		return m, nil
	case "up", "k":
		if m.CheatChoice > 0 {
			m.CheatChoice--
		}
	case "down", "j":
		if m.CheatChoice < len(cheatMenuOptions)-1 {
			m.CheatChoice++
		}
	case "enter", " ":
		m.executeCheat()
	}
	return m, nil
}

func (m *Model) executeCheat() {
	switch cheatMenuOptions[m.CheatChoice] {
	case "Max All Stats":
		m.Sim.DebugSetStats(100, 100, 100, 100)
		m.setMessage("🎮 All stats maxed!")
	case "Min All Stats (Critical)":
		m.Sim.DebugSetStats(10, 10, 10, 10)
		m.setMessage("🎮 Stats set to critical!")
	case "Trust +10":
		m.Sim.DebugAddTrust(10)
		m.setMessage("🎮 Trust increased!")
	case "Exp +100":
		if newLevel := m.Sim.DebugAddExp(100); newLevel > 0 {
			m.setMessage(fmt.Sprintf("🎮 Level up! Now level %d!", newLevel))
		} else {
			m.setMessage("🎮 Experience granted!")
		}
	case "Anger: Annoyed":
		m.Sim.DebugTriggerAnger(1)
		m.setMessage("🎮 Pet is annoyed")
	case "Anger: Cold War":
		m.Sim.DebugTriggerAnger(2)
		m.setMessage("🎮 Cold war started")
	case "Anger: Furious":
		m.Sim.DebugTriggerAnger(3)
		m.setMessage("🎮 Pet is furious")
	case "Kill Pet":
		m.Sim.DebugKill()
		m.setMessage("🎮 Pet has been killed")
		m.ShowingRevivePrompt = true
		m.Mode = modeMenu
	case "Back":
		m.Mode = modeMenu
	}
}

func (m Model) renderCheatMenu() string {
	header := gameStyles.warn.Render("⚠️  CHEAT MENU ⚠️")

	var menuItems []string
	for i, choice := range cheatMenuOptions {
		cursor := " "
		if m.CheatChoice == i {
			cursor = ">"
		}
		menuItems = append(menuItems, fmt.Sprintf("%s %s", cursor, choice))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		gameStyles.menuBox.Render(strings.Join(menuItems, "\n")),
		"",
		gameStyles.status.Render("Press 'c' or Esc to exit"),
	)
}

func (m Model) renderAnimation() string {
	frame := GetAnimationFrame(m.Animation)
	title := gameStyles.title.Render("🤖 " + m.Name + " 🤖")

	animStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFD700")).
		Bold(true).
		Padding(1, 2)

	var status string
	if m.Message != "" && sim.TimeNow().Before(m.MessageExpires) {
		status = gameStyles.status.Render(m.Message)
	}

	sections := []string{
		title,
		"",
		animStyle.Render(frame),
	}

	if status != "" {
		sections = append(sections, "", status)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) deadView() string {
	snap := m.Sim.Snapshot()
	if m.ShowingRevivePrompt {
		return lipgloss.JoinVertical(
			lipgloss.Center,
			gameStyles.title.Render("💀 "+m.Name+" 💀"),
			"",
			gameStyles.status.Render("Your pet has shut down..."),
			gameStyles.status.Render(fmt.Sprintf("It was alive for %d days", snap.AliveDays)),
			"",
			gameStyles.menuBox.Render("Reboot it?"),
			"",
			gameStyles.status.Render("Press 'y' for yes, 'n' for no"),
		)
	}
	return lipgloss.JoinVertical(
		lipgloss.Center,
		gameStyles.title.Render("💀 "+m.Name+" 💀"),
		"",
		gameStyles.status.Render("Your pet has shut down..."),
		gameStyles.status.Render("It will be remembered forever."),
		"",
		gameStyles.status.Render("Press q to exit"),
	)
}
