package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tinpet/internal/items"
	"tinpet/internal/sim"
)

type uiMode int

const (
	modeMenu uiMode = iota
	modeChat
	modeInventory
	modeCheat
)

// Model represents the game state
type Model struct {
	Sim      *sim.Manager
	Name     string
	Choice   int
	Quitting bool

	ShowingRevivePrompt bool
	Message             string
	MessageExpires      time.Time

	Mode            uiMode
	ChatInput       string
	ChatLines       []string
	InventoryChoice int
	CheatChoice     int

	Animation Animation
}

type tickMsg time.Time
type animTickMsg struct {
	started time.Time
}

var menuChoices = []string{"Feed", "Bathe", "Play", "Pet", "Comfort", "Chat", "Inventory", "Quit"}

// NewModel creates a new game model around a running simulation.
func NewModel(mgr *sim.Manager, name string) Model {
	return Model{
		Sim:                 mgr,
		Name:                name,
		ShowingRevivePrompt: mgr.Snapshot().IsDead,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func animTick(start time.Time) tea.Cmd {
	return tea.Tick(AnimationFrameDuration, func(t time.Time) tea.Msg {
		return animTickMsg{started: start}
	})
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// While an animation is playing, ignore inputs except quit keys
		if m.Animation.Type != AnimNone {
			switch msg.String() {
			case "ctrl+c":
				m.quit()
				return m, tea.Quit
			default:
				return m, nil
			}
		}

		switch m.Mode {
		case modeChat:
			return m.updateChat(msg)
		case modeInventory:
			return m.updateInventory(msg)
		case modeCheat:
			return m.updateCheat(msg)
		}

		switch msg.String() {
		case "ctrl+c", "q":
			m.quit()
			return m, tea.Quit
		case "c":
			if !m.Sim.Snapshot().IsDead {
				m.Mode = modeCheat
				m.CheatChoice = 0
				return m, nil
			}
		case "y":
			if m.ShowingRevivePrompt {
				m.Sim.Revive()
				m.ShowingRevivePrompt = false
				m.Choice = 0
				m.startAnimation(AnimRevive)
				return m, animTick(m.Animation.StartTime)
			}
		case "n":
			if m.ShowingRevivePrompt {
				m.ShowingRevivePrompt = false
				return m, nil
			}
		case "up", "k":
			if m.Choice > 0 {
				m.Choice--
			}
		case "down", "j":
			if m.Choice < len(menuChoices)-1 {
				m.Choice++
			}
		case "enter", " ":
			if m.Sim.Snapshot().IsDead {
				return m, nil
			}
			return m.runMenuChoice()
		}

	case tickMsg:
		m.Sim.Tick()
		if m.Sim.CheckMorningGreeting() {
			m.setMessage("🌅 Good morning!")
		}
		if m.Sim.Snapshot().IsDead && !m.ShowingRevivePrompt {
			m.ShowingRevivePrompt = true
		}
		return m, tick()

	case animTickMsg:
		// Drop ticks that belong to an older animation (e.g., if a new action started)
		if m.Animation.Type == AnimNone || !m.Animation.StartTime.Equal(msg.started) {
			return m, nil
		}

		m.Animation.Frame++
		if IsAnimationComplete(m.Animation) {
			m.Animation = Animation{}
			return m, nil
		}

		return m, animTick(m.Animation.StartTime)
	}

	return m, nil
}

func (m *Model) quit() {
	m.Quitting = true
	m.Sim.Save()
}

func (m *Model) setMessage(msg string) {
	m.Message = msg
	m.MessageExpires = sim.TimeNow().Add(3 * time.Second)
}

func (m *Model) startAnimation(animType AnimationType) {
	m.Animation = Animation{
		Type:      animType,
		Frame:     0,
		StartTime: sim.TimeNow(),
	}
}

func inventoryCatalog() []items.Item {
	return items.All()
}

func (m Model) runMenuChoice() (tea.Model, tea.Cmd) {
	switch menuChoices[m.Choice] {
	case "Feed":
		res := m.Sim.Feed()
		switch res.ColdWar {
		case "calm_down":
			m.setMessage("🔋 The meal worked. All is forgiven!")
		case "reduce_cooldown":
			m.setMessage("🔋 Still sulking, but the food helps...")
		case "softened":
			m.setMessage("🔋 ...fine. Say sorry and we're good.")
		case "still_angry":
			m.setMessage("🔋 *eats in angry silence*")
		default:
			m.setMessage(careMessage("🔋 Yum!", res))
		}
		m.startAnimation(AnimFeed)
		return m, animTick(m.Animation.StartTime)
	case "Bathe":
		res := m.Sim.Bath()
		m.setMessage(careMessage("🧽 Squeaky clean!", res))
		m.startAnimation(AnimBath)
		return m, animTick(m.Animation.StartTime)
	case "Play":
		fullService, newLevel := m.Sim.Play()
		msg := "⚽ Wheee!"
		if fullService {
			msg = "⚽ Full service! Best day ever!"
		}
		if newLevel > 0 {
			msg = fmt.Sprintf("🎉 Level up! Now level %d!", newLevel)
		}
		m.setMessage(msg)
		m.startAnimation(AnimPlay)
		return m, animTick(m.Animation.StartTime)
	case "Pet":
		if m.Sim.IsSleepTime() {
			level := m.Sim.DisturbSleep()
			switch level {
			case 1:
				m.setMessage("😠 mmh... five more minutes...")
			case 2:
				m.setMessage("😡 Hey! Sleeping here!")
			default:
				m.setMessage("🤬 THAT'S IT. We're not talking.")
			}
			return m, nil
		}
		if newLevel := m.Sim.RecordClick(); newLevel > 0 {
			m.setMessage(fmt.Sprintf("🎉 Level up! Now level %d!", newLevel))
		} else {
			m.setMessage("💕 *happy beeping*")
		}
		return m, nil
	case "Comfort":
		ok, newLevel := m.Sim.Comfort()
		if !ok {
			remaining := m.Sim.ComfortCooldownRemaining()
			m.setMessage(fmt.Sprintf("🫂 Already comforted. Try again in %ds", remaining))
			return m, nil
		}
		if m.Sim.ComfortAfterNightmare() {
			m.setMessage("🫂 The nightmare fades away...")
		} else if newLevel > 0 {
			m.setMessage(fmt.Sprintf("🎉 Level up! Now level %d!", newLevel))
		} else {
			m.setMessage("🫂 There, there.")
		}
		m.startAnimation(AnimComfort)
		return m, animTick(m.Animation.StartTime)
	case "Chat":
		if m.Sim.NeedsApology() {
			m.Mode = modeChat
			m.ChatInput = ""
			m.ChatLines = []string{"🤬 ... (an apology might help)"}
			return m, nil
		}
		ok, newLevel := m.Sim.UseCasualChat()
		if !ok {
			m.setMessage("💬 Too tired to chat today. Come back tomorrow!")
			return m, nil
		}
		m.Mode = modeChat
		m.ChatInput = ""
		m.ChatLines = []string{"💬 *perks up* What's on your mind?"}
		if newLevel > 0 {
			m.ChatLines = append(m.ChatLines, fmt.Sprintf("🎉 Level up! Now level %d!", newLevel))
		}
		return m, nil
	case "Inventory":
		m.Mode = modeInventory
		m.InventoryChoice = 0
		return m, nil
	case "Quit":
		m.quit()
		return m, tea.Quit
	}
	return m, nil
}

func careMessage(base string, res sim.CareResult) string {
	if res.NewLevel > 0 {
		return fmt.Sprintf("🎉 Level up! Now level %d!", res.NewLevel)
	}
	if res.FullService {
		return base + " Full service!"
	}
	if res.StatBonus {
		return base + " Feeling great!"
	}
	return base
}

func (m Model) updateChat(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quit()
		return m, tea.Quit
	case "esc":
		m.Mode = modeMenu
		m.ChatInput = ""
		return m, nil
	case "enter":
		line := strings.TrimSpace(m.ChatInput)
		m.ChatInput = ""
		if line == "" {
			return m, nil
		}
		m.ChatLines = append(m.ChatLines, "You: "+line)
		if m.Sim.CheckApology(line) {
			m.ChatLines = append(m.ChatLines, "🤖 ...okay. I forgive you. 💕")
			return m, nil
		}
		if m.Sim.NeedsApology() {
			m.ChatLines = append(m.ChatLines, "🤬 *turns away*")
			return m, nil
		}
		trustGained, newLevel := m.Sim.RecordChatMessage()
		reply := "🤖 *listens intently*"
		if trustGained {
			reply = "🤖 *beeps warmly*"
		}
		m.ChatLines = append(m.ChatLines, reply)
		if newLevel > 0 {
			m.ChatLines = append(m.ChatLines, fmt.Sprintf("🎉 Level up! Now level %d!", newLevel))
		}
		if len(m.ChatLines) > 8 {
			m.ChatLines = m.ChatLines[len(m.ChatLines)-8:]
		}
		return m, nil
	case "backspace":
		if len(m.ChatInput) > 0 {
			runes := []rune(m.ChatInput)
			m.ChatInput = string(runes[:len(runes)-1])
		}
		return m, nil
	default:
		if msg.Type == tea.KeyRunes || msg.String() == " " {
			m.ChatInput += msg.String()
		}
		return m, nil
	}
}

func (m Model) updateInventory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	catalog := items.All()
	switch msg.String() {
	case "ctrl+c":
		m.quit()
		return m, tea.Quit
	case "esc", "i":
		m.Mode = modeMenu
		return m, nil
	case "up", "k":
		if m.InventoryChoice > 0 {
			m.InventoryChoice--
		}
	case "down", "j":
		if m.InventoryChoice < len(catalog)-1 {
			m.InventoryChoice++
		}
	case "enter", " ":
		it := catalog[m.InventoryChoice]
		equipped := m.Sim.EquippedItems()
		if equipped[it.Slot] == it.ID {
			m.Sim.UnequipItem(it.Slot)
			m.setMessage("👕 Took off " + it.Name)
		} else if m.Sim.EquipItem(it.ID) {
			m.setMessage("👕 Put on " + it.Name)
		} else {
			m.setMessage("🔒 Not unlocked yet: " + it.Name)
		}
	}
	return m, nil
}
