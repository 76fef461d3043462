package sim

import (
	"fmt"
	"time"
)

func isSleepHour(hour int) bool {
	return hour >= SleepHourStart || hour < SleepHourEnd
}

// lonelinessThreshold is how many hours of silence the pet tolerates.
// Trust buys patience, up to two extra hours.
func (m *Manager) lonelinessThreshold() float64 {
	return LonelyHoursBase + m.trustBonus()*2
}

func (m *Manager) isLonely(now time.Time) bool {
	return m.hoursSinceInteraction(now) >= m.lonelinessThreshold()
}

// Status classifies the pet's condition. Order matters: each check
// preempts everything below it.
func (m *Manager) Status() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := TimeNow()

	switch {
	case m.state.IsDead:
		return StatusDead
	case m.isSick():
		return StatusSick
	case isSleepHour(now.Hour()):
		return StatusSleep
	case m.state.Emotion.AngerLevel >= 2 || m.isSlacking(now):
		return StatusAngry
	case m.state.Emotion.AngerLevel == 1:
		return StatusAnnoyed
	case m.isLonely(now):
		return StatusLonely
	case m.state.Hunger < LowStatThreshold:
		return StatusHungry
	case m.state.Cleanliness < LowStatThreshold:
		return StatusDirty
	case m.state.Happiness < LowStatThreshold:
		return StatusSad
	case m.state.Hunger > HappyStatFloor && m.state.Cleanliness > HappyStatFloor && m.state.Happiness > HappyStatFloor:
		return StatusHappy
	default:
		return StatusIdle
	}
}

// StatsDisplay returns the stat sheet as label/value rows for the UI.
func (m *Manager) StatsDisplay() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.state
	return []string{
		fmt.Sprintf("Level %d (%s)", s.GrowthData.Level, m.levelStage()),
		fmt.Sprintf("Exp %d/%d", s.GrowthData.TotalExp, requiredExp(s.GrowthData.Level)),
		fmt.Sprintf("Hunger      %3.0f", s.Hunger),
		fmt.Sprintf("Cleanliness %3.0f", s.Cleanliness),
		fmt.Sprintf("Happiness   %3.0f", s.Happiness),
		fmt.Sprintf("Vitality    %3.0f", s.Vitality),
		fmt.Sprintf("Trust       %.1f (%s)", s.Trust, m.trustLevel()),
		fmt.Sprintf("Alive %d days", s.AliveDays),
	}
}
