package sim

import "time"

// casualChatLimit is the daily chat allowance, earned through trust.
func (m *Manager) casualChatLimit() int {
	switch {
	case m.state.Trust >= 80:
		return 5
	case m.state.Trust >= 60:
		return 4
	case m.state.Trust >= 40:
		return 3
	case m.state.Trust >= 20:
		return 2
	default:
		return 1
	}
}

func (m *Manager) resetCasualChatDay(now time.Time) {
	today := now.Format(dayKeyFormat)
	if m.state.CasualChatDate != today {
		m.state.CasualChatDate = today
		m.state.CasualChatCountToday = 0
	}
}

// CasualChatRemaining reports how many chat sessions are left today.
func (m *Manager) CasualChatRemaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resetCasualChatDay(TimeNow())
	remaining := m.casualChatLimit() - m.state.CasualChatCountToday
	if remaining < 0 {
		return 0
	}
	return remaining
}

// UseCasualChat spends one of today's chat sessions. Rejected with
// (false, 0) when the allowance is used up.
func (m *Manager) UseCasualChat() (ok bool, newLevel int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := TimeNow()
	m.rollDay(now)
	m.resetCasualChatDay(now)

	if m.state.CasualChatCountToday >= m.casualChatLimit() {
		return false, 0
	}
	m.state.CasualChatCountToday++
	m.recordInteraction(now)

	m.state.incrementBehavior("chat_count", 1)
	newLevel = m.addExperience(expRewards["chat"])
	m.checkUnlocks()
	m.persist()
	return true, newLevel
}

// RecordChatMessage credits one exchanged message inside a session: a
// little trust (capped daily) and a little experience.
func (m *Manager) RecordChatMessage() (trustGained bool, newLevel int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := TimeNow()
	m.rollDay(now)

	trustGained = m.addTrust(trustGain["chat"], "chat", now)
	m.state.incrementBehavior("chat_messages", 1)
	newLevel = m.addExperience(expRewards["chat_message"])
	m.checkUnlocks()
	m.persist()
	return trustGained, newLevel
}
