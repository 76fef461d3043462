package sim

// Debug hooks for the cheat menu. Nothing in the simulation calls these.

// DebugSetStats overwrites the four care stats.
func (m *Manager) DebugSetStats(hunger, cleanliness, happiness, vitality float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := TimeNow()
	m.state.Hunger = clampStat(hunger)
	m.state.Cleanliness = clampStat(cleanliness)
	m.state.Happiness = clampStat(happiness)
	m.state.Vitality = clampStat(vitality)
	m.refreshSickness(now)
	m.persist()
}

// DebugAddTrust adjusts trust without daily caps.
func (m *Manager) DebugAddTrust(amount float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.modifyTrust(amount)
	m.checkUnlocks()
	m.persist()
}

// DebugAddExp grants raw experience. Returns the new level or 0.
func (m *Manager) DebugAddExp(amount int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	newLevel := m.addExperience(amount)
	m.checkUnlocks()
	m.persist()
	return newLevel
}

// DebugTriggerAnger forces an anger episode at the given level.
func (m *Manager) DebugTriggerAnger(level int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if level < 1 {
		level = 1
	}
	if level > 3 {
		level = 3
	}
	m.triggerAnger(level, TimeNow())
	m.persist()
}

// DebugKill ends the pet immediately.
func (m *Manager) DebugKill() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state.IsDead {
		return
	}
	m.state.IsDead = true
	m.onDeath()
	m.persist()
}
