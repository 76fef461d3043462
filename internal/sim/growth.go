package sim

// requiredExp is the cumulative experience needed to leave the given
// level behind.
func requiredExp(level int) int {
	return level*100 + (level-1)*50
}

// levelFromExp walks the ladder until the total no longer clears the
// next rung.
func levelFromExp(total int) int {
	level := 1
	for total >= requiredExp(level) {
		level++
	}
	return level
}

// addExperience credits experience and returns the new level if the pet
// leveled up, 0 otherwise. Callers already hold the lock.
func (m *Manager) addExperience(amount int) int {
	gd := &m.state.GrowthData
	gd.TotalExp += amount
	if newLevel := levelFromExp(gd.TotalExp); newLevel > gd.Level {
		gd.Level = newLevel
		return newLevel
	}
	return 0
}

// Level reports the current level.
func (m *Manager) Level() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.GrowthData.Level
}

func (m *Manager) levelStage() string {
	level := m.state.GrowthData.Level
	for _, s := range levelStages {
		if level >= s.Low && level <= s.High {
			return s.Name
		}
	}
	return levelStages[len(levelStages)-1].Name
}

// LevelStage reports the named growth stage for the current level.
func (m *Manager) LevelStage() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.levelStage()
}

// ExpProgress reports experience earned within the current level and the
// amount the level spans.
func (m *Manager) ExpProgress() (current, needed int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	gd := m.state.GrowthData
	floor := 0
	if gd.Level > 1 {
		floor = requiredExp(gd.Level - 1)
	}
	return gd.TotalExp - floor, requiredExp(gd.Level) - floor
}
