package sim

import "time"

// recordSleepDisturb tallies tonight's disturbances and docks happiness.
// Three or more in one night leave the pet with bad sleep, which makes
// the next morning grumpy until it wears off.
func (m *Manager) recordSleepDisturb(now time.Time) int {
	sd := &m.state.SleepData
	sd.DisturbCountTonight++
	if sd.DisturbCountTonight >= BadSleepDisturbCount {
		sd.HadBadSleep = true
	}

	if sd.DisturbCountTonight == 1 {
		m.modifyStat("happiness", -NightDisturbFirstPenalty, now)
	} else {
		m.modifyStat("happiness", -NightDisturbLaterPenalty, now)
	}
	m.state.incrementBehavior("disturb_sleep", 1)
	return sd.DisturbCountTonight
}

// DisturbSleep handles an interaction during sleep hours. It lands twice:
// the sleep tracker takes its mood toll, then the anger system reacts on
// top with its own escalation. Returns the triggered anger level (0 when
// it was not sleep time at all).
func (m *Manager) DisturbSleep() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := TimeNow()
	m.rollDay(now)

	if !isSleepHour(now.Hour()) {
		return 0
	}
	m.recordSleepDisturb(now)
	level := m.handleNightDisturb(now)
	m.persist()
	return level
}

// recordPreSleepMood snapshots happiness during the 22:00 hour. The
// snapshot seeds tonight's dream odds.
func (m *Manager) recordPreSleepMood(now time.Time) {
	if now.Hour() == PreSleepMoodHour {
		m.state.SleepData.PreSleepMood = m.state.Happiness
	}
}

// settleDream rolls last night's dream, once per day. The first day has
// no night behind it, so there is nothing to settle.
func (m *Manager) settleDream(now time.Time) string {
	ds := &m.state.DailyState
	if ds.DreamSettledToday {
		return ds.LastDream
	}

	dream := m.generateDream()
	switch dream {
	case DreamGood:
		m.modifyStat("happiness", GoodDreamMoodBonus, now)
	case DreamNightmare:
		m.modifyStat("happiness", NightmareMoodPenalty, now)
	}

	ds.LastDream = dream
	ds.DreamSettledToday = true
	m.persist()
	return dream
}

// generateDream weights the roll by the pre-sleep mood snapshot. A happy
// pet mostly dreams well; a miserable one courts nightmares.
func (m *Manager) generateDream() string {
	w := dreamWeights(m.state.SleepData.PreSleepMood)
	roll := RandFloat64()
	switch {
	case roll < w[0]:
		return DreamGood
	case roll < w[0]+w[1]:
		return DreamNone
	default:
		return DreamNightmare
	}
}

// LastDream reports the most recently settled dream, "" if none yet.
func (m *Manager) LastDream() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.DailyState.LastDream
}

// ComfortAfterNightmare soothes a nightmare, once per nightmare day.
func (m *Manager) ComfortAfterNightmare() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := TimeNow()
	m.rollDay(now)

	ds := &m.state.DailyState
	if ds.LastDream != DreamNightmare || ds.ComfortedAfterNightmare {
		return false
	}
	m.modifyStat("happiness", NightmareComfortBonus, now)
	ds.ComfortedAfterNightmare = true
	m.persist()
	return true
}

// IsSleepTime reports whether the pet should be asleep right now.
func (m *Manager) IsSleepTime() bool {
	return isSleepHour(TimeNow().Hour())
}
