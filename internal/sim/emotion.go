package sim

import (
	"strings"
	"time"
)

// triggerAnger escalates to the given anger level. Anger only ratchets
// up; a lower trigger while already angry is a no-op.
func (m *Manager) triggerAnger(level int, now time.Time) {
	if level <= m.state.Emotion.AngerLevel {
		return
	}
	em := &m.state.Emotion
	em.AngerLevel = level

	until := now.Add(coldWarDuration[level])
	em.CooldownUntil = &until
	if level >= 2 {
		em.ColdWarFeedCount = 0
	}
	m.resetAngerCounts()

	m.modifyStat("happiness", angerHappinessHit[level], now)
	m.recordAngerForTrust(now)
	if level >= 3 {
		m.penalizeSuperAngry()
	}
	m.state.incrementBehavior("anger_triggered", 1)
	m.updateEmotionDisplay()
}

func (m *Manager) resetAngerCounts() {
	em := &m.state.Emotion
	em.ClickCount = 0
	em.ClickWindowStart = nil
	em.ShakeCount = 0
	em.LastShakeTime = nil
}

// addAngerClick feeds the 10-minute click window and escalates when a
// threshold is crossed.
func (m *Manager) addAngerClick(now time.Time) int {
	em := &m.state.Emotion
	if em.ClickWindowStart == nil || now.Sub(*em.ClickWindowStart) > AngerClickWindow {
		t := now
		em.ClickCount = 1
		em.ClickWindowStart = &t
	} else {
		em.ClickCount++
	}

	var level int
	switch {
	case em.ClickCount >= angerClickThresholds[3]:
		level = 3
	case em.ClickCount >= angerClickThresholds[2]:
		level = 2
	case em.ClickCount >= angerClickThresholds[1]:
		level = 1
	}
	if level > em.AngerLevel {
		m.triggerAnger(level, now)
		return level
	}
	return 0
}

// RecordShake counts a window shake. Shakes reset after 30 quiet seconds
// and only ever trigger levels 2 and 3. Returns the triggered level or 0.
func (m *Manager) RecordShake() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := TimeNow()
	m.rollDay(now)

	em := &m.state.Emotion
	if em.LastShakeTime == nil || now.Sub(*em.LastShakeTime) > AngerShakeWindow {
		em.ShakeCount = 1
	} else {
		em.ShakeCount++
	}
	t := now
	em.LastShakeTime = &t

	triggered := 0
	switch {
	case em.ShakeCount >= angerShakeThresholds[3] && em.AngerLevel < 3:
		m.triggerAnger(3, now)
		triggered = 3
	case em.ShakeCount >= angerShakeThresholds[2] && em.AngerLevel < 2:
		m.triggerAnger(2, now)
		triggered = 2
	}
	m.persist()
	return triggered
}

// handleNightDisturb escalates anger for an interaction during sleep
// hours. The nightly tally is keyed by date; count 1 angers at least
// level 1, count 2 at least level 2, 3 and up always level 3.
func (m *Manager) handleNightDisturb(now time.Time) int {
	if !isSleepHour(now.Hour()) {
		return 0
	}
	em := &m.state.Emotion
	today := now.Format(dayKeyFormat)
	if em.NightDisturbDate != today {
		em.NightDisturbDate = today
		em.NightDisturbCount = 0
	}
	em.NightDisturbCount++

	switch em.NightDisturbCount {
	case 1:
		m.triggerAnger(1, now)
		m.modifyStat("happiness", -3, now)
		return 1
	case 2:
		m.triggerAnger(2, now)
		m.modifyStat("happiness", -5, now)
		return 2
	default:
		m.triggerAnger(3, now)
		m.modifyStat("happiness", -10, now)
		return 3
	}
}

// coldWarTick advances the cold war against the persisted deadline, so a
// restart resumes mid-sulk instead of resetting. Level 3 never expires on
// its own; it holds until an apology. Returns true when the pet calmed.
func (m *Manager) coldWarTick(now time.Time) bool {
	em := &m.state.Emotion
	if em.AngerLevel == 0 {
		return false
	}
	if em.CooldownUntil == nil {
		if em.AngerLevel < 3 {
			m.calmDown(now)
			return true
		}
		return false
	}

	remaining := int(em.CooldownUntil.Sub(now).Seconds())
	if em.AngerLevel >= 2 && remaining > 0 && remaining%60 == 0 {
		m.modifyStat("happiness", -ColdWarDrainPenalty, now)
	}
	if remaining <= 0 && em.AngerLevel < 3 {
		m.calmDown(now)
		return true
	}
	return false
}

func (m *Manager) calmDown(now time.Time) {
	em := &m.state.Emotion
	em.AngerLevel = 0
	em.CooldownUntil = nil
	em.ColdWarFeedCount = 0
	m.resetAngerCounts()
	m.modifyStat("happiness", CalmDownHappinessBonus, now)
	m.resetSuperAngryPenalty()
	m.updateEmotionDisplay()
}

// feedDuringColdWar is the peace-offering path. At level 2 a meal shaves
// seconds off the cooldown; at level 3 it cannot end the sulk but three
// meals soften the attitude. Level 1 blows over too fast to matter.
func (m *Manager) feedDuringColdWar(now time.Time) string {
	em := &m.state.Emotion
	switch em.AngerLevel {
	case 2:
		if em.CooldownUntil != nil {
			until := em.CooldownUntil.Add(-time.Duration(ColdWarFeedReduction) * time.Second)
			em.CooldownUntil = &until
		}
		if em.CooldownUntil == nil || !em.CooldownUntil.After(now) {
			m.calmDown(now)
			return "calm_down"
		}
		return "reduce_cooldown"
	case 3:
		em.ColdWarFeedCount++
		if em.ColdWarFeedCount >= ColdWarFeedsToSoften {
			return "softened"
		}
		return "still_angry"
	}
	return ""
}

// CheckApology scans a chat line for an apology. Only a level-3 sulk
// needs one; anything less wears off on its own.
func (m *Manager) CheckApology(input string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state.Emotion.AngerLevel < 3 {
		return false
	}
	lower := strings.ToLower(input)
	for _, phrase := range apologyPhrases {
		if strings.Contains(lower, phrase) {
			m.acceptApology(TimeNow())
			m.persist()
			return true
		}
	}
	return false
}

func (m *Manager) acceptApology(now time.Time) {
	em := &m.state.Emotion
	em.AngerLevel = 0
	em.CooldownUntil = nil
	em.ColdWarFeedCount = 0
	m.resetAngerCounts()
	m.modifyStat("happiness", ApologyHappinessBonus, now)
	m.resetSuperAngryPenalty()
	m.updateEmotionDisplay()
}

// updateEmotionDisplay derives the display emotion. Anger outranks mood;
// happy needs the body cared for too.
func (m *Manager) updateEmotionDisplay() {
	em := &m.state.Emotion
	switch {
	case em.AngerLevel >= 3:
		em.Display = EmotionSuperAnnoyed
	case em.AngerLevel >= 2:
		em.Display = EmotionAngry
	case em.AngerLevel >= 1:
		em.Display = EmotionAnnoyed
	case m.state.Happiness <= 15:
		em.Display = EmotionVerySad
	case m.state.Happiness <= 30:
		em.Display = EmotionSad
	case m.state.Happiness >= 70 && m.state.Hunger > 70 && m.state.Cleanliness > 70:
		em.Display = EmotionHappy
	default:
		em.Display = EmotionNormal
	}
}

// Emotion reports the display emotion, refreshed against current stats.
func (m *Manager) Emotion() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updateEmotionDisplay()
	return m.state.Emotion.Display
}

// AngerLevel reports the current anger level, 0 through 3.
func (m *Manager) AngerLevel() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Emotion.AngerLevel
}

// ColdWarRemaining reports seconds left in the cold war, 0 if calm.
func (m *Manager) ColdWarRemaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	em := m.state.Emotion
	if em.AngerLevel == 0 || em.CooldownUntil == nil {
		return 0
	}
	remaining := int(em.CooldownUntil.Sub(TimeNow()).Seconds())
	if remaining < 0 {
		return 0
	}
	return remaining
}

// NeedsApology reports whether the pet is sulking hard enough that only
// an apology will do.
func (m *Manager) NeedsApology() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Emotion.AngerLevel >= 3
}
