package sim

import (
	"log"
	"time"
)

func (m *Manager) trustBonus() float64 {
	return m.state.Trust / MaxTrust
}

// modifyTrust clamps trust into [0,100]. Gains with daily caps go through
// addTrust instead; this is the raw adjuster used by penalties and bonuses.
func (m *Manager) modifyTrust(delta float64) {
	m.state.Trust = clampStat(m.state.Trust + delta)
}

// addTrust credits a capped trust source. Partial credit is given when the
// gain would overshoot the source's daily cap; false means the cap was
// already exhausted.
func (m *Manager) addTrust(amount float64, source string, now time.Time) bool {
	today := now.Format(dayKeyFormat)
	if m.state.TrustDailyDate != today {
		m.state.TrustDailyDate = today
		m.state.TrustDailyGains = map[string]float64{"chat": 0, "feed": 0, "clean": 0, "paper": 0}
	}

	if cap, capped := trustDailyCap[source]; capped {
		current := m.state.TrustDailyGains[source]
		if current >= cap {
			return false
		}
		if amount > cap-current {
			amount = cap - current
		}
		m.state.TrustDailyGains[source] = current + amount
	}

	old := m.state.Trust
	m.modifyTrust(amount)
	m.recordInteraction(now)
	if oldBand, newBand := trustBandName(old), trustBandName(m.state.Trust); oldBand != newBand {
		log.Printf("trust level up: %s -> %s (%.1f)", oldBand, newBand, m.state.Trust)
	}
	return true
}

func trustBandName(trust float64) string {
	t := int(trust)
	for _, b := range trustBands {
		if t >= b.Low && t <= b.High {
			return b.Name
		}
	}
	return trustBands[0].Name
}

func (m *Manager) trustLevel() string {
	return trustBandName(m.state.Trust)
}

// TrustLevel returns the current trust band.
func (m *Manager) TrustLevel() TrustBand {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := int(m.state.Trust)
	for _, b := range trustBands {
		if t >= b.Low && t <= b.High {
			return b
		}
	}
	return trustBands[0]
}

// resetTrustPenaltyDay reinitializes the once-per-day penalty flags when
// the calendar day changes.
func (m *Manager) resetTrustPenaltyDay(now time.Time) {
	today := now.Format(dayKeyFormat)
	if m.state.TrustPenaltyDate == today {
		return
	}
	m.state.TrustPenaltyDate = today
	m.state.TrustPenalties = TrustPenalties{}
}

// checkTrustPenalties runs on every decay tick. Warnings fire once per
// day; critical thresholds bite on every tick they hold.
func (m *Manager) checkTrustPenalties(now time.Time) []string {
	m.resetTrustPenaltyDay(now)
	p := &m.state.TrustPenalties
	var triggered []string

	if m.state.Hunger < LowStatThreshold && !p.HungerWarned {
		m.modifyTrust(trustPenalty["hunger_warning"])
		p.HungerWarned = true
		triggered = append(triggered, "hunger_warning")
	}
	if m.state.Hunger < CriticalStatThreshold {
		m.modifyTrust(trustPenalty["hunger_critical"])
		triggered = append(triggered, "hunger_critical")
	}
	if m.state.Cleanliness < LowStatThreshold && !p.DirtyWarned {
		m.modifyTrust(trustPenalty["dirty_warning"])
		p.DirtyWarned = true
		triggered = append(triggered, "dirty_warning")
	}
	if m.state.Happiness < CriticalStatThreshold {
		m.modifyTrust(trustPenalty["happiness_crash"])
		triggered = append(triggered, "happiness_crash")
	}
	return triggered
}

// recordAngerForTrust counts an anger episode against today's tally. The
// first one is free; every one after costs trust.
func (m *Manager) recordAngerForTrust(now time.Time) {
	m.resetTrustPenaltyDay(now)
	m.state.TrustPenalties.AngerCountToday++
	if m.state.TrustPenalties.AngerCountToday >= 2 {
		m.modifyTrust(trustPenalty["anger_repeat"])
	}
}

// penalizeSuperAngry applies the level-3 penalty once per episode.
func (m *Manager) penalizeSuperAngry() bool {
	if m.state.TrustPenalties.SuperAngryPenalized {
		return false
	}
	m.modifyTrust(trustPenalty["super_angry"])
	m.state.TrustPenalties.SuperAngryPenalized = true
	return true
}

func (m *Manager) resetSuperAngryPenalty() {
	m.state.TrustPenalties.SuperAngryPenalized = false
}

// checkNeglectPenalty docks trust after a full day of silence, then
// resets the clock so it fires at most once per neglected day.
func (m *Manager) checkNeglectPenalty(now time.Time) bool {
	if m.state.LastInteraction == nil {
		return false
	}
	if m.hoursSinceInteraction(now) < NeglectHours {
		return false
	}
	m.modifyTrust(trustPenalty["neglect"])
	t := now
	m.state.LastInteraction = &t
	return true
}

// checkDailySettlement runs the previous day's care review. It waits
// until after the settlement hour so overnight stats count, settles at
// most once per day, and skips the very first day (nothing to review).
func (m *Manager) checkDailySettlement(now time.Time) {
	today := now.Format(dayKeyFormat)
	if m.state.LastTrustCheckDate == today {
		return
	}
	if now.Hour() < SettlementHour {
		return
	}

	if m.state.LastTrustCheckDate != "" {
		m.settleDay(now)
	}
	m.state.LastTrustCheckDate = today
	m.state.MoodHistory.MorningGreetedToday = false
	m.state.MoodHistory.ServicesThisHour = nil
	m.state.SleepData.DisturbCountTonight = 0
}

// settleDay grades yesterday's care. A healthy day extends the streak and
// pays experience; a bad day breaks it.
func (m *Manager) settleDay(now time.Time) {
	m.checkNeglectPenalty(now)

	healthy := m.state.Hunger >= DailyHealthyFloor &&
		m.state.Cleanliness >= DailyHealthyFloor &&
		m.state.Happiness >= DailyHealthyFloor

	if !healthy {
		m.state.TrustStreak = 0
		m.state.BehaviorStats["consecutive_care"] = 0
		return
	}

	m.state.TrustStreak++
	m.state.incrementBehavior("consecutive_care", 1)
	m.addExperience(expRewards["daily_healthy"])
	if m.state.TrustStreak >= TrustStreakDays {
		m.modifyTrust(trustGain["streak"])
	}
	switch m.state.TrustStreak {
	case 3:
		m.addExperience(expRewards["consecutive_3"])
	case 7:
		m.addExperience(expRewards["consecutive_7"])
	}
}
