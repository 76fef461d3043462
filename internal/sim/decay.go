package sim

import (
	"log"
	"time"
)

// applyOfflineDecay folds the gap since the last save into decay. Runs
// once at load, before any other operation.
func (m *Manager) applyOfflineDecay(now time.Time) {
	if m.state.IsDead {
		return
	}
	gap := now.Sub(m.state.LastSaveTime)
	if gap <= 0 {
		return
	}

	wasSick := m.isSick()
	m.decayStats(gap.Seconds(), now)

	// A long absence should sting, not soft-lock the pet into a death
	// spiral the moment the window opens.
	if gap >= OfflineHappinessFloorGap && m.state.Happiness < OfflineHappinessFloor {
		m.state.Happiness = OfflineHappinessFloor
		m.refreshSickness(now)
	}

	// If the pet went under while nobody was watching, the sick clock
	// started back then, not at load time. decayStats stamped it with
	// the load time, so overwrite with the start of the gap.
	if m.isSick() && !wasSick {
		since := m.state.LastSaveTime
		m.state.SickSince = &since
	}
	m.checkDeath(now)

	days := int(now.Sub(m.state.CreatedAt).Hours() / 24)
	if days > m.state.AliveDays {
		m.state.AliveDays = days
	}
	log.Printf("Applied %.1fh of offline decay", gap.Hours())
}

// applyDecay applies elapsed live-session seconds of decay and re-checks
// sickness and death. Safe to call redundantly; zero elapsed is a no-op.
func (m *Manager) applyDecay(seconds float64, now time.Time) {
	if m.state.IsDead || seconds <= 0 {
		return
	}
	m.decayStats(seconds, now)
	m.checkDeath(now)
}

func (m *Manager) decayStats(seconds float64, now time.Time) {
	hours := seconds / 3600
	mult := 1.0
	if m.isSick() {
		mult = SickDecayMult
	}

	m.state.Hunger = clampStat(m.state.Hunger - HungerDecayRate*hours*mult)
	m.state.Cleanliness = clampStat(m.state.Cleanliness - CleanlinessDecayRate*hours*mult)
	m.state.Happiness = clampStat(m.state.Happiness - HappinessDecayRate*hours*mult)
	m.state.Vitality = clampStat(m.state.Vitality - VitalityDecayRate*hours*mult)

	m.refreshSickness(now)
}

// isSick reports whether any care stat has bottomed out.
func (m *Manager) isSick() bool {
	return m.state.Hunger <= 0 || m.state.Cleanliness <= 0 || m.state.Happiness <= 0
}

// refreshSickness arms or clears the sick clock after a stat change.
func (m *Manager) refreshSickness(now time.Time) {
	if m.isSick() {
		if m.state.SickSince == nil {
			t := now
			m.state.SickSince = &t
		}
	} else {
		m.state.SickSince = nil
	}
}

// checkDeath kills the pet once it has been sick for the full threshold.
func (m *Manager) checkDeath(now time.Time) {
	if m.state.IsDead || m.state.SickSince == nil {
		return
	}
	if now.Sub(*m.state.SickSince) >= SickDeathThreshold {
		m.state.IsDead = true
		m.onDeath()
		log.Printf("Pet died after %.1fh of sickness", now.Sub(*m.state.SickSince).Hours())
	}
}

// onDeath applies the trust penalty and bumps the death counter. Death is
// a terminal game state, not an error.
func (m *Manager) onDeath() {
	m.modifyTrust(trustPenalty["death"])
	m.state.incrementBehavior("death_count", 1)
}

// Revive brings a dead pet back with middling care stats.
func (m *Manager) Revive() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.state.IsDead {
		return
	}
	m.state.IsDead = false
	m.state.SickSince = nil
	m.state.Hunger = ReviveStatValue
	m.state.Cleanliness = ReviveStatValue
	m.state.Happiness = ReviveStatValue
	m.persist()
}

// updateBodyType samples hunger into the rolling history and re-derives
// the body type once enough of a week has been observed.
func (m *Manager) updateBodyType() {
	m.state.HungerHistory = append(m.state.HungerHistory, m.state.Hunger)
	if len(m.state.HungerHistory) > bodyHistoryMax {
		m.state.HungerHistory = m.state.HungerHistory[len(m.state.HungerHistory)-bodyHistoryMax:]
	}
	if len(m.state.HungerHistory) < bodyHistoryMin {
		return
	}

	var total float64
	for _, h := range m.state.HungerHistory {
		total += h
	}
	avg := total / float64(len(m.state.HungerHistory))

	newType := BodyNormal
	if avg >= bodyFatThreshold {
		newType = BodyFat
	} else if avg <= bodyThinThreshold {
		newType = BodyThin
	}
	if newType != m.state.BodyType {
		log.Printf("Body type changed: %s -> %s (avg hunger %.1f)", m.state.BodyType, newType, avg)
		m.state.BodyType = newType
	}
}
