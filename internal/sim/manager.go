package sim

import (
	"log"
	"sync"
	"time"
)

// Store persists the save record. Implementations live in internal/store.
type Store interface {
	Load() (*State, bool, error)
	Save(*State) error
	Close() error
}

// decayInterval is how much wall-clock accumulates between decay
// applications during a live session. Tick runs every second; decay is
// folded in once per interval.
const decayInterval = time.Minute

// Manager owns the save record. It is the single writer: every exported
// operation takes the lock, so no two mutations ever race (background
// work reports results through these methods too).
type Manager struct {
	mu    sync.Mutex
	state *State
	store Store

	lastDecay time.Time
}

// NewManager loads the record from the store (falling back to a fresh
// default on a missing or corrupt record) and folds the offline gap into
// decay before anything else runs.
func NewManager(st Store) *Manager {
	m := &Manager{store: st, lastDecay: TimeNow()}

	loaded, ok, err := st.Load()
	if err != nil {
		log.Printf("Error loading save: %v. Starting a new pet.", err)
		loaded, ok = nil, false
	}
	if !ok || loaded == nil {
		m.state = DefaultState()
		m.persist()
		return m
	}
	loaded.normalize()
	m.state = loaded
	m.applyOfflineDecay(TimeNow())
	m.persist()
	return m
}

// persist writes the record. Write failures are logged, never fatal; the
// in-memory state stays authoritative until the next successful write.
// Callers must hold the lock.
func (m *Manager) persist() {
	m.state.LastSaveTime = TimeNow()
	if err := m.store.Save(m.state); err != nil {
		log.Printf("Error saving state: %v", err)
	}
}

// Save flushes the record to the store.
func (m *Manager) Save() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.persist()
}

// Snapshot returns a copy of the record for read-only display.
func (m *Manager) Snapshot() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.state
}

// Tick advances the simulation by one second of wall-clock. The UI calls
// it on a one-second cadence; all periodic behavior hangs off it.
func (m *Manager) Tick() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := TimeNow()
	m.rollDay(now)
	// A user action may have rolled the day already, so settle on the
	// flag, not the roll edge. The creation day has no night behind it.
	if !m.state.DailyState.DreamSettledToday &&
		now.Format(dayKeyFormat) != m.state.CreatedAt.Format(dayKeyFormat) {
		m.settleDream(now)
	}
	m.checkDailySettlement(now)
	m.recordPreSleepMood(now)
	m.coldWarTick(now)

	if now.Sub(m.lastDecay) >= decayInterval {
		elapsed := now.Sub(m.lastDecay)
		m.lastDecay = now

		m.applyMoodDecay(HappinessDecayRate, elapsed.Hours(), now)
		m.applyDecay(elapsed.Seconds(), now)
		m.updateBodyType()
		m.checkTrustPenalties(now)

		if now.Hour() == BadSleepClearHour {
			m.state.SleepData.HadBadSleep = false
		}
	}
}

// rollDay resets every per-calendar-day accumulator in one pass the first
// time it runs on a new local date. Scattered per-subsystem date checks
// drift; this is the single day boundary.
func (m *Manager) rollDay(now time.Time) bool {
	today := now.Format(dayKeyFormat)
	if m.state.DailyState.LastActiveDate == today {
		return false
	}
	firstRun := m.state.DailyState.LastActiveDate == ""

	m.state.DailyState.LastActiveDate = today
	m.state.DailyState.GreetedToday = false
	m.state.DailyState.PapersFetchedToday = false
	m.state.DailyState.DreamSettledToday = false
	m.state.DailyState.ComfortedAfterNightmare = false

	m.state.TrustDailyDate = today
	m.state.TrustDailyGains = map[string]float64{"chat": 0, "feed": 0, "clean": 0, "paper": 0}

	m.state.TrustPenaltyDate = today
	m.state.TrustPenalties = TrustPenalties{
		// A furious episode spans midnight; keep its one-shot penalty armed.
		SuperAngryPenalized: m.state.TrustPenalties.SuperAngryPenalized,
	}

	m.state.CasualChatDate = today
	m.state.CasualChatCountToday = 0

	// DisturbCountTonight is left alone: a night spans midnight, so the
	// counter resets in the morning settlement instead.
	m.state.MoodHistory.MorningGreetedToday = false
	m.state.MoodHistory.ServicesThisHour = nil

	days := int(now.Sub(m.state.CreatedAt).Hours() / 24)
	if days < 0 {
		days = 0
	}
	m.state.AliveDays = days

	m.persist()
	return !firstRun
}

// recordInteraction stamps the generic last-interaction time used by the
// loneliness and neglect checks.
func (m *Manager) recordInteraction(now time.Time) {
	t := now
	m.state.LastInteraction = &t
}

// hoursSinceInteraction returns 0 when no interaction was ever recorded.
func (m *Manager) hoursSinceInteraction(now time.Time) float64 {
	if m.state.LastInteraction == nil {
		return 0
	}
	return now.Sub(*m.state.LastInteraction).Hours()
}
