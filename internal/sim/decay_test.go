package sim

import (
	"testing"
	"time"
)

func TestDecayRates(t *testing.T) {
	now := mockTimeNow(t)
	m := newTestManager(t)

	m.mu.Lock()
	m.state.Hunger = 50
	m.state.Cleanliness = 50
	m.state.Happiness = 50
	m.state.Vitality = 50
	m.decayStats(3600, *now)
	snap := *m.state
	m.mu.Unlock()

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"hunger", snap.Hunger, 45},
		{"cleanliness", snap.Cleanliness, 47},
		{"happiness", snap.Happiness, 48},
		{"vitality", snap.Vitality, 49},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("Expected %s %.0f after 1h, got %.1f", tt.name, tt.want, tt.got)
		}
	}
}

func TestSickDecayDoubles(t *testing.T) {
	now := mockTimeNow(t)
	m := newTestManager(t)

	m.mu.Lock()
	m.state.Hunger = 0 // already sick
	m.state.Cleanliness = 50
	m.state.Happiness = 50
	m.state.Vitality = 50
	m.refreshSickness(*now)
	m.decayStats(3600, *now)
	snap := *m.state
	m.mu.Unlock()

	if snap.Cleanliness != 44 {
		t.Errorf("Expected doubled cleanliness decay to 44, got %.1f", snap.Cleanliness)
	}
	if snap.Happiness != 46 {
		t.Errorf("Expected doubled happiness decay to 46, got %.1f", snap.Happiness)
	}
}

func TestSicknessClearsWhenStatsRecover(t *testing.T) {
	now := mockTimeNow(t)
	m := newTestManager(t)

	m.mu.Lock()
	m.state.Hunger = 0
	m.refreshSickness(*now)
	if m.state.SickSince == nil {
		m.mu.Unlock()
		t.Fatal("Expected sick timer armed at zero hunger")
	}
	m.state.Hunger = 30
	m.refreshSickness(*now)
	cleared := m.state.SickSince == nil
	m.mu.Unlock()

	if !cleared {
		t.Error("Expected sick timer cleared once hunger recovered")
	}
}

func TestStatsClampToBounds(t *testing.T) {
	now := mockTimeNow(t)
	m := newTestManager(t)

	m.mu.Lock()
	m.modifyStat("hunger", 500, *now)
	m.modifyStat("vitality", -500, *now)
	snap := *m.state
	m.mu.Unlock()

	if snap.Hunger != MaxStat {
		t.Errorf("Expected hunger clamped to %.0f, got %.1f", MaxStat, snap.Hunger)
	}
	if snap.Vitality != 0 {
		t.Errorf("Expected vitality clamped to 0, got %.1f", snap.Vitality)
	}
}

func TestBodyTypeNeedsEnoughSamples(t *testing.T) {
	mockTimeNow(t)
	m := newTestManager(t)

	m.mu.Lock()
	m.state.Hunger = 100
	for i := 0; i < bodyHistoryMin-1; i++ {
		m.updateBodyType()
	}
	bodyEarly := m.state.BodyType
	m.updateBodyType()
	bodyAfter := m.state.BodyType
	m.mu.Unlock()

	if bodyEarly != BodyNormal {
		t.Errorf("Expected body type untouched below %d samples, got %s", bodyHistoryMin, bodyEarly)
	}
	if bodyAfter != BodyFat {
		t.Errorf("Expected fat body at avg hunger 100, got %s", bodyAfter)
	}
}

func TestBodyTypeThin(t *testing.T) {
	mockTimeNow(t)
	m := newTestManager(t)

	m.mu.Lock()
	m.state.Hunger = 20
	for i := 0; i < bodyHistoryMin; i++ {
		m.updateBodyType()
	}
	body := m.state.BodyType
	m.mu.Unlock()

	if body != BodyThin {
		t.Errorf("Expected thin body at avg hunger 20, got %s", body)
	}
}

func TestBodyHistoryCapped(t *testing.T) {
	mockTimeNow(t)
	m := newTestManager(t)

	m.mu.Lock()
	for i := 0; i < bodyHistoryMax+50; i++ {
		m.updateBodyType()
	}
	size := len(m.state.HungerHistory)
	m.mu.Unlock()

	if size != bodyHistoryMax {
		t.Errorf("Expected history capped at %d, got %d", bodyHistoryMax, size)
	}
}

func TestLiveDecayThroughTick(t *testing.T) {
	now := mockTimeNow(t)
	m := newTestManager(t)

	m.mu.Lock()
	m.state.Hunger = 50
	m.mu.Unlock()

	// Under the decay interval: nothing happens.
	*now = now.Add(30 * time.Second)
	m.Tick()
	if got := m.Snapshot().Hunger; got != 50 {
		t.Errorf("Expected no decay before the interval elapses, got %.2f", got)
	}

	*now = now.Add(decayInterval)
	m.Tick()
	if got := m.Snapshot().Hunger; got >= 50 {
		t.Errorf("Expected hunger decayed after the interval, got %.2f", got)
	}
}
