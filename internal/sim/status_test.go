package sim

import (
	"testing"
	"time"
)

func TestStatusPrecedence(t *testing.T) {
	now := mockTimeNow(t)
	m := newTestManager(t)

	if got := m.Status(); got != StatusIdle {
		t.Errorf("Expected a fresh pet idle at noon, got %q", got)
	}

	m.mu.Lock()
	m.state.Happiness = 90
	m.mu.Unlock()
	if got := m.Status(); got != StatusHappy {
		t.Errorf("Expected happy with every care stat high, got %q", got)
	}

	m.mu.Lock()
	m.state.Cleanliness = 20
	m.mu.Unlock()
	if got := m.Status(); got != StatusDirty {
		t.Errorf("Expected dirty to outrank happy, got %q", got)
	}

	m.mu.Lock()
	m.state.Hunger = 20
	m.mu.Unlock()
	if got := m.Status(); got != StatusHungry {
		t.Errorf("Expected hungry to outrank dirty, got %q", got)
	}

	m.mu.Lock()
	m.state.Emotion.AngerLevel = 1
	m.mu.Unlock()
	if got := m.Status(); got != StatusAnnoyed {
		t.Errorf("Expected annoyed to outrank hungry, got %q", got)
	}

	m.mu.Lock()
	m.state.Emotion.AngerLevel = 2
	m.mu.Unlock()
	if got := m.Status(); got != StatusAngry {
		t.Errorf("Expected angry at anger level 2, got %q", got)
	}

	m.mu.Lock()
	m.state.Hunger = 0
	m.refreshSickness(*now)
	m.mu.Unlock()
	if got := m.Status(); got != StatusSick {
		t.Errorf("Expected sick to outrank anger, got %q", got)
	}

	m.mu.Lock()
	m.state.IsDead = true
	m.mu.Unlock()
	if got := m.Status(); got != StatusDead {
		t.Errorf("Expected dead to outrank everything, got %q", got)
	}
}

func TestStatusHappyNeedsAllStats(t *testing.T) {
	mockTimeNow(t)
	m := newTestManager(t)

	m.mu.Lock()
	m.state.Hunger = 50
	m.state.Cleanliness = 90
	m.state.Happiness = 90
	m.mu.Unlock()
	if got := m.Status(); got != StatusIdle {
		t.Errorf("Expected idle with middling hunger despite high happiness, got %q", got)
	}

	m.mu.Lock()
	m.state.Hunger = 75
	m.state.Cleanliness = 75
	m.state.Happiness = 75
	m.mu.Unlock()
	if got := m.Status(); got != StatusHappy {
		t.Errorf("Expected happy with all care stats above %v, got %q", HappyStatFloor, got)
	}

	m.mu.Lock()
	m.state.Cleanliness = 70
	m.mu.Unlock()
	if got := m.Status(); got != StatusIdle {
		t.Errorf("Expected idle with cleanliness on the floor, got %q", got)
	}
}

func TestStatusSleepAtNight(t *testing.T) {
	now := mockTimeNow(t)
	m := newTestManager(t)

	*now = time.Date(2024, 1, 2, 2, 0, 0, 0, time.Local)
	if got := m.Status(); got != StatusSleep {
		t.Errorf("Expected sleep at 2am, got %q", got)
	}

	m.mu.Lock()
	m.state.Emotion.AngerLevel = 3
	m.mu.Unlock()
	if got := m.Status(); got != StatusSleep {
		t.Errorf("Expected sleep to outrank anger, got %q", got)
	}
}

func TestStatusAngryWhileSlacking(t *testing.T) {
	now := mockTimeNow(t)
	m := newTestManager(t)

	m.mu.Lock()
	m.state.HourlyClicks[now.Format(hourKeyFormat)] = SlackingThreshold + 1
	m.mu.Unlock()

	if got := m.Status(); got != StatusAngry {
		t.Errorf("Expected angry from slacking clicks during work hours, got %q", got)
	}
}

func TestStatusLonely(t *testing.T) {
	now := mockTimeNow(t)
	m := newTestManager(t)

	m.mu.Lock()
	stale := now.Add(-4 * time.Hour)
	m.state.LastInteraction = &stale
	m.mu.Unlock()

	// Trust 5 tolerates about 3.1 hours of silence.
	if got := m.Status(); got != StatusLonely {
		t.Errorf("Expected lonely after 4 silent hours, got %q", got)
	}
}

func TestLonelinessThresholdScalesWithTrust(t *testing.T) {
	mockTimeNow(t)
	m := newTestManager(t)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Trust = 100
	if got := m.lonelinessThreshold(); got != 5 {
		t.Errorf("Expected 5 hours of patience at full trust, got %.1f", got)
	}
	m.state.Trust = 0
	if got := m.lonelinessThreshold(); got != 3 {
		t.Errorf("Expected the base 3 hours at zero trust, got %.1f", got)
	}
}

func TestStatsDisplayRows(t *testing.T) {
	mockTimeNow(t)
	m := newTestManager(t)

	rows := m.StatsDisplay()
	if len(rows) != 8 {
		t.Fatalf("Expected 8 stat rows, got %d", len(rows))
	}
	if rows[0] != "Level 1 (Hatchling)" {
		t.Errorf("Unexpected level row %q", rows[0])
	}
}
