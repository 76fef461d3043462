package sim

import (
	"testing"
	"time"
)

func TestSleepHours(t *testing.T) {
	tests := []struct {
		hour int
		want bool
	}{
		{22, false},
		{23, true},
		{0, true},
		{5, true},
		{6, false},
		{12, false},
	}
	for _, tt := range tests {
		if got := isSleepHour(tt.hour); got != tt.want {
			t.Errorf("isSleepHour(%d) = %v, want %v", tt.hour, got, tt.want)
		}
	}
}

func TestDisturbSleepOnlyAtNight(t *testing.T) {
	mockTimeNow(t)
	m := newTestManager(t)

	if got := m.DisturbSleep(); got != 0 {
		t.Errorf("Expected no disturbance at noon, got level %d", got)
	}
	if got := m.Snapshot().BehaviorStats["disturb_sleep"]; got != 0 {
		t.Errorf("Expected no disturb counted by day, got %d", got)
	}
}

func TestDisturbSleepPenalties(t *testing.T) {
	now := mockTimeNow(t)
	m := newTestManager(t)

	*now = time.Date(2024, 1, 2, 2, 0, 0, 0, time.Local)
	m.mu.Lock()
	m.state.Happiness = 80
	m.mu.Unlock()

	if got := m.DisturbSleep(); got != 1 {
		t.Fatalf("Expected anger level 1 on the first disturb, got %d", got)
	}
	snap := m.Snapshot()
	// Sleep tracker -3, night anger -3 and the level-1 trigger -3.
	if snap.Happiness != 71 {
		t.Errorf("Expected happiness 71 after the first disturb, got %.1f", snap.Happiness)
	}
	if snap.SleepData.DisturbCountTonight != 1 {
		t.Errorf("Expected one disturb tonight, got %d", snap.SleepData.DisturbCountTonight)
	}
	if snap.BehaviorStats["disturb_sleep"] != 1 {
		t.Errorf("Expected disturb_sleep 1, got %d", snap.BehaviorStats["disturb_sleep"])
	}
}

func TestThreeDisturbsRuinSleep(t *testing.T) {
	now := mockTimeNow(t)
	m := newTestManager(t)

	*now = time.Date(2024, 1, 2, 2, 0, 0, 0, time.Local)
	m.DisturbSleep()
	m.DisturbSleep()
	if m.Snapshot().SleepData.HadBadSleep {
		t.Fatal("Expected two disturbs tolerated")
	}
	m.DisturbSleep()
	if !m.Snapshot().SleepData.HadBadSleep {
		t.Error("Expected bad sleep after three disturbs")
	}
}

func TestDisturbCountSurvivesMidnight(t *testing.T) {
	now := mockTimeNow(t)
	m := newTestManager(t)

	*now = time.Date(2024, 1, 1, 23, 40, 0, 0, time.Local)
	m.DisturbSleep()
	*now = time.Date(2024, 1, 1, 23, 50, 0, 0, time.Local)
	m.DisturbSleep()

	// The same night continues past the date change.
	*now = time.Date(2024, 1, 2, 0, 10, 0, 0, time.Local)
	m.DisturbSleep()

	snap := m.Snapshot()
	if snap.SleepData.DisturbCountTonight != 3 {
		t.Errorf("Expected three disturbs across midnight, got %d", snap.SleepData.DisturbCountTonight)
	}
	if !snap.SleepData.HadBadSleep {
		t.Error("Expected bad sleep from a night split by midnight")
	}

	*now = time.Date(2024, 1, 2, 7, 0, 0, 0, time.Local)
	m.mu.Lock()
	m.checkDailySettlement(*now)
	count := m.state.SleepData.DisturbCountTonight
	m.mu.Unlock()
	if count != 0 {
		t.Errorf("Expected the morning settlement to clear the night, got %d", count)
	}
}

func TestPreSleepMoodSnapshot(t *testing.T) {
	now := mockTimeNow(t)
	m := newTestManager(t)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Happiness = 42

	m.recordPreSleepMood(*now)
	if m.state.SleepData.PreSleepMood == 42 {
		t.Error("Expected no snapshot outside the 22:00 hour")
	}

	evening := time.Date(2024, 1, 1, 22, 30, 0, 0, time.Local)
	m.recordPreSleepMood(evening)
	if m.state.SleepData.PreSleepMood != 42 {
		t.Errorf("Expected the 22:00 snapshot taken, got %.1f", m.state.SleepData.PreSleepMood)
	}
}

func TestDreamWeights(t *testing.T) {
	tests := []struct {
		mood float64
		want [3]float64
	}{
		{80, [3]float64{0.50, 0.40, 0.10}},
		{50, [3]float64{0.30, 0.50, 0.20}},
		{20, [3]float64{0.15, 0.50, 0.35}},
	}
	for _, tt := range tests {
		if got := dreamWeights(tt.mood); got != tt.want {
			t.Errorf("dreamWeights(%.0f) = %v, want %v", tt.mood, got, tt.want)
		}
	}
}

func TestSettleDreamOutcomes(t *testing.T) {
	now := mockTimeNow(t)

	tests := []struct {
		name      string
		roll      float64
		mood      float64
		wantDream string
		wantDelta float64
	}{
		{"good dream", 0.0, 80, DreamGood, GoodDreamMoodBonus},
		{"no dream", 0.6, 80, DreamNone, 0},
		{"nightmare", 0.99, 20, DreamNightmare, NightmareMoodPenalty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRandFloat(t, tt.roll)
			m := newTestManager(t)

			m.mu.Lock()
			defer m.mu.Unlock()
			m.state.Happiness = 50
			m.state.SleepData.PreSleepMood = tt.mood

			dream := m.settleDream(*now)
			if dream != tt.wantDream {
				t.Fatalf("Expected %s, got %s", tt.wantDream, dream)
			}
			if m.state.Happiness != 50+tt.wantDelta {
				t.Errorf("Expected happiness %.1f, got %.1f", 50+tt.wantDelta, m.state.Happiness)
			}
		})
	}
}

func TestSettleDreamOncePerDay(t *testing.T) {
	now := mockTimeNow(t)
	mockRandFloat(t, 0.0)
	m := newTestManager(t)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Happiness = 50
	m.state.SleepData.PreSleepMood = 80

	m.settleDream(*now)
	first := m.state.Happiness
	if dream := m.settleDream(*now); dream != DreamGood {
		t.Errorf("Expected the cached dream returned, got %s", dream)
	}
	if m.state.Happiness != first {
		t.Error("Expected no double payout from the cached dream")
	}
}

func TestDreamSettlesThroughTick(t *testing.T) {
	now := mockTimeNow(t)
	mockRandFloat(t, 0.99)
	m := newTestManager(t)

	m.Tick()
	if got := m.LastDream(); got != "" {
		t.Fatalf("Expected no dream settled on the first day, got %q", got)
	}

	m.mu.Lock()
	m.state.SleepData.PreSleepMood = 20
	m.mu.Unlock()

	*now = now.Add(24 * time.Hour)
	m.Tick()
	if got := m.LastDream(); got != DreamNightmare {
		t.Errorf("Expected a nightmare settled on the day roll, got %q", got)
	}
}

func TestDreamSettlesAfterActionRollsDay(t *testing.T) {
	now := mockTimeNow(t)
	mockRandFloat(t, 0.99)
	m := newTestManager(t)

	m.Tick()

	m.mu.Lock()
	m.state.SleepData.PreSleepMood = 20
	m.mu.Unlock()

	// A feed just past midnight rolls the day before any tick does.
	*now = now.Add(12*time.Hour + time.Minute)
	m.Feed()
	if got := m.LastDream(); got != "" {
		t.Fatalf("Expected no dream settled by the feed itself, got %q", got)
	}

	m.Tick()
	if got := m.LastDream(); got != DreamNightmare {
		t.Errorf("Expected the dream settled on the next tick, got %q", got)
	}
}

func TestComfortAfterNightmare(t *testing.T) {
	mockTimeNow(t)
	m := newTestManager(t)

	if m.ComfortAfterNightmare() {
		t.Fatal("Expected nothing to comfort without a nightmare")
	}

	m.mu.Lock()
	m.state.Happiness = 50
	m.state.DailyState.LastDream = DreamNightmare
	m.mu.Unlock()

	if !m.ComfortAfterNightmare() {
		t.Fatal("Expected the nightmare comfort to land")
	}
	if got := m.Snapshot().Happiness; got != 55 {
		t.Errorf("Expected happiness 55, got %.1f", got)
	}
	if m.ComfortAfterNightmare() {
		t.Error("Expected the comfort paid out once per nightmare")
	}
}
