package sim

import "testing"

func TestRequiredExp(t *testing.T) {
	tests := []struct {
		level, want int
	}{
		{1, 100},
		{2, 250},
		{3, 400},
		{10, 1450},
	}
	for _, tt := range tests {
		if got := requiredExp(tt.level); got != tt.want {
			t.Errorf("requiredExp(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestLevelFromExp(t *testing.T) {
	tests := []struct {
		total, want int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{249, 2},
		{250, 3},
		{400, 4},
	}
	for _, tt := range tests {
		if got := levelFromExp(tt.total); got != tt.want {
			t.Errorf("levelFromExp(%d) = %d, want %d", tt.total, got, tt.want)
		}
	}
}

func TestAddExperienceSignalsLevelUp(t *testing.T) {
	mockTimeNow(t)
	m := newTestManager(t)

	m.mu.Lock()
	defer m.mu.Unlock()
	if got := m.addExperience(99); got != 0 {
		t.Errorf("Expected no level up at 99 exp, got %d", got)
	}
	if got := m.addExperience(1); got != 2 {
		t.Errorf("Expected level 2 at 100 exp, got %d", got)
	}
	if got := m.addExperience(1); got != 0 {
		t.Errorf("Expected no repeat signal, got %d", got)
	}
	if m.state.GrowthData.Level != 2 {
		t.Errorf("Expected level 2 recorded, got %d", m.state.GrowthData.Level)
	}
}

func TestExpProgress(t *testing.T) {
	mockTimeNow(t)
	m := newTestManager(t)

	m.mu.Lock()
	m.addExperience(130)
	m.mu.Unlock()

	current, needed := m.ExpProgress()
	// Level 2 spans exp 100 through 250.
	if current != 30 || needed != 150 {
		t.Errorf("ExpProgress() = %d/%d, want 30/150", current, needed)
	}
}

func TestLevelStages(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{1, "Hatchling"},
		{5, "Hatchling"},
		{6, "Growing"},
		{16, "Mature"},
		{31, "Prime"},
		{51, "Legendary"},
	}
	mockTimeNow(t)
	m := newTestManager(t)
	for _, tt := range tests {
		m.mu.Lock()
		m.state.GrowthData.Level = tt.level
		m.mu.Unlock()
		if got := m.LevelStage(); got != tt.want {
			t.Errorf("LevelStage() at level %d = %q, want %q", tt.level, got, tt.want)
		}
	}
}
