package sim

import (
	"testing"
	"time"
)

func TestCasualChatLimitByTrust(t *testing.T) {
	tests := []struct {
		trust float64
		want  int
	}{
		{5, 1},
		{20, 2},
		{45, 3},
		{60, 4},
		{80, 5},
		{100, 5},
	}
	mockTimeNow(t)
	m := newTestManager(t)
	for _, tt := range tests {
		m.mu.Lock()
		m.state.Trust = tt.trust
		limit := m.casualChatLimit()
		m.mu.Unlock()
		if limit != tt.want {
			t.Errorf("casualChatLimit() at trust %.0f = %d, want %d", tt.trust, limit, tt.want)
		}
	}
}

func TestCasualChatQuotaDepletes(t *testing.T) {
	mockTimeNow(t)
	m := newTestManager(t)

	// A fresh pet at trust 5 gets a single session.
	if ok, _ := m.UseCasualChat(); !ok {
		t.Fatal("Expected the first chat session to start")
	}
	if ok, _ := m.UseCasualChat(); ok {
		t.Error("Expected the daily allowance exhausted")
	}
	if got := m.CasualChatRemaining(); got != 0 {
		t.Errorf("Expected 0 sessions remaining, got %d", got)
	}

	snap := m.Snapshot()
	if snap.BehaviorStats["chat_count"] != 1 {
		t.Errorf("Expected chat_count 1, got %d", snap.BehaviorStats["chat_count"])
	}
	if snap.GrowthData.TotalExp != expRewards["chat"] {
		t.Errorf("Expected %d exp from the session, got %d", expRewards["chat"], snap.GrowthData.TotalExp)
	}
}

func TestCasualChatQuotaResetsNextDay(t *testing.T) {
	now := mockTimeNow(t)
	m := newTestManager(t)

	m.UseCasualChat()
	if ok, _ := m.UseCasualChat(); ok {
		t.Fatal("Expected the allowance spent")
	}

	*now = now.Add(24 * time.Hour)
	if ok, _ := m.UseCasualChat(); !ok {
		t.Error("Expected a fresh allowance on a new day")
	}
}

func TestRecordChatMessage(t *testing.T) {
	mockTimeNow(t)
	m := newTestManager(t)

	trustGained, _ := m.RecordChatMessage()
	if !trustGained {
		t.Error("Expected trust from the first message of the day")
	}

	snap := m.Snapshot()
	if snap.Trust != InitialTrust+trustGain["chat"] {
		t.Errorf("Expected trust %.2f, got %.2f", InitialTrust+trustGain["chat"], snap.Trust)
	}
	if snap.BehaviorStats["chat_messages"] != 1 {
		t.Errorf("Expected chat_messages 1, got %d", snap.BehaviorStats["chat_messages"])
	}
	if snap.GrowthData.TotalExp != expRewards["chat_message"] {
		t.Errorf("Expected %d exp, got %d", expRewards["chat_message"], snap.GrowthData.TotalExp)
	}
}

func TestChatMessageTrustCaps(t *testing.T) {
	mockTimeNow(t)
	m := newTestManager(t)

	// Chat trust caps at 2.5/day, five messages at 0.5 each.
	for i := 0; i < 5; i++ {
		if gained, _ := m.RecordChatMessage(); !gained {
			t.Fatalf("Expected message %d to earn trust", i+1)
		}
	}
	if gained, _ := m.RecordChatMessage(); gained {
		t.Error("Expected the chat trust cap exhausted")
	}
	if got := m.Snapshot().Trust; got != InitialTrust+2.5 {
		t.Errorf("Expected trust %.1f, got %.1f", InitialTrust+2.5, got)
	}
}
