package sim

import (
	"testing"

	"tinpet/internal/items"
)

func TestStarterItemsOwned(t *testing.T) {
	mockTimeNow(t)
	m := newTestManager(t)

	for _, id := range items.Defaults() {
		if !m.OwnsItem(id) {
			t.Errorf("Expected starter item %q owned", id)
		}
	}
	if m.OwnsItem("hat_crown") {
		t.Error("Expected the crown locked on a fresh pet")
	}
}

func TestLevelUnlockGrantsItem(t *testing.T) {
	mockTimeNow(t)
	m := newTestManager(t)

	m.mu.Lock()
	m.state.GrowthData.Level = 10
	earned := m.checkUnlocks()
	m.mu.Unlock()

	if len(earned) != 1 || earned[0].ID != "hat_flower" {
		t.Fatalf("Expected hat_flower earned at level 10, got %v", earned)
	}
	if !m.OwnsItem("hat_flower") {
		t.Error("Expected the earned item recorded as owned")
	}

	// Already owned, nothing new.
	m.mu.Lock()
	earned = m.checkUnlocks()
	m.mu.Unlock()
	if len(earned) != 0 {
		t.Errorf("Expected no repeat grant, got %v", earned)
	}
}

func TestCounterUnlockThroughActions(t *testing.T) {
	mockTimeNow(t)
	m := newTestManager(t)

	m.mu.Lock()
	m.state.BehaviorStats["clean_count"] = 99
	m.mu.Unlock()

	m.Bath()
	if !m.OwnsItem("effect_sparkle") {
		t.Error("Expected the sparkle effect after the hundredth bath")
	}
}

func TestEquipAndUnequip(t *testing.T) {
	mockTimeNow(t)
	m := newTestManager(t)

	if m.EquipItem("hat_crown") {
		t.Error("Expected equipping an unowned item rejected")
	}
	if m.EquipItem("no_such_item") {
		t.Error("Expected equipping an unknown item rejected")
	}

	if !m.EquipItem("hat_bow") {
		t.Fatal("Expected a starter item to equip")
	}
	if got := m.EquippedItems()[items.SlotHead]; got != "hat_bow" {
		t.Errorf("Expected hat_bow on the head slot, got %q", got)
	}

	// Same slot, replaced.
	m.EquipItem("hat_sleep")
	if got := m.EquippedItems()[items.SlotHead]; got != "hat_sleep" {
		t.Errorf("Expected hat_sleep to replace the bow, got %q", got)
	}

	if !m.UnequipItem(items.SlotHead) {
		t.Fatal("Expected the head slot to clear")
	}
	if got := m.EquippedItems()[items.SlotHead]; got != "" {
		t.Errorf("Expected a bare head slot, got %q", got)
	}
	if m.UnequipItem("tail") {
		t.Error("Expected an unknown slot rejected")
	}
}
