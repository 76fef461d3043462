package sim

import (
	"log"

	"tinpet/internal/items"
)

// progress adapts the locked state to the item unlock rules.
type progress struct {
	s *State
}

func (p progress) Level() int              { return p.s.GrowthData.Level }
func (p progress) Trust() float64          { return p.s.Trust }
func (p progress) Counter(name string) int { return p.s.BehaviorStats[name] }

// checkUnlocks grants any items the pet has newly earned. Callers hold
// the lock.
func (m *Manager) checkUnlocks() []items.Item {
	owned := make(map[string]bool, len(m.state.Inventory.OwnedItems))
	for _, id := range m.state.Inventory.OwnedItems {
		owned[id] = true
	}
	earned := items.NewlyUnlockable(progress{m.state}, owned)
	for _, it := range earned {
		m.state.Inventory.OwnedItems = append(m.state.Inventory.OwnedItems, it.ID)
		log.Printf("item unlocked: %s (%s)", it.ID, it.Name)
	}
	return earned
}

// OwnsItem reports whether the pet owns the item.
func (m *Manager) OwnsItem(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ownsItem(id)
}

func (m *Manager) ownsItem(id string) bool {
	for _, owned := range m.state.Inventory.OwnedItems {
		if owned == id {
			return true
		}
	}
	return false
}

// OwnedItems returns a copy of the owned item ids.
func (m *Manager) OwnedItems() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.state.Inventory.OwnedItems...)
}

// EquipItem puts an owned item into its slot, replacing whatever was
// there. Rejected when the item is unknown or not owned.
func (m *Manager) EquipItem(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	it, ok := items.Get(id)
	if !ok || !m.ownsItem(id) {
		return false
	}
	m.state.Inventory.Equipped[it.Slot] = id
	m.persist()
	return true
}

// UnequipItem clears a slot. Unknown slots are rejected.
func (m *Manager) UnequipItem(slot string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.state.Inventory.Equipped[slot]; !ok {
		return false
	}
	m.state.Inventory.Equipped[slot] = ""
	m.persist()
	return true
}

// EquippedItems returns the slot-to-item map; empty string means bare.
func (m *Manager) EquippedItems() map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]string, len(m.state.Inventory.Equipped))
	for slot, id := range m.state.Inventory.Equipped {
		out[slot] = id
	}
	return out
}
