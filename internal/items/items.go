// Package items defines the cosmetic item catalog and unlock rules.
package items

// Equipment slots.
const (
	SlotHead   = "head"
	SlotFace   = "face"
	SlotNeck   = "neck"
	SlotHand   = "hand"
	SlotEffect = "effect"
)

// Slots lists every equipment slot in display order.
var Slots = []string{SlotHead, SlotFace, SlotNeck, SlotHand, SlotEffect}

// Rarities.
const (
	RarityCommon    = "common"
	RarityUncommon  = "uncommon"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"
)

// RarityColors maps each rarity to its display color.
var RarityColors = map[string]string{
	RarityCommon:    "#FFFFFF",
	RarityUncommon:  "#4ADE80",
	RarityRare:      "#60A5FA",
	RarityEpic:      "#A855F7",
	RarityLegendary: "#F59E0B",
}

// Unlock condition kinds.
const (
	UnlockDefault = "default"
	UnlockLevel   = "level"
	UnlockStat    = "stat"
	UnlockTrust   = "trust"
)

// Unlock describes how an item is earned. Level, Stat/Value and Trust
// are read according to Type.
type Unlock struct {
	Type  string
	Level int
	Stat  string
	Value int
	Trust float64
}

// Item is one cosmetic item.
type Item struct {
	ID          string
	Name        string
	Slot        string
	Description string
	Rarity      string
	Unlock      Unlock
}

// Stats is the view of pet progress the unlock rules read. The
// simulation implements it.
type Stats interface {
	Level() int
	Trust() float64
	Counter(name string) int
}

var catalog = []Item{
	{
		ID: "hat_adventure", Name: "Adventure Cap", Slot: SlotHead,
		Description: "A little cap full of wanderlust",
		Rarity:      RarityCommon, Unlock: Unlock{Type: UnlockDefault},
	},
	{
		ID: "hat_bow", Name: "Bow Ribbon", Slot: SlotHead,
		Description: "A cute pink bow",
		Rarity:      RarityCommon, Unlock: Unlock{Type: UnlockDefault},
	},
	{
		ID: "hat_sleep", Name: "Nightcap", Slot: SlotHead,
		Description: "A classic blue-striped nightcap",
		Rarity:      RarityCommon, Unlock: Unlock{Type: UnlockDefault},
	},
	{
		ID: "hat_flower", Name: "Flower", Slot: SlotHead,
		Description: "A little pink flower worn by the ear",
		Rarity:      RarityUncommon, Unlock: Unlock{Type: UnlockLevel, Level: 10},
	},
	{
		ID: "hat_crown", Name: "Tiny Crown", Slot: SlotHead,
		Description: "A gleaming golden crown of legend",
		Rarity:      RarityLegendary, Unlock: Unlock{Type: UnlockLevel, Level: 50},
	},
	{
		ID: "glasses_round", Name: "Round Glasses", Slot: SlotFace,
		Description: "Artsy retro round frames",
		Rarity:      RarityCommon, Unlock: Unlock{Type: UnlockDefault},
	},
	{
		ID: "glasses_scholar", Name: "Scholar Glasses", Slot: SlotFace,
		Description: "Square frames, proof of too many papers read",
		Rarity:      RarityRare, Unlock: Unlock{Type: UnlockStat, Stat: "paper_reads", Value: 50},
	},
	{
		ID: "scarf_red", Name: "Red Scarf", Slot: SlotNeck,
		Description: "A warm little red scarf",
		Rarity:      RarityCommon, Unlock: Unlock{Type: UnlockDefault},
	},
	{
		ID: "scarf_rainbow", Name: "Rainbow Scarf", Slot: SlotNeck,
		Description: "Seven colors, proof of thirty days of care",
		Rarity:      RarityEpic, Unlock: Unlock{Type: UnlockStat, Stat: "consecutive_care_max", Value: 30},
	},
	{
		ID: "effect_sparkle", Name: "Sparkle", Slot: SlotEffect,
		Description: "Radiating light after a hundred baths",
		Rarity:      RarityRare, Unlock: Unlock{Type: UnlockStat, Stat: "clean_count", Value: 100},
	},
	{
		ID: "effect_hearts", Name: "Circling Hearts", Slot: SlotEffect,
		Description: "Surrounded by love",
		Rarity:      RarityEpic, Unlock: Unlock{Type: UnlockTrust, Trust: 100},
	},
}

var byID = func() map[string]Item {
	m := make(map[string]Item, len(catalog))
	for _, it := range catalog {
		m[it.ID] = it
	}
	return m
}()

// All returns the catalog in display order.
func All() []Item {
	out := make([]Item, len(catalog))
	copy(out, catalog)
	return out
}

// Get looks an item up by id.
func Get(id string) (Item, bool) {
	it, ok := byID[id]
	return it, ok
}

// Defaults lists the items every pet starts with.
func Defaults() []string {
	var ids []string
	for _, it := range catalog {
		if it.Unlock.Type == UnlockDefault {
			ids = append(ids, it.ID)
		}
	}
	return ids
}

// Unlocked reports whether the given progress satisfies the item's
// unlock condition.
func Unlocked(it Item, s Stats) bool {
	switch it.Unlock.Type {
	case UnlockDefault:
		return true
	case UnlockLevel:
		return s.Level() >= it.Unlock.Level
	case UnlockStat:
		return s.Counter(it.Unlock.Stat) >= it.Unlock.Value
	case UnlockTrust:
		return s.Trust() >= it.Unlock.Trust
	default:
		return false
	}
}

// NewlyUnlockable returns catalog items that the progress has earned but
// are not yet in the owned set.
func NewlyUnlockable(s Stats, owned map[string]bool) []Item {
	var out []Item
	for _, it := range catalog {
		if owned[it.ID] {
			continue
		}
		if Unlocked(it, s) {
			out = append(out, it)
		}
	}
	return out
}
