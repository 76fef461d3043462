package sim

import (
	"math/rand"
	"time"

	"tinpet/internal/items"
)

// Testable time and random functions
var (
	TimeNow     = time.Now
	RandFloat64 = rand.Float64
	RandIntn    = rand.Intn
)

// EmotionState is the anger dimension of the pet: a 0-3 escalation driven
// by click spam, shaking and night disturbances. The cold-war cooldown is
// persisted as an absolute deadline so a restart resumes the countdown
// instead of freezing it.
type EmotionState struct {
	AngerLevel       int        `json:"anger_level"`
	CooldownUntil    *time.Time `json:"anger_cooldown_until,omitempty"`
	ClickCount       int        `json:"anger_click_count"`
	ClickWindowStart *time.Time `json:"anger_click_window_start,omitempty"`
	ShakeCount       int        `json:"anger_shake_count"`
	LastShakeTime    *time.Time `json:"anger_last_shake_time,omitempty"`
	NightDisturbCount int       `json:"night_disturb_count"`
	NightDisturbDate string     `json:"night_disturb_date,omitempty"`
	ColdWarFeedCount int        `json:"cold_war_feed_count"`
	Display          string     `json:"emotion_state"`
}

// SleepState tracks tonight's disturbances and the mood snapshot taken
// before bedtime, which weighs the next dream roll.
type SleepState struct {
	DisturbCountTonight int     `json:"disturb_count_tonight"`
	HadBadSleep         bool    `json:"had_bad_sleep"`
	PreSleepMood        float64 `json:"pre_sleep_mood"`
}

// DailyState holds the per-calendar-day flags reset by the day rollover.
type DailyState struct {
	LastActiveDate          string `json:"last_active_date,omitempty"`
	GreetedToday            bool   `json:"greeted_today"`
	PapersFetchedToday      bool   `json:"papers_fetched_today"`
	DreamSettledToday       bool   `json:"dream_settled_today"`
	LastDream               string `json:"last_dream,omitempty"`
	ComfortedAfterNightmare bool   `json:"comforted_after_nightmare"`
}

// TrustPenalties are the once-per-day penalty flags.
type TrustPenalties struct {
	HungerWarned        bool `json:"hunger_warned"`
	DirtyWarned         bool `json:"dirty_warned"`
	AngerCountToday     int  `json:"anger_count_today"`
	SuperAngryPenalized bool `json:"super_angry_penalized"`
}

// GrowthState accumulates experience; level is derived from it and cached.
type GrowthState struct {
	TotalExp int `json:"total_exp"`
	Level    int `json:"level"`
}

// Inventory holds owned item ids and the per-slot equipment map.
type Inventory struct {
	OwnedItems []string          `json:"owned_items"`
	Equipped   map[string]string `json:"equipped"`
}

// MoodHistory tracks the rolling-hour full-service window and the comfort
// cooldown.
type MoodHistory struct {
	LastFullServiceHour string     `json:"last_full_service_hour,omitempty"`
	ServicesThisHour    []string   `json:"services_this_hour,omitempty"`
	MorningGreetedToday bool       `json:"morning_greeted_today"`
	ComfortLastUsed     *time.Time `json:"comfort_last_used,omitempty"`
}

// State is the whole persisted save record. It is loaded and stored as a
// single unit and mutated only through a Manager.
type State struct {
	Hunger      float64 `json:"hunger"`
	Cleanliness float64 `json:"cleanliness"`
	Happiness   float64 `json:"happiness"`
	Vitality    float64 `json:"vitality"`

	IsDead    bool       `json:"is_dead"`
	SickSince *time.Time `json:"sick_since,omitempty"`

	LastSaveTime time.Time `json:"last_save_time"`
	CreatedAt    time.Time `json:"created_at"`
	AliveDays    int       `json:"alive_days"`

	LastInteraction *time.Time `json:"last_interaction,omitempty"`

	HourlyClicks  map[string]int `json:"hourly_clicks,omitempty"`
	ClickHistory  map[string]int `json:"click_history,omitempty"`
	HungerHistory []float64      `json:"hunger_history,omitempty"`
	BodyType      string         `json:"body_type"`

	Trust              float64            `json:"trust"`
	TrustStreak        int                `json:"trust_streak"`
	LastTrustCheckDate string             `json:"last_trust_check_date,omitempty"`
	TrustDailyGains    map[string]float64 `json:"trust_daily_gains"`
	TrustDailyDate     string             `json:"trust_daily_date,omitempty"`
	TrustPenalties     TrustPenalties     `json:"trust_penalties"`
	TrustPenaltyDate   string             `json:"trust_penalty_date,omitempty"`

	CasualChatCountToday int    `json:"casual_chat_count_today"`
	CasualChatDate       string `json:"casual_chat_date,omitempty"`

	MoodHistory MoodHistory  `json:"mood_history"`
	SleepData   SleepState   `json:"sleep_data"`
	DailyState  DailyState   `json:"daily_state"`
	Emotion     EmotionState `json:"emotion"`
	GrowthData  GrowthState  `json:"growth_data"`

	BehaviorStats map[string]int `json:"behavior_stats"`

	Inventory Inventory `json:"inventory"`
}

// starterItems are owned from the first run.
var starterItems = items.Defaults()

// DefaultState returns a fresh save record. It is also the migration
// template: loading unmarshals the stored document over a default record,
// so fields absent from old saves keep their defaults.
func DefaultState() *State {
	now := TimeNow()
	return &State{
		Hunger:      80,
		Cleanliness: 80,
		Happiness:   80,
		Vitality:    50,

		LastSaveTime: now,
		CreatedAt:    now,

		BodyType: BodyNormal,

		Trust:           InitialTrust,
		TrustDailyGains: map[string]float64{"chat": 0, "feed": 0, "clean": 0, "paper": 0},

		SleepData: SleepState{PreSleepMood: 70},

		Emotion: EmotionState{Display: EmotionNormal},

		GrowthData: GrowthState{Level: 1},

		HourlyClicks:  map[string]int{},
		ClickHistory:  map[string]int{},
		BehaviorStats: map[string]int{},

		Inventory: Inventory{
			OwnedItems: append([]string(nil), starterItems...),
			Equipped:   emptyEquipMap(),
		},
	}
}

func emptyEquipMap() map[string]string {
	equipped := make(map[string]string, len(EquipSlots))
	for _, slot := range EquipSlots {
		equipped[slot] = ""
	}
	return equipped
}

// normalize repairs nil maps and missing slots after unmarshalling an old
// or partial record.
func (s *State) normalize() {
	if s.TrustDailyGains == nil {
		s.TrustDailyGains = map[string]float64{"chat": 0, "feed": 0, "clean": 0, "paper": 0}
	}
	if s.HourlyClicks == nil {
		s.HourlyClicks = map[string]int{}
	}
	if s.ClickHistory == nil {
		s.ClickHistory = map[string]int{}
	}
	if s.BehaviorStats == nil {
		s.BehaviorStats = map[string]int{}
	}
	if s.Inventory.OwnedItems == nil {
		s.Inventory.OwnedItems = append([]string(nil), starterItems...)
	}
	if s.Inventory.Equipped == nil {
		s.Inventory.Equipped = emptyEquipMap()
	}
	for _, slot := range EquipSlots {
		if _, ok := s.Inventory.Equipped[slot]; !ok {
			s.Inventory.Equipped[slot] = ""
		}
	}
	if s.BodyType == "" {
		s.BodyType = BodyNormal
	}
	if s.GrowthData.Level < 1 {
		s.GrowthData.Level = 1
	}
	if s.Emotion.Display == "" {
		s.Emotion.Display = EmotionNormal
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = TimeNow()
	}
}

// incrementBehavior bumps a behavior counter, side-tracking the running
// maximum for consecutive care.
func (s *State) incrementBehavior(name string, amount int) {
	s.BehaviorStats[name] += amount
	if name == "consecutive_care" && s.BehaviorStats["consecutive_care"] > s.BehaviorStats["consecutive_care_max"] {
		s.BehaviorStats["consecutive_care_max"] = s.BehaviorStats["consecutive_care"]
	}
}

func clampStat(v float64) float64 {
	if v < MinStat {
		return MinStat
	}
	if v > MaxStat {
		return MaxStat
	}
	return v
}
