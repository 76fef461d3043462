package sim

import (
	"time"

	"tinpet/internal/items"
)

// Game constants
const (
	DefaultPetName = "Tinny"
	MaxStat        = 100.0
	MinStat        = 0.0

	LowStatThreshold      = 30.0 // Below this a stat shows up in the status line
	CriticalStatThreshold = 15.0 // Below this trust drains every decay tick
	HighStatThreshold = 80.0 // At or above this feed/bath grant a bonus
	HappyStatFloor    = 70.0 // All three care stats above this reads as happy

	SickDeathThreshold = 2 * time.Hour // Time spent sick before death
	SickDecayMult      = 2.0           // Decay speed while sick
	ReviveStatValue    = 50.0          // Care stats after a revive

	OfflineHappinessFloorGap = 24 * time.Hour // Offline gap that floors happiness
	OfflineHappinessFloor    = 15.0

	// Stat decay rates (per hour)
	HungerDecayRate      = 5.0
	CleanlinessDecayRate = 3.0
	HappinessDecayRate   = 2.0
	VitalityDecayRate    = 1.0

	// Restore amounts
	FeedHungerRestore     = 30.0
	BathCleanlinessRestore = 40.0
	PlayHappinessRestore  = 25.0

	// Vitality boosts per action
	FeedVitalityBoost    = 3.0
	BathVitalityBoost    = 3.0
	PlayVitalityBoost    = 4.0
	ClickVitalityBoost   = 0.5
	ComfortVitalityBoost = 5.0

	// Mood bonuses
	FullFeedMoodBonus    = 5.0  // Hunger restored to >=80
	CleanMoodBonus       = 5.0  // Cleanliness restored to >=80
	FullServiceMoodBonus = 10.0 // Feed+bath+play within one clock hour
	MorningMoodBonus     = 3.0
	ComfortMoodAmount    = 15.0
	LowMoodMultiplier    = 0.5  // Feed/play effectiveness when happiness < 25
	LowMoodThreshold     = 25.0

	ComfortCooldown = 30 * time.Minute

	// Loneliness
	LonelyHoursBase   = 3.0 // Trust stretches this, see lonelinessThreshold
	NeglectHours      = 24.0
	SlackingThreshold = 20 // Clicks per hour that read as slacking off at work
)

// Emotion system constants
const (
	AngerClickWindow = 10 * time.Minute
	AngerShakeWindow = 30 * time.Second

	CalmDownHappinessBonus = 5.0
	ApologyHappinessBonus  = 10.0
	ColdWarDrainPenalty    = 2.0 // Happiness lost per minute of cold war at level >= 2
	ColdWarFeedReduction   = 10  // Seconds shaved off the cooldown by a feed at level 2
	ColdWarFeedsToSoften   = 3

	NightDisturbFirstPenalty = 3.0
	NightDisturbLaterPenalty = 5.0
	BadSleepDisturbCount     = 3
)

// Anger escalation tables, indexed by level 1..3.
var (
	angerClickThresholds = map[int]int{1: 21, 2: 36, 3: 51}
	angerShakeThresholds = map[int]int{2: 4, 3: 6}
	coldWarDuration      = map[int]time.Duration{1: 10 * time.Second, 2: 30 * time.Second, 3: 120 * time.Second}
	angerHappinessHit    = map[int]float64{1: -3, 2: -5, 3: -15}
)

// Trust system constants
const (
	InitialTrust = 5.0
	MaxTrust     = 100.0

	TrustStreakDays  = 3   // Streak length before the daily bonus kicks in
	TrustStreakBonus = 1.0 // Daily bonus once the streak is running

	DailyHealthyFloor = 50.0 // All care stats at or above this counts as a good day
	SettlementHour    = 6    // Daily settlement runs at the first check after this hour
)

// Trust gain per action and daily cap per source. Sources without a cap
// entry (streak) are uncapped.
var (
	trustGain = map[string]float64{
		"chat":   0.5,
		"feed":   0.25,
		"clean":  0.25,
		"paper":  0.25,
		"streak": 1.0,
	}
	trustDailyCap = map[string]float64{
		"chat":  2.5,
		"feed":  0.75,
		"clean": 0.5,
		"paper": 0.75,
	}
	trustPenalty = map[string]float64{
		"hunger_warning":  -0.5,
		"hunger_critical": -2,
		"dirty_warning":   -0.5,
		"happiness_crash": -2,
		"anger_repeat":    -0.5,
		"super_angry":     -3,
		"neglect":         -1,
		"death":           -20,
	}
)

// TrustBand describes one named band of the trust scale.
type TrustBand struct {
	Low, High   int
	Name, Blurb string
}

var trustBands = []TrustBand{
	{0, 19, "Stranger", "Keeping an eye on you..."},
	{20, 39, "Acquaintance", "Starting to trust you"},
	{40, 59, "Friend", "You're not so bad"},
	{60, 79, "Close Friend", "Favorite person!"},
	{80, 99, "Best Friend", "Absolute trust!"},
	{100, 100, "Soulmate", "Inseparable!"},
}

// Sleep and dream constants
const (
	SleepHourStart   = 23 // Sleep hours are [23:00, 06:00)
	SleepHourEnd     = 6
	PreSleepMoodHour = 22 // Happiness snapshot window
	BadSleepClearHour = 8

	GoodDreamMoodBonus  = 10.0
	NightmareMoodPenalty = -8.0
	NightmareComfortBonus = 5.0

	WorkHourStart = 9
	WorkHourEnd   = 18

	MorningStartHour = 6
	MorningEndHour   = 9
)

// Dream outcomes
const (
	DreamGood      = "good"
	DreamNone      = "none"
	DreamNightmare = "nightmare"
)

// dreamWeights returns good/none/nightmare weights for a pre-sleep mood.
func dreamWeights(preSleepMood float64) [3]float64 {
	switch {
	case preSleepMood >= 70:
		return [3]float64{0.50, 0.40, 0.10}
	case preSleepMood <= 30:
		return [3]float64{0.15, 0.50, 0.35}
	default:
		return [3]float64{0.30, 0.50, 0.20}
	}
}

// Experience rewards per action.
var expRewards = map[string]int{
	"feed":           10,
	"clean":          10,
	"play":           15,
	"pet":            2,
	"comfort":        20,
	"chat":           15,
	"chat_message":   3,
	"paper_read":     20,
	"paper_like":     5,
	"paper_bookmark": 10,
	"daily_healthy":  30,
	"consecutive_3":  50,
	"consecutive_7":  100,
}

// LevelStage describes one named band of the level scale.
type LevelStage struct {
	Low, High int
	Name      string
	Title     string
}

var levelStages = []LevelStage{
	{1, 5, "Hatchling", "Little Newbie"},
	{6, 15, "Growing", "Small Buddy"},
	{16, 30, "Mature", "Good Friend"},
	{31, 50, "Prime", "Soulbound"},
	{51, 999, "Legendary", "Soulmate"},
}

// Emotion display states
const (
	EmotionNormal       = "normal"
	EmotionHappy        = "happy"
	EmotionSad          = "sad"
	EmotionVerySad      = "very_sad"
	EmotionAnnoyed      = "annoyed"
	EmotionAngry        = "angry"
	EmotionSuperAnnoyed = "super_annoyed"
)

// Pet statuses, in precedence order (see Status).
const (
	StatusDead    = "dead"
	StatusSick    = "sick"
	StatusSleep   = "sleep"
	StatusAngry   = "angry"
	StatusAnnoyed = "annoyed"
	StatusLonely  = "lonely"
	StatusHungry  = "hungry"
	StatusDirty   = "dirty"
	StatusSad     = "sad"
	StatusHappy   = "happy"
	StatusIdle    = "idle"
)

// Body types derived from the hunger history.
const (
	BodyNormal = "normal"
	BodyFat    = "fat"
	BodyThin   = "thin"

	bodyHistoryMax     = 168 // One week of hourly samples
	bodyHistoryMin     = 48  // Samples needed before the body reacts
	bodyFatThreshold   = 90.0
	bodyThinThreshold  = 40.0
)

// Equipment slots, fixed set.
var EquipSlots = items.Slots

// Apology phrases accepted while furious.
var apologyPhrases = []string{
	"sorry",
	"my bad",
	"i was wrong",
	"forgive me",
	"apologize",
	"didn't mean it",
}

const (
	dayKeyFormat  = "2006-01-02"
	hourKeyFormat = "2006-01-02-15"
)
