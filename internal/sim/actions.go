package sim

import (
	"log"
	"time"
)

// CareResult tells the caller what a care action earned, so it can pick
// feedback text. NewLevel is 0 unless the action leveled the pet up.
type CareResult struct {
	StatBonus   bool
	FullService bool
	TrustGained bool
	NewLevel    int

	// ColdWar reports how a feed landed during an anger episode:
	// "reduce_cooldown", "calm_down", "softened" or "still_angry".
	ColdWar string
}

// modifyStat clamps the named stat into [0,100] and re-derives sickness.
func (m *Manager) modifyStat(stat string, delta float64, now time.Time) {
	switch stat {
	case "hunger":
		m.state.Hunger = clampStat(m.state.Hunger + delta)
	case "cleanliness":
		m.state.Cleanliness = clampStat(m.state.Cleanliness + delta)
	case "happiness":
		m.state.Happiness = clampStat(m.state.Happiness + delta)
	case "vitality":
		m.state.Vitality = clampStat(m.state.Vitality + delta)
	default:
		log.Printf("modifyStat: unknown stat %q", stat)
		return
	}
	m.refreshSickness(now)
}

// moodMultiplier scales feed/play effectiveness down while the pet is
// miserable. Bath is deliberately unscaled.
func (m *Manager) moodMultiplier() float64 {
	if m.state.Happiness < LowMoodThreshold {
		return LowMoodMultiplier
	}
	return 1.0
}

// applyMoodGain adds happiness with the trust bonus folded in: a trusting
// pet enjoys things more.
func (m *Manager) applyMoodGain(base float64, now time.Time) {
	final := base * (1 + m.trustBonus()*0.4) * m.moodMultiplier()
	m.modifyStat("happiness", final, now)
}

// applyMoodDecay drains happiness for the elapsed hours, with extra drain
// when the pet is lonely, starving, filthy, or slept badly. Trust slows
// the whole thing down.
func (m *Manager) applyMoodDecay(baseRate, hours float64, now time.Time) {
	extra := 0.0
	if m.isLonely(now) {
		extra += 2
	}
	if m.state.Hunger < 20 {
		extra++
	}
	if m.state.Cleanliness < 20 {
		extra++
	}
	if m.state.SleepData.HadBadSleep && now.Hour() < BadSleepClearHour {
		extra += 2
	}
	rate := (baseRate + extra) * (1 - m.trustBonus()*0.25)
	m.modifyStat("happiness", -rate*hours, now)
}

// Feed restores hunger. During an anger episode the meal doubles as a
// peace offering; the ColdWar field of the result says how it was taken.
func (m *Manager) Feed() CareResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := TimeNow()
	m.rollDay(now)

	var res CareResult
	if m.state.Emotion.AngerLevel > 0 {
		res.ColdWar = m.feedDuringColdWar(now)
	}

	m.modifyStat("hunger", FeedHungerRestore*m.moodMultiplier(), now)
	m.modifyStat("vitality", FeedVitalityBoost, now)
	m.recordInteraction(now)

	if m.state.Hunger >= HighStatThreshold {
		m.applyMoodGain(FullFeedMoodBonus, now)
		res.StatBonus = true
	}
	res.FullService = m.recordService("feed", now)
	res.TrustGained = m.addTrust(trustGain["feed"], "feed", now)

	m.state.incrementBehavior("feed_count", 1)
	res.NewLevel = m.addExperience(expRewards["feed"])
	m.checkUnlocks()
	m.persist()
	return res
}

// Bath restores cleanliness. Unlike feed and play it ignores the mood
// multiplier; a bath works whether the pet likes it or not.
func (m *Manager) Bath() CareResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := TimeNow()
	m.rollDay(now)

	var res CareResult
	m.modifyStat("cleanliness", BathCleanlinessRestore, now)
	m.modifyStat("vitality", BathVitalityBoost, now)
	m.recordInteraction(now)

	if m.state.Cleanliness >= HighStatThreshold {
		m.applyMoodGain(CleanMoodBonus, now)
		res.StatBonus = true
	}
	res.FullService = m.recordService("bath", now)
	res.TrustGained = m.addTrust(trustGain["clean"], "clean", now)

	m.state.incrementBehavior("clean_count", 1)
	res.NewLevel = m.addExperience(expRewards["clean"])
	m.checkUnlocks()
	m.persist()
	return res
}

// Play restores happiness. No trust gain; play is its own reward.
func (m *Manager) Play() (fullService bool, newLevel int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := TimeNow()
	m.rollDay(now)

	m.modifyStat("happiness", PlayHappinessRestore*m.moodMultiplier(), now)
	m.modifyStat("vitality", PlayVitalityBoost, now)
	m.recordInteraction(now)

	fullService = m.recordService("play", now)

	m.state.incrementBehavior("play_count", 1)
	newLevel = m.addExperience(expRewards["play"])
	m.checkUnlocks()
	m.persist()
	return fullService, newLevel
}

// recordService tracks which of feed/bath/play happened in the current
// clock-hour bucket. Completing all three pays the full-service bonus and
// resets the bucket so it cannot double-fire within the hour.
func (m *Manager) recordService(service string, now time.Time) bool {
	hourKey := now.Format(hourKeyFormat)
	mh := &m.state.MoodHistory

	if mh.LastFullServiceHour != hourKey {
		mh.ServicesThisHour = nil
		mh.LastFullServiceHour = hourKey
	}
	seen := false
	for _, s := range mh.ServicesThisHour {
		if s == service {
			seen = true
			break
		}
	}
	if !seen {
		mh.ServicesThisHour = append(mh.ServicesThisHour, service)
	}

	if len(mh.ServicesThisHour) >= 3 {
		mh.ServicesThisHour = nil
		m.applyMoodGain(FullServiceMoodBonus, now)
		return true
	}
	return false
}

// RecordClick handles a pet/click interaction: a tiny vitality and mood
// bump, the hourly click ledger, and the anger click window. Returns the
// new level when the two exp tip the pet over, else 0.
func (m *Manager) RecordClick() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := TimeNow()
	m.rollDay(now)

	m.state.ClickHistory[now.Format(dayKeyFormat)]++
	m.state.HourlyClicks[now.Format(hourKeyFormat)]++
	m.cleanupHourlyClicks(now)

	m.modifyStat("vitality", ClickVitalityBoost, now)
	m.applyMoodGain(float64(1+RandIntn(2)), now)
	m.recordInteraction(now)

	m.state.incrementBehavior("pet_count", 1)
	if isSleepHour(now.Hour()) {
		m.state.incrementBehavior("night_interactions", 1)
	}

	m.addAngerClick(now)

	newLevel := m.addExperience(expRewards["pet"])
	m.checkUnlocks()
	m.persist()
	return newLevel
}

// cleanupHourlyClicks drops click buckets older than 24 hours. The hour
// key format sorts lexicographically, so a plain string compare works.
func (m *Manager) cleanupHourlyClicks(now time.Time) {
	cutoff := now.Add(-24 * time.Hour).Format(hourKeyFormat)
	for k := range m.state.HourlyClicks {
		if k < cutoff {
			delete(m.state.HourlyClicks, k)
		}
	}
}

func (m *Manager) currentHourClicks(now time.Time) int {
	return m.state.HourlyClicks[now.Format(hourKeyFormat)]
}

// isWorkTime reports weekday 09:00-18:00, the window where click spam
// reads as slacking off.
func isWorkTime(now time.Time) bool {
	wd := now.Weekday()
	if wd == time.Saturday || wd == time.Sunday {
		return false
	}
	return now.Hour() >= WorkHourStart && now.Hour() < WorkHourEnd
}

// isSlacking reports whether the user is clicking the pet hard enough
// during work hours to annoy it.
func (m *Manager) isSlacking(now time.Time) bool {
	return isWorkTime(now) && m.currentHourClicks(now) > SlackingThreshold
}

// Comfort soothes the pet. Rejected (false, 0) while on cooldown.
func (m *Manager) Comfort() (ok bool, newLevel int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := TimeNow()
	m.rollDay(now)

	if last := m.state.MoodHistory.ComfortLastUsed; last != nil && now.Sub(*last) < ComfortCooldown {
		return false, 0
	}
	t := now
	m.state.MoodHistory.ComfortLastUsed = &t
	m.modifyStat("happiness", ComfortMoodAmount, now)
	m.modifyStat("vitality", ComfortVitalityBoost, now)
	m.recordInteraction(now)

	m.state.incrementBehavior("comfort_count", 1)
	newLevel = m.addExperience(expRewards["comfort"])
	m.checkUnlocks()
	m.persist()
	return true, newLevel
}

// ComfortCooldownRemaining reports seconds until Comfort works again.
func (m *Manager) ComfortCooldownRemaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	last := m.state.MoodHistory.ComfortLastUsed
	if last == nil {
		return 0
	}
	remaining := ComfortCooldown - TimeNow().Sub(*last)
	if remaining < 0 {
		return 0
	}
	return int(remaining.Seconds())
}

// CheckMorningGreeting pays the once-per-day morning bonus when first
// called between 06:00 and 09:00.
func (m *Manager) CheckMorningGreeting() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := TimeNow()
	m.rollDay(now)

	if now.Hour() < MorningStartHour || now.Hour() >= MorningEndHour {
		return false
	}
	if m.state.MoodHistory.MorningGreetedToday {
		return false
	}
	m.state.MoodHistory.MorningGreetedToday = true
	m.applyMoodGain(MorningMoodBonus, now)
	return true
}

// Paper-digest feedback surface. The fetching and summarization pipeline
// lives elsewhere; the simulation only sees these calls.

// RecordPaperRead credits a read paper. Returns the new level or 0.
func (m *Manager) RecordPaperRead() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rollDay(TimeNow())
	m.state.incrementBehavior("paper_reads", 1)
	newLevel := m.addExperience(expRewards["paper_read"])
	m.checkUnlocks()
	m.persist()
	return newLevel
}

// RecordPaperLike credits a liked paper. Returns the new level or 0.
func (m *Manager) RecordPaperLike() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rollDay(TimeNow())
	m.state.incrementBehavior("paper_likes", 1)
	newLevel := m.addExperience(expRewards["paper_like"])
	m.checkUnlocks()
	m.persist()
	return newLevel
}

// RecordPaperBookmark credits a bookmarked paper, the only paper action
// that also earns trust (capped per day like every trust source).
func (m *Manager) RecordPaperBookmark() (trustGained bool, newLevel int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := TimeNow()
	m.rollDay(now)
	m.state.incrementBehavior("paper_bookmarks", 1)
	trustGained = m.addTrust(trustGain["paper"], "paper", now)
	newLevel = m.addExperience(expRewards["paper_bookmark"])
	m.checkUnlocks()
	m.persist()
	return trustGained, newLevel
}

// MarkGreeted flags today's hello as delivered.
func (m *Manager) MarkGreeted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rollDay(TimeNow())
	m.state.DailyState.GreetedToday = true
	m.persist()
}

// GreetedToday reports whether the pet already said hello today.
func (m *Manager) GreetedToday() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rollDay(TimeNow())
	return m.state.DailyState.GreetedToday
}

// MarkPapersFetched flags today's digest as fetched.
func (m *Manager) MarkPapersFetched() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rollDay(TimeNow())
	m.state.DailyState.PapersFetchedToday = true
	m.persist()
}

// PapersFetchedToday reports whether today's digest already ran.
func (m *Manager) PapersFetchedToday() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rollDay(TimeNow())
	return m.state.DailyState.PapersFetchedToday
}
