package gamification

import (
	"errors"
	"time"

	"github.com/seanfitz121/gymtracker/internal/progression/formula"
)

const (
	ReasonWorkoutCompleted = "workout_completed"

	WorkoutCooldown    = 30 * time.Minute
	MinWorkoutDuration = 5 * time.Minute
	DailyXPCap         = 500
)

var ErrInvalidXPAmount = errors.New("xp amount must be positive")

// SkipReason tells why an XP grant awarded nothing. Empty when XP was awarded.
type SkipReason string

const (
	SkipCooldown SkipReason = "cooldown"
	SkipTooShort SkipReason = "too_short"
	SkipDailyCap SkipReason = "daily_cap"
)

type xpGrant struct {
	awarded int
	skipped SkipReason
}

// grantXP applies the reward policy to a candidate amount and, if anything is
// awarded, adds it to the profile's total, level and daily counter.
// The profile is left untouched when the grant is skipped.
//
// The gates run off the reward stamps, not off LastWorkoutAt: the streak keeps
// the first workout of a day, which would let later same-day workouts skip the cooldown.
func grantXP(p *Profile, amount int, reason string, duration *time.Duration, now time.Time, loc *time.Location) xpGrant {
	isWorkout := reason == ReasonWorkoutCompleted
	if isWorkout {
		if p.LastWorkoutXPAt != nil && now.Sub(*p.LastWorkoutXPAt) < WorkoutCooldown {
			return xpGrant{skipped: SkipCooldown}
		}
		if duration != nil && *duration < MinWorkoutDuration {
			return xpGrant{skipped: SkipTooShort}
		}
	}

	// the counter belongs to the local day of the last grant
	daily := p.DailyXPEarned
	if p.LastXPAt == nil || !formula.SameDay(*p.LastXPAt, now, loc) {
		daily = 0
	}

	awarded := max(min(amount, DailyXPCap-daily), 0)
	if awarded == 0 {
		return xpGrant{skipped: SkipDailyCap}
	}

	p.TotalXP += awarded
	p.Level = formula.Level(p.TotalXP)
	p.DailyXPEarned = daily + awarded
	stamp := now
	p.LastXPAt = &stamp
	if isWorkout {
		workoutStamp := now
		p.LastWorkoutXPAt = &workoutStamp
	}
	return xpGrant{awarded: awarded}
}
