package gamification

import (
	"time"

	"github.com/seanfitz121/gymtracker/internal/progression/formula"
)

// ForgivenessCooldown is how long the forgiveness token stays spent after use.
const ForgivenessCooldown = 30 * 24 * time.Hour

type StreakResult struct {
	CurrentStreak   int      `json:"currentStreak"`
	LongestStreak   int      `json:"longestStreak"`
	StreakIncreased bool     `json:"streakIncreased"`
	ForgivenessUsed bool     `json:"forgivenessUsed"`
	NewBadges       []string `json:"newBadges,omitempty"`
	// changed is false on the same-day path, where nothing needs writing
	changed bool
}

// ForgivenessAvailable reports whether the token can bridge a missed day at now.
func ForgivenessAvailable(p *Profile, now time.Time) bool {
	return p.ForgivenessUsedAt == nil || now.Sub(*p.ForgivenessUsedAt) > ForgivenessCooldown
}

// advanceStreak applies one workout at now to the profile's streak, comparing
// local calendar days in loc.
func advanceStreak(p *Profile, now time.Time, loc *time.Location) StreakResult {
	res := StreakResult{
		CurrentStreak: p.CurrentStreak,
		LongestStreak: p.LongestStreak,
	}

	if p.LastWorkoutAt == nil {
		p.CurrentStreak = 1
		res.StreakIncreased = true
	} else {
		switch days := formula.DaysBetween(*p.LastWorkoutAt, now, loc); {
		case days <= 0:
			// same day, or a clock that went backwards: keep the stamp so a real gap
			// later today is still detected
			return res
		case days == 1:
			p.CurrentStreak++
			res.StreakIncreased = true
		case days == 2 && ForgivenessAvailable(p, now):
			p.CurrentStreak++
			res.StreakIncreased = true
			res.ForgivenessUsed = true
			usedAt := now
			p.ForgivenessUsedAt = &usedAt
		default:
			p.CurrentStreak = 1
		}
	}

	p.LongestStreak = max(p.LongestStreak, p.CurrentStreak)
	stamp := now
	p.LastWorkoutAt = &stamp

	for _, sb := range streakBadges {
		if p.CurrentStreak >= sb.days && p.addBadge(sb.badge) {
			res.NewBadges = append(res.NewBadges, sb.badge)
		}
	}

	res.CurrentStreak = p.CurrentStreak
	res.LongestStreak = p.LongestStreak
	res.changed = true
	return res
}
