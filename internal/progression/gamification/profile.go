package gamification

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

const (
	BadgeStreak7   = "streak_7"
	BadgeStreak30  = "streak_30"
	BadgeStreak100 = "streak_100"
)

var streakBadges = []struct {
	days  int
	badge string
}{
	{7, BadgeStreak7},
	{30, BadgeStreak30},
	{100, BadgeStreak100},
}

// Profile is the per-user gamification state. Version is bumped on every
// successful write and used for optimistic concurrency.
type Profile struct {
	UserID        uuid.UUID `json:"userId"`
	TotalXP       int       `json:"totalXp"`
	Level         int       `json:"level"`
	CurrentStreak int       `json:"currentStreak"`
	LongestStreak int       `json:"longestStreak"`
	// LastWorkoutAt is the time of the most recent streak-advancing workout
	LastWorkoutAt *time.Time `json:"lastWorkoutAt,omitempty"`
	// LastWorkoutXPAt is the last workout that was awarded XP, for the cooldown
	LastWorkoutXPAt *time.Time `json:"lastWorkoutXpAt,omitempty"`
	// LastXPAt is the last grant of any reason; DailyXPEarned counts that local day
	LastXPAt          *time.Time `json:"lastXpAt,omitempty"`
	DailyXPEarned     int        `json:"dailyXpEarned"`
	ForgivenessUsedAt *time.Time `json:"forgivenessUsedAt,omitempty"`
	Badges            []string   `json:"badges"`
	RankCode          string     `json:"rankCode"`
	RankScaleCode     string     `json:"rankScaleCode"`
	Version           int64      `json:"-"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// ScaleCode returns the rank scale the profile is ranked on.
func (p *Profile) ScaleCode() string {
	if p.RankScaleCode == "" {
		return DefaultScaleCode
	}
	return p.RankScaleCode
}

func (p *Profile) HasBadge(badge string) bool {
	return slices.Contains(p.Badges, badge)
}

// addBadge appends badge unless already present, reporting whether it was added.
func (p *Profile) addBadge(badge string) bool {
	if badge == "" || p.HasBadge(badge) {
		return false
	}
	p.Badges = append(p.Badges, badge)
	return true
}

// clone returns a deep copy, so a failed write never leaves a half-mutated profile behind.
func (p *Profile) clone() *Profile {
	c := *p
	c.Badges = slices.Clone(p.Badges)
	if p.LastWorkoutAt != nil {
		t := *p.LastWorkoutAt
		c.LastWorkoutAt = &t
	}
	if p.ForgivenessUsedAt != nil {
		t := *p.ForgivenessUsedAt
		c.ForgivenessUsedAt = &t
	}
	if p.LastWorkoutXPAt != nil {
		t := *p.LastWorkoutXPAt
		c.LastWorkoutXPAt = &t
	}
	if p.LastXPAt != nil {
		t := *p.LastXPAt
		c.LastXPAt = &t
	}
	return &c
}
