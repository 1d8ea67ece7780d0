package leaderboard

import (
	"time"

	"github.com/google/uuid"
)

// WeeklyAggregate is one user's totals for one week. It is always recomputed
// from the week's sessions as a whole, never patched.
type WeeklyAggregate struct {
	UserID    uuid.UUID `json:"userId"`
	ISOWeek   string    `json:"isoWeek"`
	WeekStart time.Time `json:"weekStart"`
	XP        int       `json:"xp"`
	Workouts  int       `json:"workouts"`
	VolumeKg  float64   `json:"volumeKg"`
	PRCount   int       `json:"prCount"`
	GymCode   *string   `json:"gymCode,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}
