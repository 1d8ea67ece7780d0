package workouts

import (
	"time"

	"github.com/google/uuid"

	"github.com/seanfitz121/gymtracker/internal/progression/submission"
)

// Session is a persisted workout.
type Session struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"userId"`
	Title     *string          `json:"title,omitempty"`
	Notes     *string          `json:"notes,omitempty"`
	StartedAt time.Time        `json:"startedAt"`
	EndedAt   time.Time        `json:"endedAt"`
	Sets      []submission.Set `json:"sets"`
}

// WorkingVolumeKg sums the normalized volume of the non-warmup sets.
func (s *Session) WorkingVolumeKg() float64 {
	working := make([]submission.Set, 0, len(s.Sets))
	for _, set := range s.Sets {
		if !set.IsWarmup {
			working = append(working, set)
		}
	}
	return submission.VolumeKg(working)
}

func (s *Session) Duration() time.Duration {
	return s.EndedAt.Sub(s.StartedAt)
}
