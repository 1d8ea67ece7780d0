package submission

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/seanfitz121/gymtracker/internal/progression/formula"
)

var ErrInvalidSubmission = errors.New("invalid workout submission")

// Set is a single logged set. Reps and weight are what the user entered.
type Set struct {
	ExerciseID string             `json:"exerciseId"`
	Position   int                `json:"position"`
	Reps       int                `json:"reps"`
	Weight     float64            `json:"weight"`
	Unit       formula.WeightUnit `json:"unit"`
	RPE        *float64           `json:"rpe,omitempty"`
	IsWarmup   bool               `json:"isWarmup"`
	// Round is the round number within a block (supersets, circuits)
	Round *int `json:"round,omitempty"`

	// BlockIndex is set by Workout.AllSets for sets that belong to a block.
	BlockIndex *int `json:"-"`
}

type Exercise struct {
	ExerciseID string `json:"exerciseId"`
	Sets       []Set  `json:"sets"`
}

// Block groups exercises performed together in rounds.
type Block struct {
	Name      string     `json:"name"`
	Rounds    int        `json:"rounds"`
	Exercises []Exercise `json:"exercises"`
}

// Workout is a just-completed workout as submitted by the client.
type Workout struct {
	StartedAt time.Time  `json:"startedAt"`
	Title     *string    `json:"title,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
	Exercises []Exercise `json:"exercises"`
	Blocks    []Block    `json:"blocks,omitempty"`
}

// AllSets returns flat exercise sets followed by all block sets, in submission order.
// A set without an exercise reference inherits it from its parent exercise.
func (w Workout) AllSets() []Set {
	var sets []Set
	for _, ex := range w.Exercises {
		sets = appendExerciseSets(sets, ex, nil)
	}
	for i, b := range w.Blocks {
		blockIndex := i
		for _, ex := range b.Exercises {
			sets = appendExerciseSets(sets, ex, &blockIndex)
		}
	}
	return sets
}

// CompletedSets returns the non-warmup sets that have reps and weight logged.
func (w Workout) CompletedSets() []Set {
	var completed []Set
	for _, s := range w.AllSets() {
		if s.IsWarmup || s.Reps <= 0 || s.Weight <= 0 {
			continue
		}
		completed = append(completed, s)
	}
	return completed
}

// Validate checks the submission's shape. It says nothing about plausibility.
func (w Workout) Validate() error {
	if w.StartedAt.IsZero() {
		return fmt.Errorf("%w: start timestamp missing", ErrInvalidSubmission)
	}
	for i, s := range w.AllSets() {
		if strings.TrimSpace(s.ExerciseID) == "" {
			return fmt.Errorf("%w: set %d has no exercise", ErrInvalidSubmission, i)
		}
		if s.Reps < 0 {
			return fmt.Errorf("%w: set %d has negative reps", ErrInvalidSubmission, i)
		}
		if s.Weight < 0 {
			return fmt.Errorf("%w: set %d has negative weight", ErrInvalidSubmission, i)
		}
		if !s.Unit.IsValid() {
			return fmt.Errorf("%w: set %d has unknown weight unit %q", ErrInvalidSubmission, i, s.Unit)
		}
	}
	return nil
}

// VolumeKg sums reps x weight over sets, normalized to kilograms.
func VolumeKg(sets []Set) float64 {
	var volume float64
	for _, s := range sets {
		volume += float64(s.Reps) * formula.ToKg(s.Weight, s.Unit)
	}
	return volume
}

func appendExerciseSets(sets []Set, ex Exercise, blockIndex *int) []Set {
	for _, s := range ex.Sets {
		if s.ExerciseID == "" {
			s.ExerciseID = ex.ExerciseID
		}
		s.BlockIndex = blockIndex
		sets = append(sets, s)
	}
	return sets
}
