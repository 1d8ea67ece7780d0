package records

import (
	"time"

	"github.com/google/uuid"

	"github.com/seanfitz121/gymtracker/internal/progression/formula"
)

// PersonalRecord rows are append-only: a new row is written each time the
// estimated 1RM for a user+exercise is beaten.
type PersonalRecord struct {
	ID           int64              `json:"id"`
	UserID       uuid.UUID          `json:"userId"`
	ExerciseID   string             `json:"exerciseId"`
	Weight       float64            `json:"weight"`
	Reps         int                `json:"reps"`
	Unit         formula.WeightUnit `json:"unit"`
	Estimated1RM float64            `json:"estimated1rm"`
	AchievedAt   time.Time          `json:"achievedAt"`
}

// Estimated1RMIn returns the record's estimated 1RM expressed in unit.
func (pr *PersonalRecord) Estimated1RMIn(unit formula.WeightUnit) float64 {
	return formula.ConvertWeight(pr.Estimated1RM, pr.Unit, unit)
}
