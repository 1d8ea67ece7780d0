package records

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/seanfitz121/gymtracker/internal/progression/formula"
	"github.com/seanfitz121/gymtracker/internal/telemetry/tracing"
)

var ErrInvalidUnit = errors.New("invalid weight unit")

//go:generate mockgen -source=$GOFILE -destination=detector_mocks_test.go -package=records_test

type recordsRepo interface {
	Best(ctx context.Context, userID uuid.UUID, exerciseID string) (*PersonalRecord, error)
	Add(ctx context.Context, pr PersonalRecord) (*PersonalRecord, error)
}

type CheckResult struct {
	IsNewPR bool            `json:"isNewPr"`
	Record  *PersonalRecord `json:"pr,omitempty"`
	// Previous is the best record before this check, if there was one
	Previous *PersonalRecord `json:"previous,omitempty"`
}

type Detector struct {
	repo    recordsRepo
	NowFunc func() time.Time
}

func NewDetector(repo recordsRepo) *Detector {
	return &Detector{
		repo:    repo,
		NowFunc: time.Now,
	}
}

// CheckAndCreate compares a single completed set with the user's current best
// for the exercise and stores it as a new PR if its estimated 1RM is strictly greater.
// The current best is re-read on every call, so calling it once per set within a
// session compares each set against everything stored before it.
func (d *Detector) CheckAndCreate(
	ctx context.Context,
	userID uuid.UUID,
	exerciseID string,
	weight float64,
	reps int,
	unit formula.WeightUnit,
) (_ *CheckResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "detector.progression.check-and-create-pr")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("user_id", userID.String()),
		attribute.String("exercise_id", exerciseID),
		attribute.Float64("weight", weight),
		attribute.Int("reps", reps),
		attribute.String("unit", unit.String()),
	)

	if !unit.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidUnit, unit)
	}

	candidate := formula.Estimated1RM(weight, reps)
	if candidate <= 0 {
		return &CheckResult{IsNewPR: false}, nil
	}

	best, err := d.repo.Best(ctx, userID, exerciseID)
	if err != nil && !errors.Is(err, ErrRecordNotFound) {
		return nil, fmt.Errorf("get best record: %w", err)
	}

	if best != nil && candidate <= best.Estimated1RMIn(unit) {
		return &CheckResult{IsNewPR: false, Previous: best}, nil
	}

	added, err := d.repo.Add(ctx, PersonalRecord{
		UserID:       userID,
		ExerciseID:   exerciseID,
		Weight:       weight,
		Reps:         reps,
		Unit:         unit,
		Estimated1RM: candidate,
		AchievedAt:   d.NowFunc(),
	})
	if err != nil {
		return nil, fmt.Errorf("add record: %w", err)
	}

	span.SetAttributes(attribute.Bool("new_pr", true))
	return &CheckResult{
		IsNewPR:  true,
		Record:   added,
		Previous: best,
	}, nil
}
