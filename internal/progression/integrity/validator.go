package integrity

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/seanfitz121/gymtracker/internal/progression/formula"
	"github.com/seanfitz121/gymtracker/internal/progression/submission"
	"github.com/seanfitz121/gymtracker/internal/telemetry/tracing"
)

const (
	MaxSetsPerWorkout     = 500
	MaxWorkoutVolumeKg    = 50_000.0
	MaxSetWeightKg        = 500.0
	MaxXPPerHour          = 2000.0
	NewAccountPeriod      = 7 * 24 * time.Hour
	NewAccountMaxVolumeKg = 10_000.0

	// flat per-set estimate, not the reward policy's XP
	estimatedXPPerSet = 5

	// elapsed time is floored to this, so a just-started workout does not divide by ~0
	minElapsed = time.Minute
)

//go:generate mockgen -source=$GOFILE -destination=validator_mocks_test.go -package=integrity_test

type accountLookup interface {
	VerifiedAt(ctx context.Context, userID uuid.UUID) (time.Time, error)
}

// Summary holds the figures the checks were evaluated against.
type Summary struct {
	TotalSets        int     `json:"totalSets"`
	TotalVolumeKg    float64 `json:"totalVolumeKg"`
	MaxSetWeightKg   float64 `json:"maxSetWeightKg"`
	ElapsedHours     float64 `json:"elapsedHours"`
	ImpliedXPPerHour float64 `json:"impliedXpPerHour"`
	// AccountAgeHours is only known when the new-account check had to look it up
	AccountAgeHours *float64 `json:"accountAgeHours,omitempty"`
}

type Result struct {
	Passed   bool     `json:"passed"`
	Flags    []string `json:"flags"`
	Severity Severity `json:"severity"`
	Summary  Summary  `json:"summary"`
}

// Rejected reports whether the caller must refuse to persist the workout.
func (r *Result) Rejected() bool {
	return !r.Passed && r.Severity == SeverityHigh
}

// FlagType is the semicolon-joined list of reasons, as stored on the flag row.
func (r *Result) FlagType() string {
	return strings.Join(r.Flags, "; ")
}

// Details is the structured payload stored with an integrity flag.
func (r *Result) Details() map[string]any {
	return map[string]any{
		"thresholds": map[string]any{
			"maxSets":               MaxSetsPerWorkout,
			"maxVolumeKg":           MaxWorkoutVolumeKg,
			"maxSetWeightKg":        MaxSetWeightKg,
			"maxXpPerHour":          MaxXPPerHour,
			"newAccountDays":        int(NewAccountPeriod.Hours() / 24),
			"newAccountMaxVolumeKg": NewAccountMaxVolumeKg,
		},
		"workout": r.Summary,
		"flags":   r.Flags,
	}
}

// Validator judges a single workout submission for physical plausibility and
// abuse patterns. It never persists anything.
type Validator struct {
	accounts accountLookup
	NowFunc  func() time.Time
}

func NewValidator(accounts accountLookup) *Validator {
	return &Validator{
		accounts: accounts,
		NowFunc:  time.Now,
	}
}

func (v *Validator) Validate(ctx context.Context, userID uuid.UUID, workout submission.Workout) (_ *Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "validator.progression.validate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID.String()))

	now := v.NowFunc()
	sets := workout.AllSets()

	summary := Summary{
		TotalSets:     len(sets),
		TotalVolumeKg: submission.VolumeKg(sets),
	}
	for _, s := range sets {
		summary.MaxSetWeightKg = max(summary.MaxSetWeightKg, formula.ToKg(s.Weight, s.Unit))
	}
	elapsed := max(now.Sub(workout.StartedAt), minElapsed)
	summary.ElapsedHours = elapsed.Hours()
	summary.ImpliedXPPerHour = float64(summary.TotalSets*estimatedXPPerSet) / summary.ElapsedHours

	result := &Result{
		Passed:   true,
		Flags:    []string{},
		Severity: SeverityLow,
		Summary:  summary,
	}
	flag := func(severity Severity, format string, args ...any) {
		if result.Passed {
			result.Passed = false
			result.Severity = severity
		} else {
			result.Severity = result.Severity.AtLeast(severity)
		}
		result.Flags = append(result.Flags, fmt.Sprintf(format, args...))
	}

	if summary.TotalSets > MaxSetsPerWorkout {
		flag(SeverityHigh, "Excessive set count: %d sets (max %d)", summary.TotalSets, MaxSetsPerWorkout)
	}
	if summary.TotalVolumeKg > MaxWorkoutVolumeKg {
		flag(SeverityHigh, "Excessive total volume: %.0f kg (max %.0f kg)", summary.TotalVolumeKg, MaxWorkoutVolumeKg)
	}
	if summary.MaxSetWeightKg > MaxSetWeightKg {
		flag(SeverityMedium, "Impossible weight: %.1f kg in a single set (max %.0f kg)", summary.MaxSetWeightKg, MaxSetWeightKg)
	}
	if summary.ImpliedXPPerHour > MaxXPPerHour {
		flag(SeverityMedium, "Suspicious XP rate: %.0f XP/hour (max %.0f)", summary.ImpliedXPPerHour, MaxXPPerHour)
	}

	// the account lookup is only worth a round trip when the volume could trip the throttle
	if summary.TotalVolumeKg > NewAccountMaxVolumeKg {
		verifiedAt, err := v.accounts.VerifiedAt(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("account verification lookup: %w", err)
		}
		age := now.Sub(verifiedAt)
		ageHours := age.Hours()
		result.Summary.AccountAgeHours = &ageHours
		if age < NewAccountPeriod {
			flag(SeverityMedium, "New account high volume: %.0f kg within %d days of verification (max %.0f kg)",
				summary.TotalVolumeKg, int(NewAccountPeriod.Hours()/24), NewAccountMaxVolumeKg)
		}
	}

	span.SetAttributes(
		attribute.Bool("passed", result.Passed),
		attribute.String("severity", result.Severity.String()),
		attribute.Int("flags", len(result.Flags)),
	)

	return result, nil
}
