package workouts

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/seanfitz121/gymtracker/internal/progression/formula"
	"github.com/seanfitz121/gymtracker/internal/progression/gamification"
	"github.com/seanfitz121/gymtracker/internal/progression/integrity"
	"github.com/seanfitz121/gymtracker/internal/progression/records"
	"github.com/seanfitz121/gymtracker/internal/progression/submission"
	"github.com/seanfitz121/gymtracker/internal/telemetry/metrics"
	"github.com/seanfitz121/gymtracker/internal/telemetry/tracing"
)

var ErrWorkoutRejected = errors.New("workout flagged for suspicious activity")

// RejectedError is returned when validation comes back with high severity.
// Nothing of the workout was stored.
type RejectedError struct {
	Result *integrity.Result
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrWorkoutRejected, e.Result.FlagType())
}

func (e *RejectedError) Unwrap() error {
	return ErrWorkoutRejected
}

//go:generate mockgen -source=$GOFILE -destination=engine_mocks_test.go -package=workouts_test

type workoutValidator interface {
	Validate(ctx context.Context, userID uuid.UUID, workout submission.Workout) (*integrity.Result, error)
}

type sessionStore interface {
	Create(ctx context.Context, userID uuid.UUID, workout submission.Workout, endedAt time.Time) (*Session, error)
}

type flagStore interface {
	Create(ctx context.Context, params integrity.NewFlagParams) (*integrity.Flag, error)
	ListPending(ctx context.Context, limit int) ([]integrity.Flag, error)
	Review(ctx context.Context, id uuid.UUID, params integrity.ReviewParams) error
}

type prDetector interface {
	CheckAndCreate(ctx context.Context, userID uuid.UUID, exerciseID string, weight float64, reps int, unit formula.WeightUnit) (*records.CheckResult, error)
}

type rewarder interface {
	ApplyWorkout(ctx context.Context, params gamification.ApplyWorkoutParams) (*gamification.WorkoutRewards, error)
}

type weeklyAggregator interface {
	Update(ctx context.Context, userID uuid.UUID)
}

type EngineParams struct {
	Validator  workoutValidator
	Sessions   sessionStore
	Flags      flagStore
	Records    prDetector
	Rewards    rewarder
	Aggregates weeklyAggregator
	Metrics    *metrics.Manager
	// StoreTimeout bounds every store call of the save flow
	StoreTimeout time.Duration
	// DetachedTimeout bounds the best-effort tasks run after the save
	DetachedTimeout time.Duration
}

// Completion is everything the client needs to render the post-workout summary.
type Completion struct {
	Session    *Session                     `json:"session"`
	Validation *integrity.Result            `json:"validation"`
	NewPRs     []records.PersonalRecord     `json:"newPrs"`
	RawXP      int                          `json:"rawXp"`
	Rewards    *gamification.WorkoutRewards `json:"rewards"`
}

// Engine runs the save-workout flow: validate, persist, detect PRs, reward,
// then refresh the weekly aggregate in the background.
type Engine struct {
	validator       workoutValidator
	sessions        sessionStore
	flags           flagStore
	records         prDetector
	rewards         rewarder
	aggregates      weeklyAggregator
	metrics         *metrics.Manager
	storeTimeout    time.Duration
	detachedTimeout time.Duration

	// detached tasks
	wg sync.WaitGroup

	NowFunc func() time.Time
}

func NewEngine(params EngineParams) *Engine {
	return &Engine{
		validator:       params.Validator,
		sessions:        params.Sessions,
		flags:           params.Flags,
		records:         params.Records,
		rewards:         params.Rewards,
		aggregates:      params.Aggregates,
		metrics:         params.Metrics,
		storeTimeout:    params.StoreTimeout,
		detachedTimeout: params.DetachedTimeout,
		NowFunc:         time.Now,
	}
}

// Wait blocks until all detached tasks started so far are done.
func (e *Engine) Wait() {
	e.wg.Wait()
}

// Validate checks the submission shape and runs the integrity checks, without
// persisting anything.
func (e *Engine) Validate(ctx context.Context, userID uuid.UUID, workout submission.Workout) (_ *integrity.Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "engine.progression.validate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := workout.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := e.withStoreTimeout(ctx)
	defer cancel()
	return e.validator.Validate(ctx, userID, workout)
}

func (e *Engine) CompleteWorkout(ctx context.Context, userID uuid.UUID, workout submission.Workout) (_ *Completion, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "engine.progression.complete-workout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID.String()))

	start := time.Now()
	defer func() {
		e.metrics.HistogramWorkoutCompleteDur.Observe(time.Since(start).Seconds())
	}()

	result, err := e.Validate(ctx, userID, workout)
	if err != nil {
		return nil, err
	}
	outcome := "passed"
	switch {
	case result.Rejected():
		outcome = "rejected"
	case !result.Passed:
		outcome = "flagged"
	}
	e.metrics.CounterWorkoutsValidated.WithLabelValues(outcome).Inc()
	span.SetAttributes(attribute.String("outcome", outcome))

	if result.Rejected() {
		log.Warnf("workout from user %s rejected: %s", userID, result.FlagType())
		return nil, &RejectedError{Result: result}
	}

	now := e.NowFunc()
	session, err := e.storeSession(ctx, userID, workout, now)
	if err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	span.SetAttributes(attribute.String("session_id", session.ID.String()))

	// the session is stored from here on, so the weekly row must be refreshed
	// whatever happens to the rewards
	defer e.UpdateWeeklyAggregate(ctx, userID)

	if !result.Passed {
		e.CreateIntegrityFlag(ctx, userID, result.FlagType(), result.Severity, result.Details())
	}

	completion := &Completion{
		Session:    session,
		Validation: result,
		NewPRs:     []records.PersonalRecord{},
	}

	completed := workout.CompletedSets()
	for _, s := range completed {
		res, err := e.CheckAndCreatePR(ctx, userID, s)
		if err != nil {
			return nil, fmt.Errorf("check pr for session %s: %w", session.ID, err)
		}
		if res.IsNewPR {
			completion.NewPRs = append(completion.NewPRs, *res.Record)
		}
	}
	e.metrics.CounterNewPRs.Add(float64(len(completion.NewPRs)))

	completion.RawXP = formula.WorkoutXP(len(completed), len(completion.NewPRs))
	duration := now.Sub(workout.StartedAt)
	rewards, err := e.applyRewards(ctx, gamification.ApplyWorkoutParams{
		UserID:   userID,
		XP:       completion.RawXP,
		Duration: &duration,
	})
	if err != nil {
		return nil, fmt.Errorf("apply rewards for session %s: %w", session.ID, err)
	}
	completion.Rewards = rewards

	log.Debugf("user %s completed workout %s: %d sets, %d new prs, %d xp awarded",
		userID, session.ID, len(completed), len(completion.NewPRs), rewards.XP.XPAwarded)
	return completion, nil
}

// CheckAndCreatePR runs the PR detector for a single completed set.
func (e *Engine) CheckAndCreatePR(ctx context.Context, userID uuid.UUID, set submission.Set) (*records.CheckResult, error) {
	ctx, cancel := e.withStoreTimeout(ctx)
	defer cancel()
	return e.records.CheckAndCreate(ctx, userID, set.ExerciseID, set.Weight, set.Reps, set.Unit)
}

// CreateIntegrityFlag stores a pending flag in the background.
// A failure is logged and never reaches the caller.
func (e *Engine) CreateIntegrityFlag(
	ctx context.Context,
	userID uuid.UUID,
	flagType string,
	severity integrity.Severity,
	details map[string]any,
) {
	params := integrity.NewFlagParams{
		UserID:    userID,
		FlagType:  flagType,
		Severity:  severity,
		Details:   details,
		FlaggedAt: e.NowFunc(),
	}
	e.detach(ctx, func(ctx context.Context) {
		flag, err := e.flags.Create(ctx, params)
		if err != nil {
			log.Errorf("create integrity flag for user %s: %s", userID, err)
			return
		}
		e.metrics.CounterIntegrityFlags.WithLabelValues(flag.Severity.String()).Inc()
		log.Debugf("integrity flag %s opened for user %s: %s", flag.ID, userID, flag.FlagType)
	})
}

// UpdateWeeklyAggregate refreshes the user's current week in the background.
func (e *Engine) UpdateWeeklyAggregate(ctx context.Context, userID uuid.UUID) {
	e.detach(ctx, func(ctx context.Context) {
		e.aggregates.Update(ctx, userID)
	})
}

func (e *Engine) ListPendingFlags(ctx context.Context, limit int) ([]integrity.Flag, error) {
	ctx, cancel := e.withStoreTimeout(ctx)
	defer cancel()
	return e.flags.ListPending(ctx, limit)
}

func (e *Engine) ReviewFlag(ctx context.Context, flagID uuid.UUID, status integrity.Status, reviewerID uuid.UUID, notes *string) error {
	ctx, cancel := e.withStoreTimeout(ctx)
	defer cancel()
	return e.flags.Review(ctx, flagID, integrity.ReviewParams{
		Status:     status,
		ReviewerID: reviewerID,
		Notes:      notes,
		ReviewedAt: e.NowFunc(),
	})
}

func (e *Engine) storeSession(ctx context.Context, userID uuid.UUID, workout submission.Workout, endedAt time.Time) (*Session, error) {
	ctx, cancel := e.withStoreTimeout(ctx)
	defer cancel()
	return e.sessions.Create(ctx, userID, workout, endedAt)
}

func (e *Engine) applyRewards(ctx context.Context, params gamification.ApplyWorkoutParams) (*gamification.WorkoutRewards, error) {
	ctx, cancel := e.withStoreTimeout(ctx)
	defer cancel()
	return e.rewards.ApplyWorkout(ctx, params)
}

// detach runs fn on a context that outlives the request but keeps its values.
func (e *Engine) detach(ctx context.Context, fn func(ctx context.Context)) {
	ctx = context.WithoutCancel(ctx)
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		if e.detachedTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, e.detachedTimeout)
			defer cancel()
		}
		fn(ctx)
	}()
}

func (e *Engine) withStoreTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.storeTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, e.storeTimeout)
}
