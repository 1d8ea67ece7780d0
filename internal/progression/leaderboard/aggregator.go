package leaderboard

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/seanfitz121/gymtracker/internal/progression/formula"
	"github.com/seanfitz121/gymtracker/internal/progression/workouts"
	"github.com/seanfitz121/gymtracker/internal/telemetry/metrics"
	"github.com/seanfitz121/gymtracker/internal/telemetry/tracing"
)

const xpPerWorkout = 100

//go:generate mockgen -source=$GOFILE -destination=aggregator_mocks_test.go -package=leaderboard_test

type sessionSource interface {
	ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]workouts.Session, error)
}

type prCounter interface {
	CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
}

type gymLookup interface {
	GymAffiliation(ctx context.Context, userID uuid.UUID) (*string, error)
}

type aggregateStore interface {
	Upsert(ctx context.Context, agg WeeklyAggregate) error
}

type Aggregator struct {
	sessions sessionSource
	prs      prCounter
	gyms     gymLookup
	store    aggregateStore
	metrics  *metrics.Manager
	loc      *time.Location
	timeout  time.Duration
	NowFunc  func() time.Time
}

func NewAggregator(
	sessions sessionSource,
	prs prCounter,
	gyms gymLookup,
	store aggregateStore,
	metricsManager *metrics.Manager,
	loc *time.Location,
	timeout time.Duration,
) *Aggregator {
	if loc == nil {
		loc = time.UTC
	}
	return &Aggregator{
		sessions: sessions,
		prs:      prs,
		gyms:     gyms,
		store:    store,
		metrics:  metricsManager,
		loc:      loc,
		timeout:  timeout,
		NowFunc:  time.Now,
	}
}

// Update recomputes the current week for the user. Failures are logged and
// swallowed; the caller's workout save must never depend on this.
func (a *Aggregator) Update(ctx context.Context, userID uuid.UUID) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	if _, err := a.Recompute(ctx, userID); err != nil {
		a.metrics.CounterWeeklyAggregateErrors.Inc()
		log.Errorf("update weekly aggregate for user %s: %s", userID, err)
	}
}

// Recompute rebuilds the user's aggregate for the current week from a full
// scan of the week's sessions and stores it.
func (a *Aggregator) Recompute(ctx context.Context, userID uuid.UUID) (_ *WeeklyAggregate, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "aggregator.progression.recompute-week")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID.String()))

	now := a.NowFunc()
	weekStart := formula.WeekStart(now, a.loc)
	weekEnd := weekStart.AddDate(0, 0, 7)
	agg := &WeeklyAggregate{
		UserID:    userID,
		ISOWeek:   formula.ISOWeekKey(weekStart),
		WeekStart: weekStart,
		UpdatedAt: now,
	}
	span.SetAttributes(attribute.String("iso_week", agg.ISOWeek))

	var sessions []workouts.Session
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := a.sessions.ListSince(gctx, userID, weekStart)
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}
		sessions = s
		return nil
	})
	g.Go(func() error {
		count, err := a.prs.CountSince(gctx, userID, weekStart)
		if err != nil {
			return fmt.Errorf("count prs: %w", err)
		}
		agg.PRCount = count
		return nil
	})
	g.Go(func() error {
		gym, err := a.gyms.GymAffiliation(gctx, userID)
		if err != nil {
			return fmt.Errorf("gym affiliation: %w", err)
		}
		agg.GymCode = gym
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, s := range sessions {
		// sessions listed from weekStart may include ones stamped in the future
		if !s.StartedAt.Before(weekEnd) {
			continue
		}
		agg.Workouts++
		agg.VolumeKg += s.WorkingVolumeKg()
	}
	agg.XP = xpPerWorkout*agg.Workouts + int(math.Floor(agg.VolumeKg))

	if err := a.store.Upsert(ctx, *agg); err != nil {
		return nil, fmt.Errorf("upsert: %w", err)
	}

	log.Debugf("weekly aggregate %s for user %s: %d workouts, %.1f kg, %d xp",
		agg.ISOWeek, userID, agg.Workouts, agg.VolumeKg, agg.XP)
	return agg, nil
}
