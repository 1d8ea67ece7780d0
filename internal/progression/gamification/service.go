package gamification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/seanfitz121/gymtracker/internal/progression/formula"
	"github.com/seanfitz121/gymtracker/internal/telemetry/metrics"
	"github.com/seanfitz121/gymtracker/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=gamification_test

type profileStore interface {
	Get(ctx context.Context, userID uuid.UUID) (*Profile, error)
	Update(ctx context.Context, p *Profile) error
}

type userLocker interface {
	Lock(ctx context.Context, userID uuid.UUID) (func(), error)
}

type AddXPParams struct {
	UserID uuid.UUID
	Amount int
	Reason string
	// Duration of the workout, when known; only checked for workout completions
	Duration *time.Duration
}

type XPAward struct {
	NewTotalXP int        `json:"newTotalXp"`
	LeveledUp  bool       `json:"leveledUp"`
	NewLevel   int        `json:"newLevel"`
	XPAwarded  int        `json:"xpAwarded"`
	RankedUp   bool       `json:"rankedUp"`
	NewRank    Rank       `json:"newRank"`
	OldRank    Rank       `json:"oldRank"`
	Skipped    SkipReason `json:"skipped,omitempty"`
}

type RankChange struct {
	NewRank  Rank `json:"newRank"`
	OldRank  Rank `json:"oldRank"`
	RankedUp bool `json:"rankedUp"`
}

type ApplyWorkoutParams struct {
	UserID   uuid.UUID
	XP       int
	Duration *time.Duration
}

type WorkoutRewards struct {
	XP     XPAward      `json:"xp"`
	Streak StreakResult `json:"streak"`
}

// Service owns every mutation of the gamification profile. Each mutation runs
// under the per-user lock and is written with a version check, so concurrent
// completions for one user can't lose each other's updates.
type Service struct {
	profiles profileStore
	ranks    *RankResolver
	locker   userLocker
	metrics  *metrics.Manager
	loc      *time.Location
	NowFunc  func() time.Time
}

func NewService(
	profiles profileStore,
	ranks *RankResolver,
	locker userLocker,
	metricsManager *metrics.Manager,
	loc *time.Location,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		profiles: profiles,
		ranks:    ranks,
		locker:   locker,
		metrics:  metricsManager,
		loc:      loc,
		NowFunc:  time.Now,
	}
}

func (s *Service) Profile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	return s.profiles.Get(ctx, userID)
}

func (s *Service) AddXP(ctx context.Context, params AddXPParams) (_ *XPAward, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progression.add-xp")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("user_id", params.UserID.String()),
		attribute.Int("amount", params.Amount),
		attribute.String("reason", params.Reason),
	)

	if params.Amount <= 0 {
		return nil, ErrInvalidXPAmount
	}

	var award *XPAward
	err = s.mutate(ctx, params.UserID, func(p *Profile, now time.Time) (bool, error) {
		a, err := s.applyXP(ctx, p, params.Amount, params.Reason, params.Duration, now)
		if err != nil {
			return false, err
		}
		award = a
		return a.XPAwarded > 0, nil
	})
	if err != nil {
		return nil, err
	}

	s.recordAward(award)
	return award, nil
}

func (s *Service) UpdateStreak(ctx context.Context, userID uuid.UUID) (_ *StreakResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progression.update-streak")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID.String()))

	var res StreakResult
	err = s.mutate(ctx, userID, func(p *Profile, now time.Time) (bool, error) {
		res = advanceStreak(p, now, s.loc)
		return res.changed, nil
	})
	if err != nil {
		return nil, err
	}

	s.recordStreak(userID, res)
	return &res, nil
}

// RecomputeRank re-resolves the rank for the stored XP, persisting it if it moved.
func (s *Service) RecomputeRank(ctx context.Context, userID uuid.UUID) (_ *RankChange, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progression.recompute-rank")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID.String()))

	var change RankChange
	err = s.mutate(ctx, userID, func(p *Profile, _ time.Time) (bool, error) {
		oldRank, err := s.ranks.Current(ctx, p)
		if err != nil {
			return false, err
		}
		newRank, err := s.ranks.Resolve(ctx, userID, p.ScaleCode(), p.TotalXP)
		if err != nil {
			return false, err
		}
		change = RankChange{
			NewRank:  newRank,
			OldRank:  oldRank,
			RankedUp: newRank.RankedUp(oldRank),
		}
		if p.RankCode == newRank.Code {
			return false, nil
		}
		p.RankCode = newRank.Code
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &change, nil
}

func (s *Service) RankProgress(ctx context.Context, userID uuid.UUID) (_ *RankProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progression.rank-progress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID.String()))

	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.ranks.Progress(ctx, userID, p.ScaleCode(), p.TotalXP)
}

// ApplyWorkout grants workout XP, re-resolves the rank and advances the streak
// in a single profile write. The streak advances even when the XP grant is skipped.
func (s *Service) ApplyWorkout(ctx context.Context, params ApplyWorkoutParams) (_ *WorkoutRewards, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progression.apply-workout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("user_id", params.UserID.String()),
		attribute.Int("xp", params.XP),
	)

	if params.XP <= 0 {
		return nil, ErrInvalidXPAmount
	}

	var rewards WorkoutRewards
	err = s.mutate(ctx, params.UserID, func(p *Profile, now time.Time) (bool, error) {
		award, err := s.applyXP(ctx, p, params.XP, ReasonWorkoutCompleted, params.Duration, now)
		if err != nil {
			return false, err
		}
		rewards.XP = *award
		rewards.Streak = advanceStreak(p, now, s.loc)
		return award.XPAwarded > 0 || rewards.Streak.changed, nil
	})
	if err != nil {
		return nil, err
	}

	s.recordAward(&rewards.XP)
	s.recordStreak(params.UserID, rewards.Streak)
	return &rewards, nil
}

// AwardBadge adds a badge to the profile; awarding an owned badge is a no-op.
func (s *Service) AwardBadge(ctx context.Context, userID uuid.UUID, badge string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progression.award-badge")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID.String()))
	span.SetAttributes(attribute.String("badge", badge))

	if badge == "" {
		return false, errors.New("badge id empty")
	}

	var added bool
	err = s.mutate(ctx, userID, func(p *Profile, _ time.Time) (bool, error) {
		added = p.addBadge(badge)
		return added, nil
	})
	if err != nil {
		return false, err
	}
	return added, nil
}

// applyXP runs the reward policy on p and, when XP is awarded, resolves and
// stores the rank for the new total.
func (s *Service) applyXP(
	ctx context.Context,
	p *Profile,
	amount int,
	reason string,
	duration *time.Duration,
	now time.Time,
) (*XPAward, error) {
	oldRank, err := s.ranks.Current(ctx, p)
	if err != nil {
		return nil, err
	}
	oldLevel := p.Level

	grant := grantXP(p, amount, reason, duration, now, s.loc)
	if grant.awarded == 0 {
		return &XPAward{
			NewTotalXP: p.TotalXP,
			NewLevel:   formula.Level(p.TotalXP),
			NewRank:    oldRank,
			OldRank:    oldRank,
			Skipped:    grant.skipped,
		}, nil
	}

	newRank, err := s.ranks.Resolve(ctx, p.UserID, p.ScaleCode(), p.TotalXP)
	if err != nil {
		return nil, err
	}
	p.RankCode = newRank.Code

	return &XPAward{
		NewTotalXP: p.TotalXP,
		LeveledUp:  p.Level > oldLevel,
		NewLevel:   p.Level,
		XPAwarded:  grant.awarded,
		RankedUp:   newRank.RankedUp(oldRank),
		NewRank:    newRank,
		OldRank:    oldRank,
	}, nil
}

// mutate loads the profile under the user's lock, hands a copy to fn and,
// if fn reports a change, writes it back with a version check.
func (s *Service) mutate(ctx context.Context, userID uuid.UUID, fn func(p *Profile, now time.Time) (bool, error)) error {
	unlock, err := s.locker.Lock(ctx, userID)
	if err != nil {
		return fmt.Errorf("lock profile: %w", err)
	}
	defer unlock()

	stored, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return err
	}

	now := s.NowFunc()
	p := stored.clone()
	changed, err := fn(p, now)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	p.Level = formula.Level(p.TotalXP)
	p.UpdatedAt = now
	if err := s.profiles.Update(ctx, p); err != nil {
		if errors.Is(err, ErrConcurrentUpdate) {
			s.metrics.CounterOptimisticConflicts.Inc()
		}
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

func (s *Service) recordAward(award *XPAward) {
	if award.XPAwarded > 0 {
		s.metrics.CounterXPAwarded.Add(float64(award.XPAwarded))
	} else if award.Skipped != "" {
		s.metrics.CounterXPSkipped.WithLabelValues(string(award.Skipped)).Inc()
	}
}

func (s *Service) recordStreak(userID uuid.UUID, res StreakResult) {
	if res.ForgivenessUsed {
		s.metrics.CounterStreakForgiveness.Inc()
		log.Debugf("streak for user %s bridged with forgiveness token", userID)
	}
	for _, badge := range res.NewBadges {
		log.Debugf("user %s earned badge %s", userID, badge)
	}
}
