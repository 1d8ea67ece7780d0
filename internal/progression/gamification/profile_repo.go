package gamification

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/seanfitz121/gymtracker/internal/telemetry/tracing"
	"github.com/seanfitz121/gymtracker/pkg"
)

var (
	ErrProfileNotFound      = errors.New("gamification profile not found")
	ErrProfileAlreadyExists = errors.New("gamification profile already exists")
	// ErrConcurrentUpdate means the profile changed since it was read; the update was not applied.
	ErrConcurrentUpdate = errors.New("gamification profile was updated concurrently")
)

type ProfileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepo(db *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{
		db: db,
	}
}

// Create provisions an empty profile on the given scale.
func (r *ProfileRepo) Create(ctx context.Context, userID uuid.UUID, scaleCode string, now time.Time) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.profile.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID.String()))

	p := &Profile{
		UserID:        userID,
		Badges:        []string{},
		RankScaleCode: scaleCode,
		UpdatedAt:     now,
	}
	_, err = r.db.Exec(
		ctx,
		`INSERT INTO gamification_profile (user_id, rank_scale_code, updated_at) VALUES ($1, $2, $3);`,
		p.UserID, p.RankScaleCode, p.UpdatedAt,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrProfileAlreadyExists
		}
		return nil, err
	}
	return p, nil
}

func (r *ProfileRepo) Get(ctx context.Context, userID uuid.UUID) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.profile.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID.String()))

	var p Profile
	err = r.db.QueryRow(
		ctx,
		`
			SELECT
				user_id, total_xp, level, current_streak, longest_streak, last_workout_date,
				last_workout_xp_at, last_xp_at, daily_xp_earned, forgiveness_used_at, badges,
				rank_code, rank_scale_code, version, updated_at
			FROM gamification_profile
			WHERE user_id = $1;`,
		userID,
	).Scan(
		&p.UserID, &p.TotalXP, &p.Level, &p.CurrentStreak, &p.LongestStreak, &p.LastWorkoutAt,
		&p.LastWorkoutXPAt, &p.LastXPAt, &p.DailyXPEarned, &p.ForgivenessUsedAt, &p.Badges,
		&p.RankCode, &p.RankScaleCode, &p.Version, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	if p.Badges == nil {
		p.Badges = []string{}
	}
	return &p, nil
}

// Update writes every mutable field of p, provided the stored version still
// matches p.Version. On success p.Version is advanced.
func (r *ProfileRepo) Update(ctx context.Context, p *Profile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.profile.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", p.UserID.String()))
	span.SetAttributes(attribute.Int64("version", p.Version))

	tag, err := r.db.Exec(
		ctx,
		`
			UPDATE gamification_profile
			SET
				total_xp = $1, level = $2, current_streak = $3, longest_streak = $4, last_workout_date = $5,
				last_workout_xp_at = $6, last_xp_at = $7, daily_xp_earned = $8, forgiveness_used_at = $9,
				badges = $10, rank_code = $11, rank_scale_code = $12, updated_at = $13, version = version + 1
			WHERE user_id = $14 AND version = $15;`,
		p.TotalXP, p.Level, p.CurrentStreak, p.LongestStreak, p.LastWorkoutAt,
		p.LastWorkoutXPAt, p.LastXPAt, p.DailyXPEarned, p.ForgivenessUsedAt,
		p.Badges, p.RankCode, p.RankScaleCode, p.UpdatedAt, p.UserID, p.Version,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() > 0 {
		p.Version++
		return nil
	}

	var exists bool
	if err := r.db.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM gamification_profile WHERE user_id = $1);`,
		p.UserID,
	).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrProfileNotFound
	}
	return ErrConcurrentUpdate
}
