package leaderboard

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/seanfitz121/gymtracker/internal/telemetry/tracing"
)

var ErrAggregateNotFound = errors.New("weekly aggregate not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Upsert replaces the stored aggregate for (user, week) wholesale.
func (r *Repo) Upsert(ctx context.Context, agg WeeklyAggregate) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.leaderboard.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", agg.UserID.String()))
	span.SetAttributes(attribute.String("iso_week", agg.ISOWeek))

	_, err = r.db.Exec(
		ctx,
		`
			INSERT INTO weekly_aggregate
				(user_id, iso_week, week_start, xp, workouts, volume_kg, pr_count, gym_code, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (user_id, iso_week) DO UPDATE SET
				week_start = EXCLUDED.week_start,
				xp = EXCLUDED.xp,
				workouts = EXCLUDED.workouts,
				volume_kg = EXCLUDED.volume_kg,
				pr_count = EXCLUDED.pr_count,
				gym_code = EXCLUDED.gym_code,
				updated_at = EXCLUDED.updated_at;`,
		agg.UserID, agg.ISOWeek, agg.WeekStart, agg.XP, agg.Workouts, agg.VolumeKg, agg.PRCount, agg.GymCode, agg.UpdatedAt,
	)
	return err
}

func (r *Repo) Get(ctx context.Context, userID uuid.UUID, isoWeek string) (_ *WeeklyAggregate, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.leaderboard.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID.String()))
	span.SetAttributes(attribute.String("iso_week", isoWeek))

	var agg WeeklyAggregate
	err = r.db.QueryRow(
		ctx,
		`
			SELECT user_id, iso_week, week_start, xp, workouts, volume_kg, pr_count, gym_code, updated_at
			FROM weekly_aggregate
			WHERE user_id = $1 AND iso_week = $2;`,
		userID, isoWeek,
	).Scan(
		&agg.UserID, &agg.ISOWeek, &agg.WeekStart, &agg.XP, &agg.Workouts, &agg.VolumeKg, &agg.PRCount, &agg.GymCode, &agg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAggregateNotFound
		}
		return nil, err
	}
	return &agg, nil
}
