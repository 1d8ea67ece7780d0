package records

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/seanfitz121/gymtracker/internal/progression/formula"
	"github.com/seanfitz121/gymtracker/internal/telemetry/tracing"
)

var ErrRecordNotFound = errors.New("personal record not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Best returns the record with the highest estimated 1RM, compared in kg so
// records logged in different units rank correctly.
func (r *Repo) Best(ctx context.Context, userID uuid.UUID, exerciseID string) (_ *PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.records.best")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID.String()))
	span.SetAttributes(attribute.String("exercise_id", exerciseID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, user_id, exercise_id, weight, reps, unit, estimated_1rm, achieved_at
			FROM personal_record
			WHERE user_id = $1 AND exercise_id = $2
			ORDER BY
				CASE unit WHEN 'lb' THEN estimated_1rm / $3 ELSE estimated_1rm END DESC,
				achieved_at DESC
			LIMIT 1;`,
		userID, exerciseID, formula.LbPerKg,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records, err := r.rows2records(rows)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrRecordNotFound
	}
	return &records[0], nil
}

func (r *Repo) Add(ctx context.Context, pr PersonalRecord) (_ *PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.records.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", pr.UserID.String()))
	span.SetAttributes(attribute.String("exercise_id", pr.ExerciseID))

	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO personal_record
				(user_id, exercise_id, weight, reps, unit, estimated_1rm, achieved_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
				RETURNING id;`,
		pr.UserID, pr.ExerciseID, pr.Weight, pr.Reps, pr.Unit.String(), pr.Estimated1RM, pr.AchievedAt,
	).Scan(&pr.ID); err != nil {
		return nil, err
	}

	return &pr, nil
}

// CountSince counts records achieved at or after since.
func (r *Repo) CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.records.count-since")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID.String()))

	var count int
	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM personal_record WHERE user_id = $1 AND achieved_at >= $2;`,
		userID, since,
	).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *Repo) rows2records(rows pgx.Rows) ([]PersonalRecord, error) {
	records := make([]PersonalRecord, 0)
	for rows.Next() {
		var pr PersonalRecord
		var unit string
		if err := rows.Scan(
			&pr.ID, &pr.UserID, &pr.ExerciseID, &pr.Weight, &pr.Reps, &unit, &pr.Estimated1RM, &pr.AchievedAt,
		); err != nil {
			return nil, err
		}
		pr.Unit = formula.WeightUnit(unit)
		records = append(records, pr)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
