package workouts

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/seanfitz121/gymtracker/internal/progression/formula"
	"github.com/seanfitz121/gymtracker/internal/progression/submission"
	"github.com/seanfitz121/gymtracker/internal/telemetry/tracing"
)

type SessionRepo struct {
	db *pgxpool.Pool
}

func NewSessionRepo(db *pgxpool.Pool) *SessionRepo {
	return &SessionRepo{
		db: db,
	}
}

// Create stores the workout and all of its sets in one transaction.
func (r *SessionRepo) Create(ctx context.Context, userID uuid.UUID, workout submission.Workout, endedAt time.Time) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.sessions.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID.String()))

	session := &Session{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     workout.Title,
		Notes:     workout.Notes,
		StartedAt: workout.StartedAt,
		EndedAt:   endedAt,
		Sets:      workout.AllSets(),
	}
	span.SetAttributes(attribute.String("session_id", session.ID.String()))
	span.SetAttributes(attribute.Int("sets", len(session.Sets)))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	_, err = tx.Exec(
		ctx,
		`INSERT INTO workout_session
				(id, user_id, title, notes, started_at, ended_at)
				VALUES ($1, $2, $3, $4, $5, $6);`,
		session.ID, session.UserID, session.Title, session.Notes, session.StartedAt, session.EndedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}

	if len(session.Sets) == 0 {
		return session, nil
	}

	_, err = tx.CopyFrom(
		ctx,
		pgx.Identifier{"workout_set"},
		[]string{"session_id", "exercise_id", "block_index", "block_round", "position", "reps", "weight", "weight_unit", "rpe", "is_warmup"},
		pgx.CopyFromSlice(len(session.Sets), func(i int) ([]any, error) {
			s := session.Sets[i]
			return []any{
				session.ID, s.ExerciseID, s.BlockIndex, s.Round, s.Position, s.Reps, s.Weight, s.Unit.String(), s.RPE, s.IsWarmup,
			}, nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("insert sets: %w", err)
	}

	return session, nil
}

// ListSince returns the user's sessions started at or after since, oldest first, with their sets.
func (r *SessionRepo) ListSince(ctx context.Context, userID uuid.UUID, since time.Time) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.sessions.list-since")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID.String()))
	span.SetAttributes(attribute.String("since", since.String()))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, user_id, title, notes, started_at, ended_at
			FROM workout_session
			WHERE user_id = $1 AND started_at >= $2
			ORDER BY started_at ASC;`,
		userID, since,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]Session, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var s Session
		if err := rows.Scan(&s.ID, &s.UserID, &s.Title, &s.Notes, &s.StartedAt, &s.EndedAt); err != nil {
			return nil, err
		}
		s.Sets = []submission.Set{}
		sessions = append(sessions, s)
		ids = append(ids, s.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return sessions, nil
	}

	setsBySession, err := r.setsFor(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get sets: %w", err)
	}
	for i := range sessions {
		if sets, ok := setsBySession[sessions[i].ID]; ok {
			sessions[i].Sets = sets
		}
	}
	return sessions, nil
}

func (r *SessionRepo) setsFor(ctx context.Context, sessionIDs []uuid.UUID) (map[uuid.UUID][]submission.Set, error) {
	rows, err := r.db.Query(
		ctx,
		`
			SELECT session_id, exercise_id, block_index, block_round, position, reps, weight, weight_unit, rpe, is_warmup
			FROM workout_set
			WHERE session_id = ANY($1)
			ORDER BY id ASC;`,
		sessionIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	setsBySession := make(map[uuid.UUID][]submission.Set)
	for rows.Next() {
		var sessionID uuid.UUID
		var s submission.Set
		var unit string
		if err := rows.Scan(
			&sessionID, &s.ExerciseID, &s.BlockIndex, &s.Round, &s.Position, &s.Reps, &s.Weight, &unit, &s.RPE, &s.IsWarmup,
		); err != nil {
			return nil, err
		}
		s.Unit = formula.WeightUnit(unit)
		setsBySession[sessionID] = append(setsBySession[sessionID], s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return setsBySession, nil
}
