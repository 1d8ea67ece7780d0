package integrity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/seanfitz121/gymtracker/internal/telemetry/tracing"
)

var (
	ErrFlagNotFound        = errors.New("integrity flag not found")
	ErrFlagAlreadyReviewed = errors.New("integrity flag already reviewed")
	ErrInvalidReviewStatus = errors.New("review status must be cleared or confirmed")
)

type NewFlagParams struct {
	UserID    uuid.UUID
	FlagType  string
	Severity  Severity
	Details   map[string]any
	FlaggedAt time.Time
}

type ReviewParams struct {
	Status     Status
	ReviewerID uuid.UUID
	Notes      *string
	ReviewedAt time.Time
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Create persists a new pending flag.
func (r *Repo) Create(ctx context.Context, params NewFlagParams) (_ *Flag, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.integrity.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", params.UserID.String()))
	span.SetAttributes(attribute.String("severity", params.Severity.String()))

	if !params.Severity.IsValid() {
		return nil, fmt.Errorf("invalid severity: %q", params.Severity)
	}
	if params.Details == nil {
		params.Details = map[string]any{}
	}
	detailsJson, err := json.Marshal(params.Details)
	if err != nil {
		return nil, fmt.Errorf("marshal details: %w", err)
	}

	flag := &Flag{
		ID:        uuid.New(),
		UserID:    params.UserID,
		FlagType:  params.FlagType,
		Severity:  params.Severity,
		Status:    StatusPending,
		Details:   params.Details,
		FlaggedAt: params.FlaggedAt,
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO integrity_flag
				(id, user_id, flag_type, severity, status, details, flagged_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		flag.ID, flag.UserID, flag.FlagType, flag.Severity.String(), flag.Status.String(), detailsJson, flag.FlaggedAt,
	)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("flag.id", flag.ID.String()))
	return flag, nil
}

func (r *Repo) Get(ctx context.Context, id uuid.UUID) (_ *Flag, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.integrity.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.String()))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, user_id, flag_type, severity, status, details, flagged_at, reviewed_by, reviewed_at, review_notes
			FROM integrity_flag
			WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flags, err := r.rows2flags(rows)
	if err != nil {
		return nil, err
	}
	if len(flags) != 1 {
		return nil, ErrFlagNotFound
	}
	return &flags[0], nil
}

// ListPending returns the oldest pending flags first, i.e. the moderation queue.
func (r *Repo) ListPending(ctx context.Context, limit int) (_ []Flag, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.integrity.list-pending")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("limit", limit))

	if limit < 1 {
		return nil, errors.New("limit must be greater than 0")
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, user_id, flag_type, severity, status, details, flagged_at, reviewed_by, reviewed_at, review_notes
			FROM integrity_flag
			WHERE status = $1
			ORDER BY flagged_at ASC
			LIMIT $2;`,
		StatusPending.String(), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	return r.rows2flags(rows)
}

// Review moves a pending flag to cleared or confirmed. A flag can only be reviewed once.
func (r *Repo) Review(ctx context.Context, id uuid.UUID, params ReviewParams) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.integrity.review")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.String()))
	span.SetAttributes(attribute.String("status", params.Status.String()))

	if !params.Status.IsReviewOutcome() {
		return ErrInvalidReviewStatus
	}

	tag, err := r.db.Exec(
		ctx,
		`
			UPDATE integrity_flag
			SET status = $1, reviewed_by = $2, reviewed_at = $3, review_notes = $4
			WHERE id = $5 AND status = $6;`,
		params.Status.String(), params.ReviewerID, params.ReviewedAt, params.Notes, id, StatusPending.String(),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := r.db.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM integrity_flag WHERE id = $1);`,
		id,
	).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrFlagNotFound
	}
	return ErrFlagAlreadyReviewed
}

func (r *Repo) rows2flags(rows pgx.Rows) ([]Flag, error) {
	flags := make([]Flag, 0)
	for rows.Next() {
		var f Flag
		var severity, status string
		var detailsBytes []byte
		if err := rows.Scan(
			&f.ID, &f.UserID, &f.FlagType, &severity, &status, &detailsBytes,
			&f.FlaggedAt, &f.ReviewedBy, &f.ReviewedAt, &f.ReviewNotes,
		); err != nil {
			return nil, err
		}
		f.Severity = Severity(severity)
		f.Status = Status(status)

		f.Details = make(map[string]any)
		if len(detailsBytes) > 0 {
			if err := json.Unmarshal(detailsBytes, &f.Details); err != nil {
				return nil, fmt.Errorf("unmarshal details for flag %s: %w", f.ID, err)
			}
		}
		flags = append(flags, f)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return flags, nil
}
