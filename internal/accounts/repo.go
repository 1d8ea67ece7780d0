package accounts

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/seanfitz121/gymtracker/internal/telemetry/tracing"
)

var ErrAccountNotFound = errors.New("account not found")

const gymMembershipApproved = "approved"

// Repo answers the account-side questions the progression engine asks:
// admin registry, account verification age and gym affiliation.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) IsAdmin(ctx context.Context, userID uuid.UUID) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.accounts.is-admin")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID.String()))

	var isAdmin bool
	err = r.db.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM admin_user WHERE user_id = $1);`,
		userID,
	).Scan(&isAdmin)
	if err != nil {
		return false, err
	}
	return isAdmin, nil
}

// VerifiedAt returns the moment the account was verified, falling back to the
// account creation time for accounts that never went through verification.
func (r *Repo) VerifiedAt(ctx context.Context, userID uuid.UUID) (_ time.Time, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.accounts.verified-at")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID.String()))

	var verifiedAt *time.Time
	var createdAt time.Time
	err = r.db.QueryRow(
		ctx,
		`SELECT verified_at, created_at FROM account_profile WHERE user_id = $1;`,
		userID,
	).Scan(&verifiedAt, &createdAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return time.Time{}, ErrAccountNotFound
	}
	if err != nil {
		return time.Time{}, err
	}

	if verifiedAt != nil {
		return *verifiedAt, nil
	}
	return createdAt, nil
}

// GymAffiliation returns the gym code of the user's approved, opted-in membership,
// or nil if there is none.
func (r *Repo) GymAffiliation(ctx context.Context, userID uuid.UUID) (_ *string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.accounts.gym-affiliation")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID.String()))

	var gymCode string
	err = r.db.QueryRow(
		ctx,
		`
			SELECT gym_code
			FROM gym_membership
			WHERE user_id = $1 AND leaderboard_opt_in = TRUE AND status = $2
			ORDER BY approved_at DESC NULLS LAST
			LIMIT 1;`,
		userID, gymMembershipApproved,
	).Scan(&gymCode)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &gymCode, nil
}
