package gamification

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/seanfitz121/gymtracker/internal/progression/formula"
	"github.com/seanfitz121/gymtracker/internal/telemetry/tracing"
)

const (
	DefaultScaleCode = "default"
	AdminRankCode    = "ADMIN"
)

var ErrEmptyRankScale = errors.New("rank scale has no ranks")

type RankKind string

const (
	RankComputed RankKind = "computed"
	RankAdmin    RankKind = "admin"
)

type RankDefinition struct {
	ScaleCode string `json:"scaleCode"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	Icon      string `json:"icon"`
	MinXP     int    `json:"minXp"`
	SortOrder int    `json:"sortOrder"`
}

// Rank is either a rank computed from XP on a ladder, or the fixed admin rank
// which no amount of XP changes.
type Rank struct {
	Kind RankKind `json:"kind"`
	RankDefinition
}

func AdminRank() Rank {
	return Rank{
		Kind: RankAdmin,
		RankDefinition: RankDefinition{
			Code: AdminRankCode,
			Name: "Administrator",
		},
	}
}

func (r Rank) IsAdmin() bool {
	return r.Kind == RankAdmin
}

// RankedUp reports whether moving from old to r is a promotion.
func (r Rank) RankedUp(old Rank) bool {
	if r.IsAdmin() || old.IsAdmin() {
		return false
	}
	return r.MinXP > old.MinXP
}

type RankProgress struct {
	CurrentRank Rank  `json:"currentRank"`
	NextRank    *Rank `json:"nextRank,omitempty"`
	// Progress is the 0..1 fraction of the current rank band already earned
	Progress float64 `json:"progress"`
	XPToNext int     `json:"xpToNext"`
	TotalXP  int     `json:"totalXp"`
}

//go:generate mockgen -source=$GOFILE -destination=rank_mocks_test.go -package=gamification_test

type adminRegistry interface {
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}

type ladderSource interface {
	Ladder(ctx context.Context, scaleCode string) ([]RankDefinition, error)
}

// RankResolver maps an XP value to a rank. XP is passed in rather than read
// from the profile, so callers can resolve a total before persisting it.
type RankResolver struct {
	admins  adminRegistry
	ladders ladderSource
}

func NewRankResolver(admins adminRegistry, ladders ladderSource) *RankResolver {
	return &RankResolver{
		admins:  admins,
		ladders: ladders,
	}
}

func (r *RankResolver) Resolve(ctx context.Context, userID uuid.UUID, scaleCode string, xp int) (_ Rank, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "resolver.progression.resolve-rank")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("user_id", userID.String()),
		attribute.String("scale", scaleCode),
		attribute.Int("xp", xp),
	)

	isAdmin, err := r.admins.IsAdmin(ctx, userID)
	if err != nil {
		return Rank{}, fmt.Errorf("admin lookup: %w", err)
	}
	if isAdmin {
		return AdminRank(), nil
	}

	ladder, err := r.ladder(ctx, scaleCode)
	if err != nil {
		return Rank{}, err
	}
	return computedRank(ladder[rankIndex(ladder, xp)]), nil
}

// Current returns the rank stored on the profile. A stored code missing from
// the ladder (e.g. the ladder was edited) is re-resolved from the profile's XP.
func (r *RankResolver) Current(ctx context.Context, p *Profile) (Rank, error) {
	if p.RankCode == AdminRankCode {
		return AdminRank(), nil
	}
	ladder, err := r.ladder(ctx, p.ScaleCode())
	if err != nil {
		return Rank{}, err
	}
	for _, def := range ladder {
		if def.Code == p.RankCode {
			return computedRank(def), nil
		}
	}
	return computedRank(ladder[rankIndex(ladder, p.TotalXP)]), nil
}

func (r *RankResolver) Progress(ctx context.Context, userID uuid.UUID, scaleCode string, xp int) (_ *RankProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "resolver.progression.rank-progress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID.String()))

	current, err := r.Resolve(ctx, userID, scaleCode, xp)
	if err != nil {
		return nil, err
	}
	progress := &RankProgress{
		CurrentRank: current,
		Progress:    1,
		TotalXP:     xp,
	}
	if current.IsAdmin() {
		return progress, nil
	}

	ladder, err := r.ladder(ctx, scaleCode)
	if err != nil {
		return nil, err
	}
	// ladder is sorted by min_xp descending, so the next rank up sits one index before
	idx := rankIndex(ladder, xp)
	if idx == 0 {
		return progress, nil
	}
	next := computedRank(ladder[idx-1])
	progress.NextRank = &next
	progress.XPToNext = max(next.MinXP-xp, 0)
	if band := next.MinXP - current.MinXP; band > 0 {
		progress.Progress = formula.Clamp01(float64(xp-current.MinXP) / float64(band))
	}
	return progress, nil
}

func (r *RankResolver) ladder(ctx context.Context, scaleCode string) ([]RankDefinition, error) {
	if scaleCode == "" {
		scaleCode = DefaultScaleCode
	}
	ladder, err := r.ladders.Ladder(ctx, scaleCode)
	if err != nil {
		return nil, fmt.Errorf("get ladder %s: %w", scaleCode, err)
	}
	if len(ladder) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyRankScale, scaleCode)
	}
	return sortLadder(ladder), nil
}

// sortLadder orders a copy of the ladder by min_xp descending, sort order breaking ties.
func sortLadder(ladder []RankDefinition) []RankDefinition {
	sorted := slices.Clone(ladder)
	slices.SortStableFunc(sorted, func(a, b RankDefinition) int {
		if c := cmp.Compare(b.MinXP, a.MinXP); c != 0 {
			return c
		}
		return cmp.Compare(b.SortOrder, a.SortOrder)
	})
	return sorted
}

// rankIndex returns the index of the first rank with min_xp <= xp in a descending
// ladder, falling back to the lowest rank.
func rankIndex(descLadder []RankDefinition, xp int) int {
	for i, def := range descLadder {
		if def.MinXP <= xp {
			return i
		}
	}
	return len(descLadder) - 1
}

func computedRank(def RankDefinition) Rank {
	return Rank{
		Kind:           RankComputed,
		RankDefinition: def,
	}
}
