package gamification

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/seanfitz121/gymtracker/internal/telemetry/tracing"
	"github.com/seanfitz121/gymtracker/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=gamification_test

type rankService interface {
	RankProgress(ctx context.Context, userID uuid.UUID) (*RankProgress, error)
	RecomputeRank(ctx context.Context, userID uuid.UUID) (*RankChange, error)
}

type Handler struct {
	service rankService
}

func NewHandler(service rankService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleRankProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.rank-progress")
	defer span.End()

	userID, ok := UserIDFromPath(w, r)
	if !ok {
		return
	}

	progress, err := handler.service.RankProgress(ctx, userID)
	if err != nil {
		WriteServiceError(w, "get rank progress", userID, err)
		return
	}
	pkg.WriteJSON(w, progress, http.StatusOK)
}

func (handler *Handler) HandleRecomputeRank(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.recompute-rank")
	defer span.End()

	userID, ok := UserIDFromPath(w, r)
	if !ok {
		return
	}

	change, err := handler.service.RecomputeRank(ctx, userID)
	if err != nil {
		WriteServiceError(w, "recompute rank", userID, err)
		return
	}
	if change.RankedUp {
		log.Debugf("user %s ranked up: %s -> %s", userID, change.OldRank.Code, change.NewRank.Code)
	}
	pkg.WriteJSON(w, change, http.StatusOK)
}

// UserIDFromPath parses the {userID} route var, writing a 400 if it is not a uuid.
func UserIDFromPath(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userIDStr := mux.Vars(r)["userID"]
	if userIDStr == "" {
		pkg.WriteJSONError(w, "error, user id empty", nil, http.StatusBadRequest)
		return uuid.Nil, false
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		pkg.WriteJSONError(w, "error, invalid user id", nil, http.StatusBadRequest)
		return uuid.Nil, false
	}
	return userID, true
}

// WriteServiceError maps gamification errors to status codes.
func WriteServiceError(w http.ResponseWriter, op string, userID uuid.UUID, err error) {
	switch {
	case errors.Is(err, ErrProfileNotFound):
		pkg.WriteJSONError(w, "gamification profile not found", nil, http.StatusNotFound)
	case errors.Is(err, ErrConcurrentUpdate), errors.Is(err, ErrProfileBusy):
		log.Warnf("%s for user %s not applied: %s", op, userID, err)
		pkg.WriteJSONError(w, "profile is being updated, retry", nil, http.StatusConflict)
	case errors.Is(err, context.DeadlineExceeded):
		log.Errorf("%s for user %s timed out: %s", op, userID, err)
		pkg.WriteJSONError(w, "timed out, not applied", nil, http.StatusServiceUnavailable)
	default:
		log.Errorf("%s for user %s: %s", op, userID, err)
		pkg.WriteJSONError(w, "internal error", nil, http.StatusInternalServerError)
	}
}
