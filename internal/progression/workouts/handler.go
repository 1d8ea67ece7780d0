package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/seanfitz121/gymtracker/internal/progression/gamification"
	"github.com/seanfitz121/gymtracker/internal/progression/integrity"
	"github.com/seanfitz121/gymtracker/internal/progression/submission"
	"github.com/seanfitz121/gymtracker/internal/telemetry/tracing"
	"github.com/seanfitz121/gymtracker/pkg"
)

// maxSubmissionBytes caps the request body; 500 sets fit comfortably.
const maxSubmissionBytes = 1 << 20

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutService interface {
	CompleteWorkout(ctx context.Context, userID uuid.UUID, workout submission.Workout) (*Completion, error)
	Validate(ctx context.Context, userID uuid.UUID, workout submission.Workout) (*integrity.Result, error)
}

type Handler struct {
	service workoutService
}

func NewHandler(service workoutService) *Handler {
	return &Handler{
		service: service,
	}
}

type rejectionResponse struct {
	Error      string            `json:"error"`
	Validation *integrity.Result `json:"validation"`
}

func (handler *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.complete-workout")
	defer span.End()

	userID, ok := gamification.UserIDFromPath(w, r)
	if !ok {
		return
	}
	workout, ok := decodeWorkout(w, r)
	if !ok {
		return
	}

	completion, err := handler.service.CompleteWorkout(ctx, userID, workout)
	var rejected *RejectedError
	switch {
	case err == nil:
	case errors.As(err, &rejected):
		pkg.WriteJSON(w, rejectionResponse{
			Error:      ErrWorkoutRejected.Error(),
			Validation: rejected.Result,
		}, http.StatusUnprocessableEntity)
		return
	case errors.Is(err, submission.ErrInvalidSubmission):
		pkg.WriteJSONError(w, "invalid workout", err.Error(), http.StatusBadRequest)
		return
	default:
		gamification.WriteServiceError(w, "complete workout", userID, err)
		return
	}

	pkg.WriteJSON(w, completion, http.StatusCreated)
}

func (handler *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.validate-workout")
	defer span.End()

	userID, ok := gamification.UserIDFromPath(w, r)
	if !ok {
		return
	}
	workout, ok := decodeWorkout(w, r)
	if !ok {
		return
	}

	result, err := handler.service.Validate(ctx, userID, workout)
	if err != nil {
		if errors.Is(err, submission.ErrInvalidSubmission) {
			pkg.WriteJSONError(w, "invalid workout", err.Error(), http.StatusBadRequest)
			return
		}
		gamification.WriteServiceError(w, "validate workout", userID, err)
		return
	}
	pkg.WriteJSON(w, result, http.StatusOK)
}

func decodeWorkout(w http.ResponseWriter, r *http.Request) (submission.Workout, bool) {
	var workout submission.Workout
	if !strings.HasPrefix(r.Header.Get("Content-Type"), pkg.ContentType.JSON) {
		pkg.WriteJSONError(w, "invalid content type", nil, http.StatusBadRequest)
		return workout, false
	}

	body := http.MaxBytesReader(w, r.Body, maxSubmissionBytes)
	if err := json.NewDecoder(body).Decode(&workout); err != nil {
		log.Errorf("workout submission, unmarshal json: %s", err)
		pkg.WriteJSONError(w, "invalid workout", "malformed json", http.StatusBadRequest)
		return workout, false
	}
	return workout, true
}
