package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"cardeval/internal/evaluator/models"
	dErrors "cardeval/pkg/domain-errors"
	"cardeval/pkg/platform/httputil"
	"cardeval/pkg/platform/sentinel"
)

//go:generate mockgen -source=handler.go -destination=mocks/service_mocks.go -package=mocks

// Service defines the evaluator operations exposed over HTTP.
type Service interface {
	Evaluate(ctx context.Context, app models.Application) (models.Decision, error)
	EvaluateUsingOut(ctx context.Context, app models.Application) (models.Decision, error)
	LookupCount() int64
}

// Handler wires application endpoints to the evaluator.
type Handler struct {
	service Service
	logger  *slog.Logger
	now     func() time.Time
}

// New constructs an application handler.
func New(service Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		service: service,
		logger:  logger,
		now:     time.Now,
	}
}

// Register mounts application endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/applications/evaluate", h.HandleEvaluate)
	r.Post("/applications/evaluate-out", h.HandleEvaluateOut)
	r.Get("/applications/lookups", h.HandleLookupCount)
}

// HandleEvaluate handles POST /applications/evaluate.
func (h *Handler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "evaluate", h.service.Evaluate)
}

// HandleEvaluateOut handles POST /applications/evaluate-out.
func (h *Handler) HandleEvaluateOut(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "evaluate_out", h.service.EvaluateUsingOut)
}

// HandleLookupCount handles GET /applications/lookups.
func (h *Handler) HandleLookupCount(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, LookupCountResponse{LookupCount: h.service.LookupCount()})
}

type evaluateFunc func(ctx context.Context, app models.Application) (models.Decision, error)

func (h *Handler) handle(w http.ResponseWriter, r *http.Request, entrypoint string, evaluate evaluateFunc) {
	ctx := r.Context()
	requestID := middleware.GetReqID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[EvaluateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	evaluationID := uuid.New()
	decision, err := evaluate(ctx, req.Application())
	if err != nil {
		h.logger.ErrorContext(ctx, "application evaluation failed",
			"request_id", requestID,
			"evaluation_id", evaluationID,
			"entrypoint", entrypoint,
			"error", err,
		)
		httputil.WriteError(w, toDomainError(err))
		return
	}

	h.logger.InfoContext(ctx, "application evaluated",
		"request_id", requestID,
		"evaluation_id", evaluationID,
		"entrypoint", entrypoint,
		"decision", decision,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, EvaluateResponse{
		EvaluationID: evaluationID.String(),
		Decision:     decision.String(),
		EvaluatedAt:  h.now().UTC(),
	})
}

func toDomainError(err error) error {
	if _, ok := dErrors.As(err); ok {
		return err
	}
	if errors.Is(err, sentinel.ErrUnavailable) {
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "frequent flyer validation is unavailable")
	}
	return dErrors.Wrap(err, dErrors.CodeDependencyFailure, "application could not be evaluated")
}
