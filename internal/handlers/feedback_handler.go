package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"reel_lingo_backend/internal/middleware"
	"reel_lingo_backend/internal/model"
	"reel_lingo_backend/internal/service"
	"reel_lingo_backend/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type FeedbackHandler struct {
	feedbackService service.FeedbackService
	logger          *slog.Logger
}

func NewFeedbackHandler(feedbackService service.FeedbackService, logger *slog.Logger) *FeedbackHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &FeedbackHandler{
		feedbackService: feedbackService,
		logger:          logger,
	}
}

// List returns the user's feedback history, newest first. Optional query
// params: type (activity kind) and limit.
func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListFeedback"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var typeFilter *model.ActivityKind
	if raw := r.URL.Query().Get("type"); raw != "" {
		kind := model.ActivityKind(raw)
		typeFilter = &kind
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			appErr := model.NewAppError("INVALID_INPUT", "limit must be an integer.", "limit", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		limit = parsed
	}

	items, err := h.feedbackService.ListFeedback(r.Context(), userID, typeFilter, limit)
	if err != nil {
		logger.Warn("Error listing feedback in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, items, logger)
}

// GetForAttempt returns the feedback row of one attempt.
func (h *FeedbackHandler) GetForAttempt(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetFeedbackForAttempt"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	kind := model.ActivityKind(chi.URLParam(r, "type"))
	attemptID, err := pathUUID(r, "attempt_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	item, err := h.feedbackService.GetForAttempt(r.Context(), userID, kind, attemptID)
	if err != nil {
		logger.Warn("Error loading feedback in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, item, logger)
}
