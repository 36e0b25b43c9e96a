package handlers

import (
	"log/slog"
	"net/http"

	"reel_lingo_backend/internal/middleware"
	"reel_lingo_backend/internal/model"
	"reel_lingo_backend/internal/service"
	"reel_lingo_backend/internal/webutil"
)

type SpeakingHandler struct {
	catalogService    service.CatalogService
	submissionService service.SubmissionService
	logger            *slog.Logger
}

func NewSpeakingHandler(catalogService service.CatalogService, submissionService service.SubmissionService, logger *slog.Logger) *SpeakingHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SpeakingHandler{
		catalogService:    catalogService,
		submissionService: submissionService,
		logger:            logger,
	}
}

func (h *SpeakingHandler) ListExercises(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListExercises"))

	levelID, err := levelIDParam(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	exercises, err := h.catalogService.ListSpeakingExercises(r.Context(), levelID)
	if err != nil {
		logger.Warn("Error listing speaking exercises in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if exercises == nil {
		exercises = []*model.SpeakingExercise{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, exercises, logger)
}

func (h *SpeakingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SubmitSpeaking"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	exerciseID, err := pathUUID(r, "exercise_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	// Sub-scores outside 0-10 are rejected here via the validate tags; the
	// evaluator never sees them.
	var req model.SubmitSpeakingRequest
	if err := decodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid speaking submission", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	result, err := h.submissionService.SubmitSpeaking(r.Context(), userID, exerciseID, &req)
	if err != nil {
		logger.Error("Error submitting speaking in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Speaking submitted successfully", slog.String("attempt_id", result.AttemptID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, result, logger)
}
