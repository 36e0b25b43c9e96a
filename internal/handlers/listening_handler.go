package handlers

import (
	"log/slog"
	"net/http"

	"reel_lingo_backend/internal/middleware"
	"reel_lingo_backend/internal/model"
	"reel_lingo_backend/internal/service"
	"reel_lingo_backend/internal/webutil"
)

type ListeningHandler struct {
	catalogService    service.CatalogService
	submissionService service.SubmissionService
	logger            *slog.Logger
}

func NewListeningHandler(catalogService service.CatalogService, submissionService service.SubmissionService, logger *slog.Logger) *ListeningHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ListeningHandler{
		catalogService:    catalogService,
		submissionService: submissionService,
		logger:            logger,
	}
}

func (h *ListeningHandler) ListAudios(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListAudios"))

	levelID, err := levelIDParam(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	audios, err := h.catalogService.ListListeningAudios(r.Context(), levelID)
	if err != nil {
		logger.Warn("Error listing listening audios in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if audios == nil {
		audios = []*model.ListeningAudio{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, audios, logger)
}

func (h *ListeningHandler) Submit(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SubmitListening"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	audioID, err := pathUUID(r, "audio_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.SubmitListeningRequest
	if err := decodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid listening submission", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	result, err := h.submissionService.SubmitListening(r.Context(), userID, audioID, &req)
	if err != nil {
		logger.Error("Error submitting listening in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Listening submitted successfully", slog.String("attempt_id", result.AttemptID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, result, logger)
}
