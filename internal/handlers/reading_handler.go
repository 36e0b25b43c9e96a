package handlers

import (
	"log/slog"
	"net/http"

	"reel_lingo_backend/internal/middleware"
	"reel_lingo_backend/internal/model"
	"reel_lingo_backend/internal/service"
	"reel_lingo_backend/internal/webutil"
)

type ReadingHandler struct {
	catalogService    service.CatalogService
	submissionService service.SubmissionService
	logger            *slog.Logger
}

func NewReadingHandler(catalogService service.CatalogService, submissionService service.SubmissionService, logger *slog.Logger) *ReadingHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReadingHandler{
		catalogService:    catalogService,
		submissionService: submissionService,
		logger:            logger,
	}
}

func (h *ReadingHandler) ListTexts(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListTexts"))

	levelID, err := levelIDParam(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	texts, err := h.catalogService.ListReadingTexts(r.Context(), levelID)
	if err != nil {
		logger.Warn("Error listing reading texts in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, texts, logger)
}

func (h *ReadingHandler) GetText(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetText"))

	textID, err := pathUUID(r, "text_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	text, err := h.catalogService.GetReadingText(r.Context(), textID)
	if err != nil {
		logger.Warn("Error loading reading text in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, text, logger)
}

func (h *ReadingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SubmitReading"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	textID, err := pathUUID(r, "text_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.SubmitReadingRequest
	if err := decodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid reading submission", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	result, err := h.submissionService.SubmitReading(r.Context(), userID, textID, &req)
	if err != nil {
		logger.Error("Error submitting reading in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Reading submitted successfully", slog.String("attempt_id", result.AttemptID.String()), slog.Int("score", result.Score))
	webutil.RespondWithJSON(w, http.StatusCreated, result, logger)
}
