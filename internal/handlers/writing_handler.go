package handlers

import (
	"log/slog"
	"net/http"

	"reel_lingo_backend/internal/middleware"
	"reel_lingo_backend/internal/model"
	"reel_lingo_backend/internal/service"
	"reel_lingo_backend/internal/webutil"
)

type WritingHandler struct {
	catalogService    service.CatalogService
	submissionService service.SubmissionService
	logger            *slog.Logger
}

func NewWritingHandler(catalogService service.CatalogService, submissionService service.SubmissionService, logger *slog.Logger) *WritingHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WritingHandler{
		catalogService:    catalogService,
		submissionService: submissionService,
		logger:            logger,
	}
}

func (h *WritingHandler) ListTopics(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListTopics"))

	levelID, err := levelIDParam(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	topics, err := h.catalogService.ListWritingTopics(r.Context(), levelID)
	if err != nil {
		logger.Warn("Error listing writing topics in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if topics == nil {
		topics = []*model.WritingTopic{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, topics, logger)
}

func (h *WritingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SubmitWriting"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	topicID, err := pathUUID(r, "topic_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.SubmitWritingRequest
	if err := decodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid writing submission", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	result, err := h.submissionService.SubmitWriting(r.Context(), userID, topicID, &req)
	if err != nil {
		logger.Error("Error submitting writing in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Writing submitted successfully", slog.String("submission_id", result.SubmissionID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, result, logger)
}
