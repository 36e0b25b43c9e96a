package handlers

import (
	"log/slog"
	"net/http"

	"reel_lingo_backend/internal/middleware"
	"reel_lingo_backend/internal/model"
	"reel_lingo_backend/internal/service"
	"reel_lingo_backend/internal/webutil"
)

type ReelHandler struct {
	reelService       service.ReelService
	submissionService service.SubmissionService
	logger            *slog.Logger
}

func NewReelHandler(reelService service.ReelService, submissionService service.SubmissionService, logger *slog.Logger) *ReelHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReelHandler{
		reelService:       reelService,
		submissionService: submissionService,
		logger:            logger,
	}
}

func (h *ReelHandler) ListReels(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListReels"))

	reels, err := h.reelService.ListReels(r.Context())
	if err != nil {
		logger.Error("Error listing reels in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, reels, logger)
}

func (h *ReelHandler) GetReel(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetReel"))

	reelID, err := pathUUID(r, "reel_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	reel, err := h.reelService.GetReel(r.Context(), reelID)
	if err != nil {
		logger.Warn("Error loading reel in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, reel, logger)
}

// GetDubbing resolves one dubbing track by ?language=.
func (h *ReelHandler) GetDubbing(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetDubbing"))

	reelID, err := pathUUID(r, "reel_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	language := r.URL.Query().Get("language")
	if language == "" {
		appErr := model.NewAppError("INVALID_INPUT", "language query parameter is required.", "language", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	dubbing, err := h.reelService.GetDubbing(r.Context(), reelID, language)
	if err != nil {
		logger.Warn("Error loading dubbing in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, dubbing, logger)
}

func (h *ReelHandler) ListBatches(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListBatches"))

	batches, err := h.reelService.ListBatches(r.Context())
	if err != nil {
		logger.Error("Error listing reel batches in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, batches, logger)
}

func (h *ReelHandler) CreateBatch(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CreateBatch"))

	var req model.CreateReelBatchRequest
	if err := decodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid batch creation request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	batch, err := h.reelService.CreateBatch(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating reel batch in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Reel batch created successfully", slog.String("batch_id", batch.ID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, batch, logger)
}

func (h *ReelHandler) GetBatch(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetBatch"))

	batchID, err := pathUUID(r, "batch_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	includeAnswer := r.URL.Query().Get("include_answer") == "true"
	batch, err := h.reelService.GetBatch(r.Context(), batchID, includeAnswer)
	if err != nil {
		logger.Warn("Error loading reel batch in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, batch, logger)
}

// SetQuestion upserts the batch's single comprehension question.
func (h *ReelHandler) SetQuestion(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SetBatchQuestion"))

	batchID, err := pathUUID(r, "batch_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.SetBatchQuestionRequest
	if err := decodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid batch question request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	question, err := h.reelService.SetBatchQuestion(r.Context(), batchID, &req)
	if err != nil {
		logger.Error("Error saving batch question in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, question, logger)
}

func (h *ReelHandler) Submit(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SubmitReelAnswer"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	batchID, err := pathUUID(r, "batch_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.SubmitReelAnswerRequest
	if err := decodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid reel answer", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	result, err := h.submissionService.SubmitReelAnswer(r.Context(), userID, batchID, &req)
	if err != nil {
		logger.Error("Error submitting reel answer in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Reel answer submitted successfully", slog.String("attempt_id", result.AttemptID.String()), slog.Bool("correct", result.Correct))
	webutil.RespondWithJSON(w, http.StatusCreated, result, logger)
}
