package handlers

import (
	"log/slog"
	"net/http"

	"reel_lingo_backend/internal/middleware"
	"reel_lingo_backend/internal/model"
	"reel_lingo_backend/internal/service"
	"reel_lingo_backend/internal/webutil"
)

type SpeechHandler struct {
	speechService service.SpeechService
	logger        *slog.Logger
}

func NewSpeechHandler(speechService service.SpeechService, logger *slog.Logger) *SpeechHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SpeechHandler{
		speechService: speechService,
		logger:        logger,
	}
}

func (h *SpeechHandler) Synthesize(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Synthesize"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.SynthesizeRequest
	if err := decodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid synthesize request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	audioURL, err := h.speechService.Synthesize(r.Context(), userID, req.Text, req.Language)
	if err != nil {
		logger.Warn("Error synthesizing speech in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.SynthesizeResponse{AudioURL: audioURL}, logger)
}

func (h *SpeechHandler) Transcribe(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Transcribe"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.TranscribeRequest
	if err := decodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid transcribe request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	transcript, err := h.speechService.Transcribe(r.Context(), userID, req.AudioURL)
	if err != nil {
		logger.Warn("Error transcribing speech in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.TranscribeResponse{Transcript: transcript}, logger)
}

// Status reports whether the caller can use speech features (mode flag plus a
// configured backend).
func (h *SpeechHandler) Status(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SpeechStatus"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	enabled, err := h.speechService.ModeEnabled(r.Context(), userID)
	if err != nil {
		logger.Warn("Error checking speech mode in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.SpeechStatusResponse{Enabled: enabled}, logger)
}
