package service

import (
	"context"

	"reel_lingo_backend/internal/model"
	"reel_lingo_backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SpeechSynthesizer is the pluggable TTS/STT backend. The server owns one
// instance chosen at bootstrap; handlers never construct their own.
type SpeechSynthesizer interface {
	// Synthesize renders text to speech and returns the audio URL.
	Synthesize(ctx context.Context, text, language string) (string, error)
	// Transcribe converts uploaded speech audio to text.
	Transcribe(ctx context.Context, audioURL string) (string, error)
	Available() bool
}

// noopSynthesizer is the default backend when no speech engine is configured.
// Every call reports the feature as unavailable.
type noopSynthesizer struct{}

func NewNoopSynthesizer() SpeechSynthesizer {
	return &noopSynthesizer{}
}

func (n *noopSynthesizer) Synthesize(ctx context.Context, text, language string) (string, error) {
	return "", model.NewAppError("SPEECH_UNAVAILABLE", "Speech synthesis is not configured on this server.", "", model.ErrExternalService)
}

func (n *noopSynthesizer) Transcribe(ctx context.Context, audioURL string) (string, error) {
	return "", model.NewAppError("SPEECH_UNAVAILABLE", "Speech transcription is not configured on this server.", "", model.ErrExternalService)
}

func (n *noopSynthesizer) Available() bool {
	return false
}

// SpeechService exposes the speech backend to users who enabled TTS/STT mode.
type SpeechService interface {
	Synthesize(ctx context.Context, userID uuid.UUID, text, language string) (string, error)
	Transcribe(ctx context.Context, userID uuid.UUID, audioURL string) (string, error)
	ModeEnabled(ctx context.Context, userID uuid.UUID) (bool, error)
}

type speechService struct {
	db          *gorm.DB
	userRepo    repository.UserRepository
	synthesizer SpeechSynthesizer
}

func NewSpeechService(db *gorm.DB, userRepo repository.UserRepository, synthesizer SpeechSynthesizer) SpeechService {
	return &speechService{db: db, userRepo: userRepo, synthesizer: synthesizer}
}

func (s *speechService) requireMode(ctx context.Context, userID uuid.UUID) error {
	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		return err
	}
	if !user.TTSSTTModeEnabled {
		return model.NewAppError("SPEECH_MODE_DISABLED", "Enable TTS/STT mode in your profile first.", "", model.ErrForbidden)
	}
	return nil
}

func (s *speechService) Synthesize(ctx context.Context, userID uuid.UUID, text, language string) (string, error) {
	if err := s.requireMode(ctx, userID); err != nil {
		return "", err
	}
	return s.synthesizer.Synthesize(ctx, text, language)
}

func (s *speechService) Transcribe(ctx context.Context, userID uuid.UUID, audioURL string) (string, error) {
	if err := s.requireMode(ctx, userID); err != nil {
		return "", err
	}
	return s.synthesizer.Transcribe(ctx, audioURL)
}

func (s *speechService) ModeEnabled(ctx context.Context, userID uuid.UUID) (bool, error) {
	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		return false, err
	}
	return user.TTSSTTModeEnabled && s.synthesizer.Available(), nil
}
