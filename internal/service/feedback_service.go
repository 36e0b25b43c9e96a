//go:generate mockery --name FeedbackService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"

	"reel_lingo_backend/internal/middleware"
	"reel_lingo_backend/internal/model"
	"reel_lingo_backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeedbackService reads the per-user feedback history.
type FeedbackService interface {
	// ListFeedback returns the newest feedback first, optionally filtered by
	// activity kind. A nil typeFilter means all kinds.
	ListFeedback(ctx context.Context, userID uuid.UUID, typeFilter *model.ActivityKind, limit int) ([]model.FeedbackResponse, error)
	// GetForAttempt looks up the single feedback row of one attempt.
	GetForAttempt(ctx context.Context, userID uuid.UUID, kind model.ActivityKind, attemptID uuid.UUID) (*model.FeedbackResponse, error)
}

type feedbackService struct {
	db           *gorm.DB
	feedbackRepo repository.FeedbackRepository
	defaultLimit int
}

func NewFeedbackService(db *gorm.DB, feedbackRepo repository.FeedbackRepository, defaultLimit int) FeedbackService {
	return &feedbackService{db: db, feedbackRepo: feedbackRepo, defaultLimit: defaultLimit}
}

func (s *feedbackService) ListFeedback(ctx context.Context, userID uuid.UUID, typeFilter *model.ActivityKind, limit int) ([]model.FeedbackResponse, error) {
	if typeFilter != nil && !typeFilter.Valid() {
		return nil, model.NewAppError("INVALID_INPUT", "Unknown feedback type.", "type", model.ErrInvalidInput)
	}
	if limit <= 0 || limit > s.defaultLimit {
		limit = s.defaultLimit
	}

	items, err := s.feedbackRepo.FindByUser(ctx, s.db, userID, typeFilter, limit)
	if err != nil {
		return nil, err
	}

	logger := middleware.GetLogger(ctx)
	responses := make([]model.FeedbackResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, model.FeedbackResponse{
			ID:        item.FeedbackID,
			Type:      item.Type,
			Content:   item.Content,
			Scores:    decodeScores(logger, item.Scores),
			CreatedAt: item.CreatedAt,
		})
	}
	return responses, nil
}

func (s *feedbackService) GetForAttempt(ctx context.Context, userID uuid.UUID, kind model.ActivityKind, attemptID uuid.UUID) (*model.FeedbackResponse, error) {
	if !kind.Valid() || kind == model.KindReelBatch {
		return nil, model.NewAppError("INVALID_INPUT", "Unknown feedback type.", "type", model.ErrInvalidInput)
	}

	item, err := s.feedbackRepo.FindForAttempt(ctx, s.db, userID, kind, attemptID)
	if err != nil {
		return nil, err
	}

	logger := middleware.GetLogger(ctx)
	return &model.FeedbackResponse{
		ID:        item.FeedbackID,
		Type:      item.Type,
		Content:   item.Content,
		Scores:    decodeScores(logger, item.Scores),
		CreatedAt: item.CreatedAt,
	}, nil
}
