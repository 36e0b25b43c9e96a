//go:generate mockery --name FeedbackRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"reel_lingo_backend/internal/middleware"
	"reel_lingo_backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeedbackRepository stores one feedback row per attempt; the unique columns
// on the attempt references reject duplicates.
type FeedbackRepository interface {
	Create(ctx context.Context, tx *gorm.DB, feedback *model.Feedback) error
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, typeFilter *model.ActivityKind, limit int) ([]*model.Feedback, error)
	FindForAttempt(ctx context.Context, db *gorm.DB, userID uuid.UUID, kind model.ActivityKind, attemptID uuid.UUID) (*model.Feedback, error)
}

type gormFeedbackRepository struct{}

func NewGormFeedbackRepository() FeedbackRepository {
	return &gormFeedbackRepository{}
}

func (r *gormFeedbackRepository) Create(ctx context.Context, tx *gorm.DB, feedback *model.Feedback) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(feedback)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return model.ErrConflict
		}
		logger.Error("Error creating feedback in DB", "error", result.Error, "type", feedback.Type)
		return fmt.Errorf("gormFeedbackRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormFeedbackRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, typeFilter *model.ActivityKind, limit int) ([]*model.Feedback, error) {
	var items []*model.Feedback
	query := db.WithContext(ctx).Where("user_id = ?", userID)
	if typeFilter != nil {
		query = query.Where("type = ?", *typeFilter)
	}
	result := query.Order("created_at DESC").Limit(limit).Find(&items)
	if result.Error != nil {
		return nil, fmt.Errorf("gormFeedbackRepository.FindByUser: %w", result.Error)
	}
	return items, nil
}

func (r *gormFeedbackRepository) FindForAttempt(ctx context.Context, db *gorm.DB, userID uuid.UUID, kind model.ActivityKind, attemptID uuid.UUID) (*model.Feedback, error) {
	var column string
	switch kind {
	case model.KindReading:
		column = "reading_attempt_id"
	case model.KindListening:
		column = "listening_attempt_id"
	case model.KindWriting:
		column = "writing_submission_id"
	case model.KindSpeaking:
		column = "speaking_attempt_id"
	default:
		return nil, model.ErrInvalidInput
	}

	var feedback model.Feedback
	result := db.WithContext(ctx).
		Where("user_id = ? AND type = ? AND "+column+" = ?", userID, kind, attemptID).
		First(&feedback)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormFeedbackRepository.FindForAttempt: %w", result.Error)
	}
	return &feedback, nil
}
