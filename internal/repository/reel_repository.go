//go:generate mockery --name ReelRepository --output ./mocks --outpkg mocks --case=underscore
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

// ReelRepository covers reels, batches, batch questions and dubbings.
type ReelRepository interface {
	ListReels(ctx context.Context, db *gorm.DB) ([]*model.Reel, error)
	FindReel(ctx context.Context, db *gorm.DB, reelID uuid.UUID) (*model.Reel, error)
	ListBatchReels(ctx context.Context, db *gorm.DB, batchID uuid.UUID) ([]*model.Reel, error)
	FindDubbing(ctx context.Context, db *gorm.DB, reelID uuid.UUID, language string) (*model.ReelDubbing, error)

	CreateBatch(ctx context.Context, tx *gorm.DB, batch *model.ReelBatch) error
	ListBatches(ctx context.Context, db *gorm.DB) ([]*model.ReelBatch, error)
	FindBatch(ctx context.Context, db *gorm.DB, batchID uuid.UUID) (*model.ReelBatch, error)
	FindBatchQuestion(ctx context.Context, db *gorm.DB, batchID uuid.UUID) (*model.ReelBatchQuestion, error)
	SaveBatchQuestion(ctx context.Context, tx *gorm.DB, question *model.ReelBatchQuestion) error
}

type gormReelRepository struct{}

func NewGormReelRepository() ReelRepository {
	return &gormReelRepository{}
}

func (r *gormReelRepository) ListReels(ctx context.Context, db *gorm.DB) ([]*model.Reel, error) {
	var reels []*model.Reel
	result := db.WithContext(ctx).
		Preload("Dubbings").
		Order("sort_order ASC, order_in_batch ASC").
		Find(&reels)
	if result.Error != nil {
		return nil, fmt.Errorf("gormReelRepository.ListReels: %w", result.Error)
	}
	return reels, nil
}

func (r *gormReelRepository) FindReel(ctx context.Context, db *gorm.DB, reelID uuid.UUID) (*model.Reel, error) {
	var reel model.Reel
	result := db.WithContext(ctx).Preload("Dubbings").Where("reel_id = ?", reelID).First(&reel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormReelRepository.FindReel: %w", result.Error)
	}
	return &reel, nil
}

func (r *gormReelRepository) ListBatchReels(ctx context.Context, db *gorm.DB, batchID uuid.UUID) ([]*model.Reel, error) {
	var reels []*model.Reel
	result := db.WithContext(ctx).
		Preload("Dubbings").
		Where("batch_id = ?", batchID).
		Order("order_in_batch ASC").
		Find(&reels)
	if result.Error != nil {
		return nil, fmt.Errorf("gormReelRepository.ListBatchReels: %w", result.Error)
	}
	return reels, nil
}

func (r *gormReelRepository) FindDubbing(ctx context.Context, db *gorm.DB, reelID uuid.UUID, language string) (*model.ReelDubbing, error) {
	var dubbing model.ReelDubbing
	result := db.WithContext(ctx).Where("reel_id = ? AND language = ?", reelID, language).First(&dubbing)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormReelRepository.FindDubbing: %w", result.Error)
	}
	return &dubbing, nil
}

func (r *gormReelRepository) CreateBatch(ctx context.Context, tx *gorm.DB, batch *model.ReelBatch) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(batch)
	if result.Error != nil {
		logger.Error("Error creating reel batch in DB", "error", result.Error)
		return fmt.Errorf("gormReelRepository.CreateBatch: %w", result.Error)
	}
	return nil
}

func (r *gormReelRepository) ListBatches(ctx context.Context, db *gorm.DB) ([]*model.ReelBatch, error) {
	var batches []*model.ReelBatch
	result := db.WithContext(ctx).Order("sort_order ASC").Find(&batches)
	if result.Error != nil {
		return nil, fmt.Errorf("gormReelRepository.ListBatches: %w", result.Error)
	}
	return batches, nil
}

func (r *gormReelRepository) FindBatch(ctx context.Context, db *gorm.DB, batchID uuid.UUID) (*model.ReelBatch, error) {
	var batch model.ReelBatch
	result := db.WithContext(ctx).Where("reel_batch_id = ?", batchID).First(&batch)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormReelRepository.FindBatch: %w", result.Error)
	}
	return &batch, nil
}

func (r *gormReelRepository) FindBatchQuestion(ctx context.Context, db *gorm.DB, batchID uuid.UUID) (*model.ReelBatchQuestion, error) {
	var question model.ReelBatchQuestion
	result := db.WithContext(ctx).Where("reel_batch_id = ?", batchID).First(&question)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormReelRepository.FindBatchQuestion: %w", result.Error)
	}
	return &question, nil
}

func (r *gormReelRepository) SaveBatchQuestion(ctx context.Context, tx *gorm.DB, question *model.ReelBatchQuestion) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Save(question)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return model.ErrConflict
		}
		logger.Error("Error saving reel batch question in DB", "error", result.Error, "batch_id", question.ReelBatchID.String())
		return fmt.Errorf("gormReelRepository.SaveBatchQuestion: %w", result.Error)
	}
	return nil
}
