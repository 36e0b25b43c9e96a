//go:generate mockery --name ProgressRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"reel_lingo_backend/internal/middleware"
	"reel_lingo_backend/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ProgressRepository persists the one-row-per-(user, category, level)
// completion records.
type ProgressRepository interface {
	Find(ctx context.Context, db *gorm.DB, userID, categoryID, levelID uuid.UUID) (*model.UserLevelProgress, error)
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.UserLevelProgress, error)
	FindByUserAndCategory(ctx context.Context, db *gorm.DB, userID, categoryID uuid.UUID) ([]*model.UserLevelProgress, error)
	// Create returns model.ErrConflict when the composite unique index on
	// (user, category, level) rejects the row.
	Create(ctx context.Context, tx *gorm.DB, progress *model.UserLevelProgress) error
	Save(ctx context.Context, tx *gorm.DB, progress *model.UserLevelProgress) error
}

type gormProgressRepository struct{}

func NewGormProgressRepository() ProgressRepository {
	return &gormProgressRepository{}
}

func (r *gormProgressRepository) Find(ctx context.Context, db *gorm.DB, userID, categoryID, levelID uuid.UUID) (*model.UserLevelProgress, error) {
	var progress model.UserLevelProgress
	result := db.WithContext(ctx).
		Where("user_id = ? AND category_id = ? AND level_id = ?", userID, categoryID, levelID).
		First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormProgressRepository.Find: %w", result.Error)
	}
	return &progress, nil
}

func (r *gormProgressRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.UserLevelProgress, error) {
	var rows []*model.UserLevelProgress
	result := db.WithContext(ctx).
		Preload("Level").
		Preload("Category").
		Where("user_id = ?", userID).
		Order("category_id ASC, level_id ASC").
		Find(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("gormProgressRepository.FindByUser: %w", result.Error)
	}
	return rows, nil
}

func (r *gormProgressRepository) FindByUserAndCategory(ctx context.Context, db *gorm.DB, userID, categoryID uuid.UUID) ([]*model.UserLevelProgress, error) {
	var rows []*model.UserLevelProgress
	result := db.WithContext(ctx).
		Where("user_id = ? AND category_id = ?", userID, categoryID).
		Find(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("gormProgressRepository.FindByUserAndCategory: %w", result.Error)
	}
	return rows, nil
}

func (r *gormProgressRepository) Create(ctx context.Context, tx *gorm.DB, progress *model.UserLevelProgress) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(progress)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return model.ErrConflict
		}
		logger.Error("Error creating progress in DB", "error", result.Error, "level_id", progress.LevelID.String())
		return fmt.Errorf("gormProgressRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormProgressRepository) Save(ctx context.Context, tx *gorm.DB, progress *model.UserLevelProgress) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Save(progress)
	if result.Error != nil {
		logger.Error("Error saving progress in DB", "error", result.Error, "level_id", progress.LevelID.String())
		return fmt.Errorf("gormProgressRepository.Save: %w", result.Error)
	}
	return nil
}

// isUniqueViolation detects unique-constraint failures both through GORM's
// translated error and the raw postgres SQLSTATE.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
