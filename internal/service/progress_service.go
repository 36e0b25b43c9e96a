//go:generate mockery --name ProgressService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"reel_lingo_backend/internal/middleware"
	"reel_lingo_backend/internal/model"
	"reel_lingo_backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProgressService owns the completion rule: a level is completed when the
// learner has attempted every activity in it at least once (distinct
// coverage, not attempt volume).
type ProgressService interface {
	// RecomputeCompletion re-derives the completion of one level for one user
	// and persists the transition if the level just became complete.
	RecomputeCompletion(ctx context.Context, userID, levelID uuid.UUID) error
	// CompletionState reports the derived state without writing anything.
	CompletionState(ctx context.Context, userID, levelID uuid.UUID) (model.CompletionState, error)
	// LevelStatuses lists a category's levels with unlock and completion flags.
	LevelStatuses(ctx context.Context, userID uuid.UUID, category *model.Category) ([]model.LevelStatus, error)
	ListProgress(ctx context.Context, userID uuid.UUID) ([]model.ProgressResponse, error)
}

type progressService struct {
	db           *gorm.DB
	catalogRepo  repository.CatalogRepository
	attemptRepo  repository.AttemptRepository
	progressRepo repository.ProgressRepository
	now          func() time.Time
}

func NewProgressService(db *gorm.DB, catalogRepo repository.CatalogRepository, attemptRepo repository.AttemptRepository, progressRepo repository.ProgressRepository) ProgressService {
	return &progressService{
		db:           db,
		catalogRepo:  catalogRepo,
		attemptRepo:  attemptRepo,
		progressRepo: progressRepo,
		now:          time.Now,
	}
}

// coverage returns how many of the level's activities the user has attempted
// and how many exist. The level's category decides which activity kind to
// count.
func (s *progressService) coverage(ctx context.Context, userID uuid.UUID, level *model.Level) (attempted, total int64, err error) {
	if level.Category == nil {
		return 0, 0, fmt.Errorf("progressService.coverage: level %s has no category loaded", level.LevelID)
	}
	ids, err := s.catalogRepo.ListActivityIDs(ctx, s.db, level.Category.Kind, level.LevelID)
	if err != nil {
		return 0, 0, err
	}
	if len(ids) == 0 {
		return 0, 0, nil
	}
	count, err := s.attemptRepo.CountDistinctActivities(ctx, s.db, userID, level.Category.Kind, ids)
	if err != nil {
		return 0, 0, err
	}
	return count, int64(len(ids)), nil
}

func (s *progressService) RecomputeCompletion(ctx context.Context, userID, levelID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	level, err := s.catalogRepo.FindLevel(ctx, s.db, levelID)
	if err != nil {
		return err
	}

	attempted, total, err := s.coverage(ctx, userID, level)
	if err != nil {
		return err
	}
	// A level with no activities can never complete, and an incomplete level
	// gets no row: progress rows exist only for completed levels.
	if total == 0 || attempted < total {
		return nil
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.progressRepo.Find(ctx, tx, userID, level.CategoryID, levelID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return err
		}

		if existing != nil {
			if existing.Completed {
				// Already stamped; repeat attempts never refresh CompletedAt.
				return nil
			}
			completedAt := s.now()
			existing.Completed = true
			existing.CompletedAt = &completedAt
			return s.progressRepo.Save(ctx, tx, existing)
		}

		completedAt := s.now()
		progress := &model.UserLevelProgress{
			ProgressID:  uuid.New(),
			UserID:      userID,
			CategoryID:  level.CategoryID,
			LevelID:     levelID,
			Completed:   true,
			CompletedAt: &completedAt,
		}
		if err := s.progressRepo.Create(ctx, tx, progress); err != nil {
			if errors.Is(err, model.ErrConflict) {
				// Concurrent submission won the race; the level is completed
				// either way.
				logger.Debug("Progress row already created concurrently", "level_id", levelID.String())
				return nil
			}
			return err
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("progressService.RecomputeCompletion: %w", err)
	}
	return nil
}

func (s *progressService) CompletionState(ctx context.Context, userID, levelID uuid.UUID) (model.CompletionState, error) {
	level, err := s.catalogRepo.FindLevel(ctx, s.db, levelID)
	if err != nil {
		return "", err
	}

	attempted, total, err := s.coverage(ctx, userID, level)
	if err != nil {
		return "", err
	}
	switch {
	case total == 0 || attempted == 0:
		return model.StateNotStarted, nil
	case attempted < total:
		return model.StateInProgress, nil
	default:
		return model.StateCompleted, nil
	}
}

func (s *progressService) LevelStatuses(ctx context.Context, userID uuid.UUID, category *model.Category) ([]model.LevelStatus, error) {
	levels, err := s.catalogRepo.ListLevels(ctx, s.db, category.CategoryID)
	if err != nil {
		return nil, err
	}

	rows, err := s.progressRepo.FindByUserAndCategory(ctx, s.db, userID, category.CategoryID)
	if err != nil {
		return nil, err
	}
	completed := make(map[uuid.UUID]*model.UserLevelProgress, len(rows))
	for _, row := range rows {
		completed[row.LevelID] = row
	}

	statuses := make([]model.LevelStatus, 0, len(levels))
	prevCompleted := false
	for i, level := range levels {
		status := model.LevelStatus{
			ID:          level.LevelID,
			Order:       level.Order,
			Name:        level.Name,
			Description: level.Description,
			// The first level is always unlocked; each later level unlocks
			// once the previous one is completed. Display-only: submitting to
			// a locked level is not rejected.
			Unlocked: i == 0 || prevCompleted,
		}
		if row, ok := completed[level.LevelID]; ok && row.Completed {
			status.Completed = true
			status.CompletedAt = row.CompletedAt
		}
		prevCompleted = status.Completed
		statuses = append(statuses, status)
	}
	return statuses, nil
}

func (s *progressService) ListProgress(ctx context.Context, userID uuid.UUID) ([]model.ProgressResponse, error) {
	rows, err := s.progressRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]model.ProgressResponse, 0, len(rows))
	for _, row := range rows {
		resp := model.ProgressResponse{
			ID:          row.ProgressID,
			CategoryID:  row.CategoryID,
			LevelID:     row.LevelID,
			Completed:   row.Completed,
			CompletedAt: row.CompletedAt,
		}
		if row.Level != nil {
			resp.Level = &model.LevelRef{ID: row.Level.LevelID, Order: row.Level.Order, Name: row.Level.Name}
		}
		if row.Category != nil {
			resp.Category = &model.CatRef{ID: row.Category.CategoryID, Slug: row.Category.Slug, Name: row.Category.Name}
		}
		responses = append(responses, resp)
	}
	return responses, nil
}
