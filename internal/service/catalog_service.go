//go:generate mockery --name CatalogService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"

	"reel_lingo_backend/internal/middleware"
	"reel_lingo_backend/internal/model"
	"reel_lingo_backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogService serves the read-only content catalog. Answer keys and
// reference transcripts never leave this layer.
type CatalogService interface {
	ListCategories(ctx context.Context, userID uuid.UUID) ([]model.CategoryResponse, error)
	// LevelsForCategory resolves a category by slug and returns its levels
	// with unlock and completion flags.
	LevelsForCategory(ctx context.Context, userID uuid.UUID, slug string) (*model.Category, []model.LevelStatus, error)

	ListReadingTexts(ctx context.Context, levelID uuid.UUID) ([]model.ReadingTextResponse, error)
	GetReadingText(ctx context.Context, textID uuid.UUID) (*model.ReadingTextResponse, error)
	ListListeningAudios(ctx context.Context, levelID uuid.UUID) ([]*model.ListeningAudio, error)
	ListWritingTopics(ctx context.Context, levelID uuid.UUID) ([]*model.WritingTopic, error)
	ListSpeakingExercises(ctx context.Context, levelID uuid.UUID) ([]*model.SpeakingExercise, error)
}

type catalogService struct {
	db           *gorm.DB
	catalogRepo  repository.CatalogRepository
	progressRepo repository.ProgressRepository
	progress     ProgressService
}

func NewCatalogService(db *gorm.DB, catalogRepo repository.CatalogRepository, progressRepo repository.ProgressRepository, progress ProgressService) CatalogService {
	return &catalogService{
		db:           db,
		catalogRepo:  catalogRepo,
		progressRepo: progressRepo,
		progress:     progress,
	}
}

func (s *catalogService) ListCategories(ctx context.Context, userID uuid.UUID) ([]model.CategoryResponse, error) {
	categories, err := s.catalogRepo.ListCategories(ctx, s.db)
	if err != nil {
		return nil, err
	}

	rows, err := s.progressRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}
	completed := make(map[uuid.UUID]*model.UserLevelProgress, len(rows))
	for _, row := range rows {
		completed[row.LevelID] = row
	}

	responses := make([]model.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		levels, err := s.catalogRepo.ListLevels(ctx, s.db, category.CategoryID)
		if err != nil {
			return nil, err
		}
		summaries := make([]model.LevelSummary, 0, len(levels))
		for _, level := range levels {
			summary := model.LevelSummary{
				ID:          level.LevelID,
				Order:       level.Order,
				Name:        level.Name,
				Description: level.Description,
			}
			if row, ok := completed[level.LevelID]; ok && row.Completed {
				summary.Completed = true
				summary.CompletedAt = row.CompletedAt
			}
			summaries = append(summaries, summary)
		}
		responses = append(responses, model.CategoryResponse{
			ID:          category.CategoryID,
			Slug:        category.Slug,
			Name:        category.Name,
			Description: category.Description,
			Kind:        category.Kind,
			Order:       category.Order,
			Levels:      summaries,
		})
	}
	return responses, nil
}

func (s *catalogService) LevelsForCategory(ctx context.Context, userID uuid.UUID, slug string) (*model.Category, []model.LevelStatus, error) {
	category, err := s.catalogRepo.FindCategoryBySlug(ctx, s.db, slug)
	if err != nil {
		return nil, nil, err
	}
	statuses, err := s.progress.LevelStatuses(ctx, userID, category)
	if err != nil {
		return nil, nil, err
	}
	return category, statuses, nil
}

func (s *catalogService) ListReadingTexts(ctx context.Context, levelID uuid.UUID) ([]model.ReadingTextResponse, error) {
	if _, err := s.catalogRepo.FindLevel(ctx, s.db, levelID); err != nil {
		return nil, err
	}
	texts, err := s.catalogRepo.ListReadingTexts(ctx, s.db, levelID)
	if err != nil {
		return nil, err
	}

	responses := make([]model.ReadingTextResponse, 0, len(texts))
	for _, text := range texts {
		resp, err := s.toReadingTextResponse(ctx, text)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (s *catalogService) GetReadingText(ctx context.Context, textID uuid.UUID) (*model.ReadingTextResponse, error) {
	text, err := s.catalogRepo.FindReadingText(ctx, s.db, textID)
	if err != nil {
		return nil, err
	}
	return s.toReadingTextResponse(ctx, text)
}

func (s *catalogService) toReadingTextResponse(ctx context.Context, text *model.ReadingText) (*model.ReadingTextResponse, error) {
	questions, err := s.catalogRepo.ListQuestions(ctx, s.db, text.ReadingTextID)
	if err != nil {
		return nil, err
	}

	logger := middleware.GetLogger(ctx)
	questionResponses := make([]model.ReadingQuestionResponse, 0, len(questions))
	for _, q := range questions {
		questionResponses = append(questionResponses, model.ReadingQuestionResponse{
			ID:       q.QuestionID,
			Question: q.Question,
			Options:  decodeOptions(logger, q.Options),
			Order:    q.Order,
		})
	}
	return &model.ReadingTextResponse{
		ID:        text.ReadingTextID,
		LevelID:   text.LevelID,
		Title:     text.Title,
		Body:      text.Body,
		Order:     text.Order,
		Questions: questionResponses,
	}, nil
}

func (s *catalogService) ListListeningAudios(ctx context.Context, levelID uuid.UUID) ([]*model.ListeningAudio, error) {
	if _, err := s.catalogRepo.FindLevel(ctx, s.db, levelID); err != nil {
		return nil, err
	}
	return s.catalogRepo.ListListeningAudios(ctx, s.db, levelID)
}

func (s *catalogService) ListWritingTopics(ctx context.Context, levelID uuid.UUID) ([]*model.WritingTopic, error) {
	if _, err := s.catalogRepo.FindLevel(ctx, s.db, levelID); err != nil {
		return nil, err
	}
	return s.catalogRepo.ListWritingTopics(ctx, s.db, levelID)
}

func (s *catalogService) ListSpeakingExercises(ctx context.Context, levelID uuid.UUID) ([]*model.SpeakingExercise, error) {
	if _, err := s.catalogRepo.FindLevel(ctx, s.db, levelID); err != nil {
		return nil, err
	}
	return s.catalogRepo.ListSpeakingExercises(ctx, s.db, levelID)
}
