//go:generate mockery --name CatalogRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"reel_lingo_backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogRepository is the read-only Content Catalog: categories, levels and
// the per-kind activities beneath them.
type CatalogRepository interface {
	ListCategories(ctx context.Context, db *gorm.DB) ([]*model.Category, error)
	FindCategoryBySlug(ctx context.Context, db *gorm.DB, slug string) (*model.Category, error)
	ListLevels(ctx context.Context, db *gorm.DB, categoryID uuid.UUID) ([]*model.Level, error)
	FindLevel(ctx context.Context, db *gorm.DB, levelID uuid.UUID) (*model.Level, error)
	// ListActivityIDs returns the ids of every activity of the given kind
	// belonging to the level, used for the completion coverage count.
	ListActivityIDs(ctx context.Context, db *gorm.DB, kind model.ActivityKind, levelID uuid.UUID) ([]uuid.UUID, error)

	ListReadingTexts(ctx context.Context, db *gorm.DB, levelID uuid.UUID) ([]*model.ReadingText, error)
	FindReadingText(ctx context.Context, db *gorm.DB, textID uuid.UUID) (*model.ReadingText, error)
	ListQuestions(ctx context.Context, db *gorm.DB, textID uuid.UUID) ([]*model.ReadingQuestion, error)
	ListListeningAudios(ctx context.Context, db *gorm.DB, levelID uuid.UUID) ([]*model.ListeningAudio, error)
	FindListeningAudio(ctx context.Context, db *gorm.DB, audioID uuid.UUID) (*model.ListeningAudio, error)
	ListWritingTopics(ctx context.Context, db *gorm.DB, levelID uuid.UUID) ([]*model.WritingTopic, error)
	FindWritingTopic(ctx context.Context, db *gorm.DB, topicID uuid.UUID) (*model.WritingTopic, error)
	ListSpeakingExercises(ctx context.Context, db *gorm.DB, levelID uuid.UUID) ([]*model.SpeakingExercise, error)
	FindSpeakingExercise(ctx context.Context, db *gorm.DB, exerciseID uuid.UUID) (*model.SpeakingExercise, error)
}

type gormCatalogRepository struct{}

func NewGormCatalogRepository() CatalogRepository {
	return &gormCatalogRepository{}
}

func (r *gormCatalogRepository) ListCategories(ctx context.Context, db *gorm.DB) ([]*model.Category, error) {
	var categories []*model.Category
	result := db.WithContext(ctx).Order("sort_order ASC").Find(&categories)
	if result.Error != nil {
		return nil, fmt.Errorf("gormCatalogRepository.ListCategories: %w", result.Error)
	}
	return categories, nil
}

func (r *gormCatalogRepository) FindCategoryBySlug(ctx context.Context, db *gorm.DB, slug string) (*model.Category, error) {
	var category model.Category
	result := db.WithContext(ctx).Where("slug = ?", slug).First(&category)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormCatalogRepository.FindCategoryBySlug: %w", result.Error)
	}
	return &category, nil
}

func (r *gormCatalogRepository) ListLevels(ctx context.Context, db *gorm.DB, categoryID uuid.UUID) ([]*model.Level, error) {
	var levels []*model.Level
	result := db.WithContext(ctx).Where("category_id = ?", categoryID).Order("sort_order ASC").Find(&levels)
	if result.Error != nil {
		return nil, fmt.Errorf("gormCatalogRepository.ListLevels: %w", result.Error)
	}
	return levels, nil
}

func (r *gormCatalogRepository) FindLevel(ctx context.Context, db *gorm.DB, levelID uuid.UUID) (*model.Level, error) {
	var level model.Level
	result := db.WithContext(ctx).Preload("Category").Where("level_id = ?", levelID).First(&level)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormCatalogRepository.FindLevel: %w", result.Error)
	}
	return &level, nil
}

func (r *gormCatalogRepository) ListActivityIDs(ctx context.Context, db *gorm.DB, kind model.ActivityKind, levelID uuid.UUID) ([]uuid.UUID, error) {
	var table, column string
	switch kind {
	case model.KindReading:
		table, column = "reading_texts", "reading_text_id"
	case model.KindListening:
		table, column = "listening_audios", "listening_audio_id"
	case model.KindWriting:
		table, column = "writing_topics", "writing_topic_id"
	case model.KindSpeaking:
		table, column = "speaking_exercises", "speaking_exercise_id"
	case model.KindReelBatch:
		table, column = "reel_batches", "reel_batch_id"
	default:
		return nil, model.ErrInvalidInput
	}

	var ids []uuid.UUID
	result := db.WithContext(ctx).Table(table).Where("level_id = ?", levelID).Pluck(column, &ids)
	if result.Error != nil {
		return nil, fmt.Errorf("gormCatalogRepository.ListActivityIDs: %w", result.Error)
	}
	return ids, nil
}

func (r *gormCatalogRepository) ListReadingTexts(ctx context.Context, db *gorm.DB, levelID uuid.UUID) ([]*model.ReadingText, error) {
	var texts []*model.ReadingText
	result := db.WithContext(ctx).Where("level_id = ?", levelID).Order("sort_order ASC").Find(&texts)
	if result.Error != nil {
		return nil, fmt.Errorf("gormCatalogRepository.ListReadingTexts: %w", result.Error)
	}
	return texts, nil
}

func (r *gormCatalogRepository) FindReadingText(ctx context.Context, db *gorm.DB, textID uuid.UUID) (*model.ReadingText, error) {
	var text model.ReadingText
	result := db.WithContext(ctx).Where("reading_text_id = ?", textID).First(&text)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormCatalogRepository.FindReadingText: %w", result.Error)
	}
	return &text, nil
}

func (r *gormCatalogRepository) ListQuestions(ctx context.Context, db *gorm.DB, textID uuid.UUID) ([]*model.ReadingQuestion, error) {
	var questions []*model.ReadingQuestion
	result := db.WithContext(ctx).Where("reading_text_id = ?", textID).Order("sort_order ASC").Find(&questions)
	if result.Error != nil {
		return nil, fmt.Errorf("gormCatalogRepository.ListQuestions: %w", result.Error)
	}
	return questions, nil
}

func (r *gormCatalogRepository) ListListeningAudios(ctx context.Context, db *gorm.DB, levelID uuid.UUID) ([]*model.ListeningAudio, error) {
	var audios []*model.ListeningAudio
	result := db.WithContext(ctx).Where("level_id = ?", levelID).Order("sort_order ASC").Find(&audios)
	if result.Error != nil {
		return nil, fmt.Errorf("gormCatalogRepository.ListListeningAudios: %w", result.Error)
	}
	return audios, nil
}

func (r *gormCatalogRepository) FindListeningAudio(ctx context.Context, db *gorm.DB, audioID uuid.UUID) (*model.ListeningAudio, error) {
	var audio model.ListeningAudio
	result := db.WithContext(ctx).Where("listening_audio_id = ?", audioID).First(&audio)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormCatalogRepository.FindListeningAudio: %w", result.Error)
	}
	return &audio, nil
}

func (r *gormCatalogRepository) ListWritingTopics(ctx context.Context, db *gorm.DB, levelID uuid.UUID) ([]*model.WritingTopic, error) {
	var topics []*model.WritingTopic
	result := db.WithContext(ctx).Where("level_id = ?", levelID).Order("sort_order ASC").Find(&topics)
	if result.Error != nil {
		return nil, fmt.Errorf("gormCatalogRepository.ListWritingTopics: %w", result.Error)
	}
	return topics, nil
}

func (r *gormCatalogRepository) FindWritingTopic(ctx context.Context, db *gorm.DB, topicID uuid.UUID) (*model.WritingTopic, error) {
	var topic model.WritingTopic
	result := db.WithContext(ctx).Where("writing_topic_id = ?", topicID).First(&topic)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormCatalogRepository.FindWritingTopic: %w", result.Error)
	}
	return &topic, nil
}

func (r *gormCatalogRepository) ListSpeakingExercises(ctx context.Context, db *gorm.DB, levelID uuid.UUID) ([]*model.SpeakingExercise, error) {
	var exercises []*model.SpeakingExercise
	result := db.WithContext(ctx).Where("level_id = ?", levelID).Order("sort_order ASC").Find(&exercises)
	if result.Error != nil {
		return nil, fmt.Errorf("gormCatalogRepository.ListSpeakingExercises: %w", result.Error)
	}
	return exercises, nil
}

func (r *gormCatalogRepository) FindSpeakingExercise(ctx context.Context, db *gorm.DB, exerciseID uuid.UUID) (*model.SpeakingExercise, error) {
	var exercise model.SpeakingExercise
	result := db.WithContext(ctx).Where("speaking_exercise_id = ?", exerciseID).First(&exercise)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormCatalogRepository.FindSpeakingExercise: %w", result.Error)
	}
	return &exercise, nil
}
