//go:generate mockery --name AttemptRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"reel_lingo_backend/internal/middleware"
	"reel_lingo_backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttemptRepository is the append-only attempt ledger. Every successful
// evaluation writes exactly one row here before progress is recomputed.
type AttemptRepository interface {
	CreateReadingAttempt(ctx context.Context, tx *gorm.DB, attempt *model.ReadingAttempt) error
	CreateListeningAttempt(ctx context.Context, tx *gorm.DB, attempt *model.ListeningAttempt) error
	CreateWritingSubmission(ctx context.Context, tx *gorm.DB, submission *model.WritingSubmission) error
	CreateSpeakingAttempt(ctx context.Context, tx *gorm.DB, attempt *model.SpeakingAttempt) error
	CreateReelBatchAttempt(ctx context.Context, tx *gorm.DB, attempt *model.ReelBatchAttempt) error
	// CountDistinctActivities counts how many distinct activities out of
	// activityIDs the user has attempted at least once.
	CountDistinctActivities(ctx context.Context, db *gorm.DB, userID uuid.UUID, kind model.ActivityKind, activityIDs []uuid.UUID) (int64, error)
}

type gormAttemptRepository struct{}

func NewGormAttemptRepository() AttemptRepository {
	return &gormAttemptRepository{}
}

func (r *gormAttemptRepository) CreateReadingAttempt(ctx context.Context, tx *gorm.DB, attempt *model.ReadingAttempt) error {
	return r.create(ctx, tx, attempt, "CreateReadingAttempt")
}

func (r *gormAttemptRepository) CreateListeningAttempt(ctx context.Context, tx *gorm.DB, attempt *model.ListeningAttempt) error {
	return r.create(ctx, tx, attempt, "CreateListeningAttempt")
}

func (r *gormAttemptRepository) CreateWritingSubmission(ctx context.Context, tx *gorm.DB, submission *model.WritingSubmission) error {
	return r.create(ctx, tx, submission, "CreateWritingSubmission")
}

func (r *gormAttemptRepository) CreateSpeakingAttempt(ctx context.Context, tx *gorm.DB, attempt *model.SpeakingAttempt) error {
	return r.create(ctx, tx, attempt, "CreateSpeakingAttempt")
}

func (r *gormAttemptRepository) CreateReelBatchAttempt(ctx context.Context, tx *gorm.DB, attempt *model.ReelBatchAttempt) error {
	return r.create(ctx, tx, attempt, "CreateReelBatchAttempt")
}

func (r *gormAttemptRepository) create(ctx context.Context, tx *gorm.DB, record interface{}, op string) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(record)
	if result.Error != nil {
		logger.Error("Error creating attempt in DB", "op", op, "error", result.Error)
		return fmt.Errorf("gormAttemptRepository.%s: %w", op, result.Error)
	}
	return nil
}

func (r *gormAttemptRepository) CountDistinctActivities(ctx context.Context, db *gorm.DB, userID uuid.UUID, kind model.ActivityKind, activityIDs []uuid.UUID) (int64, error) {
	if len(activityIDs) == 0 {
		return 0, nil
	}

	var table, column string
	switch kind {
	case model.KindReading:
		table, column = "reading_attempts", "reading_text_id"
	case model.KindListening:
		table, column = "listening_attempts", "listening_audio_id"
	case model.KindWriting:
		table, column = "writing_submissions", "writing_topic_id"
	case model.KindSpeaking:
		table, column = "speaking_attempts", "speaking_exercise_id"
	case model.KindReelBatch:
		table, column = "reel_batch_attempts", "reel_batch_id"
	default:
		return 0, model.ErrInvalidInput
	}

	var count int64
	result := db.WithContext(ctx).
		Table(table).
		Where("user_id = ?", userID).
		Where(column+" IN ?", activityIDs).
		Distinct(column).
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("gormAttemptRepository.CountDistinctActivities: %w", result.Error)
	}
	return count, nil
}
