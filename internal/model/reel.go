package model

import (
	"time"

	"github.com/google/uuid"
)

// ReelBatch groups five short reels followed by one comprehension question
// crafted from the videos' audio. A batch may be attached to a level, in which
// case answering its question counts toward level completion.
type ReelBatch struct {
	ReelBatchID uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	LevelID     *uuid.UUID `gorm:"type:uuid;index" json:"levelId"`
	Title       *string    `json:"title"`
	Order       int        `gorm:"column:sort_order;not null;default:0" json:"order"`
	CreatedAt   time.Time  `json:"createdAt"`

	Reels    []Reel             `gorm:"foreignKey:BatchID" json:"-"`
	Question *ReelBatchQuestion `gorm:"foreignKey:ReelBatchID" json:"-"`
}

func (ReelBatch) TableName() string {
	return "reel_batches"
}

// ReelBatchQuestion is the one question per batch. Options is a JSON array
// stored as text.
type ReelBatchQuestion struct {
	QuestionID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ReelBatchID   uuid.UUID `gorm:"type:uuid;not null;unique" json:"batchId"`
	Question      string    `gorm:"not null" json:"question"`
	Options       string    `gorm:"not null" json:"-"`
	CorrectAnswer string    `gorm:"not null" json:"-"`
}

func (ReelBatchQuestion) TableName() string {
	return "reel_batch_questions"
}

// Reel is one short video. OrderInBatch is 1-5 within its batch.
type Reel struct {
	ReelID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title           string     `gorm:"not null" json:"title"`
	Description     *string    `json:"description"`
	VideoURL        string     `gorm:"not null" json:"videoUrl"`
	ThumbnailURL    *string    `json:"thumbnailUrl"`
	DurationSeconds *int       `json:"durationSeconds"`
	Language        string     `gorm:"not null" json:"language"`
	Order           int        `gorm:"column:sort_order;not null;default:0" json:"order"`
	BatchID         *uuid.UUID `gorm:"type:uuid;index" json:"batchId"`
	OrderInBatch    *int       `json:"orderInBatch"`
	CreatedAt       time.Time  `json:"createdAt"`

	Dubbings []ReelDubbing `gorm:"foreignKey:ReelID" json:"-"`
}

func (Reel) TableName() string {
	return "reels"
}

// ReelDubbing is an alternate-language audio track, unique per (reel, language).
type ReelDubbing struct {
	DubbingID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ReelID     uuid.UUID `gorm:"type:uuid;not null;index:idx_reel_language,unique" json:"reelId"`
	Language   string    `gorm:"not null;index:idx_reel_language,unique" json:"language"`
	AudioURL   string    `gorm:"not null" json:"audioUrl"`
	Transcript *string   `json:"transcript"`
}

func (ReelDubbing) TableName() string {
	return "reel_dubbings"
}

type CreateReelBatchRequest struct {
	Title   *string    `json:"title,omitempty" validate:"omitempty,max=255"`
	LevelID *uuid.UUID `json:"levelId,omitempty"`
	Order   int        `json:"order,omitempty"`
}

// SetBatchQuestionRequest upserts the single question of a batch.
type SetBatchQuestionRequest struct {
	Question      string   `json:"question" validate:"required"`
	Options       []string `json:"options" validate:"required,min=2"`
	CorrectAnswer string   `json:"correctAnswer" validate:"required"`
}

type ReelDubbingResponse struct {
	ID         uuid.UUID `json:"id"`
	Language   string    `json:"language"`
	AudioURL   string    `json:"audioUrl"`
	Transcript *string   `json:"transcript,omitempty"`
}

type ReelResponse struct {
	ID              uuid.UUID             `json:"id"`
	Title           string                `json:"title"`
	Description     *string               `json:"description"`
	VideoURL        string                `json:"videoUrl"`
	ThumbnailURL    *string               `json:"thumbnailUrl"`
	DurationSeconds *int                  `json:"durationSeconds"`
	Language        string                `json:"language"`
	Order           int                   `json:"order"`
	BatchID         *uuid.UUID            `json:"batchId"`
	OrderInBatch    *int                  `json:"orderInBatch"`
	Dubbings        []ReelDubbingResponse `json:"dubbings"`
}

// ReelBatchQuestionResponse hides the answer key unless the caller asked for
// the creator view.
type ReelBatchQuestionResponse struct {
	ID            uuid.UUID `json:"id"`
	Question      string    `json:"question"`
	Options       []string  `json:"options"`
	CorrectAnswer string    `json:"correctAnswer,omitempty"`
}

type ReelBatchResponse struct {
	ID        uuid.UUID                  `json:"id"`
	LevelID   *uuid.UUID                 `json:"levelId"`
	Title     *string                    `json:"title"`
	Order     int                        `json:"order"`
	CreatedAt *time.Time                 `json:"createdAt,omitempty"`
	Reels     []ReelResponse             `json:"reels"`
	Question  *ReelBatchQuestionResponse `json:"question"`
}
