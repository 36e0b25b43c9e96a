package model

import (
	"time"

	"github.com/google/uuid"
)

// Attempt rows are append-only: created once per learner interaction, never
// updated. Answers/scores snapshots are stored as JSON in text columns.

type ReadingAttempt struct {
	AttemptID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	ReadingTextID uuid.UUID `gorm:"type:uuid;not null;index" json:"readingTextId"`
	Answers       string    `gorm:"not null" json:"-"`
	Score         int       `gorm:"not null" json:"score"`
	CompletedAt   time.Time `gorm:"autoCreateTime" json:"completedAt"`
}

func (ReadingAttempt) TableName() string {
	return "reading_attempts"
}

type ListeningAttempt struct {
	AttemptID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	ListeningAudioID uuid.UUID `gorm:"type:uuid;not null;index" json:"listeningAudioId"`
	UserTranslation  string    `gorm:"not null" json:"userTranslation"`
	CompletedAt      time.Time `gorm:"autoCreateTime" json:"completedAt"`
}

func (ListeningAttempt) TableName() string {
	return "listening_attempts"
}

type WritingSubmission struct {
	SubmissionID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	WritingTopicID uuid.UUID `gorm:"type:uuid;not null;index" json:"writingTopicId"`
	Content        string    `gorm:"not null" json:"content"`
	SubmittedAt    time.Time `gorm:"autoCreateTime" json:"submittedAt"`
}

func (WritingSubmission) TableName() string {
	return "writing_submissions"
}

type SpeakingAttempt struct {
	AttemptID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	SpeakingExerciseID uuid.UUID `gorm:"type:uuid;not null;index" json:"speakingExerciseId"`
	AudioURL           *string   `json:"audioUrl"`
	Transcript         *string   `json:"transcript"`
	CompletedAt        time.Time `gorm:"autoCreateTime" json:"completedAt"`
}

func (SpeakingAttempt) TableName() string {
	return "speaking_attempts"
}

type ReelBatchAttempt struct {
	AttemptID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	ReelBatchID uuid.UUID `gorm:"type:uuid;not null;index" json:"reelBatchId"`
	Answer      string    `gorm:"not null" json:"answer"`
	Correct     bool      `gorm:"not null" json:"correct"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (ReelBatchAttempt) TableName() string {
	return "reel_batch_attempts"
}

// --- Submission DTOs ---

// SubmitReadingRequest maps question id -> chosen answer. Unknown question ids
// are ignored; missing answers count as wrong.
type SubmitReadingRequest struct {
	Answers map[string]string `json:"answers" validate:"required"`
}

type SubmitListeningRequest struct {
	UserTranslation string `json:"userTranslation" validate:"required"`
}

type SubmitWritingRequest struct {
	Content string `json:"content" validate:"required"`
}

// SubmitSpeakingRequest carries optional self/assessment sub-scores; each must
// be within 0-10 when supplied.
type SubmitSpeakingRequest struct {
	AudioURL      *string `json:"audioUrl,omitempty" validate:"omitempty,max=500"`
	Transcript    *string `json:"transcript,omitempty"`
	Pronunciation *int    `json:"pronunciation,omitempty" validate:"omitempty,min=0,max=10"`
	Fluency       *int    `json:"fluency,omitempty" validate:"omitempty,min=0,max=10"`
	Dictation     *int    `json:"dictation,omitempty" validate:"omitempty,min=0,max=10"`
}

type SubmitReelAnswerRequest struct {
	Answer string `json:"answer" validate:"required"`
}

// --- Submission results ---

type ReadingResult struct {
	AttemptID uuid.UUID `json:"attemptId"`
	Score     int       `json:"score"`
	Correct   int       `json:"correct"`
	Total     int       `json:"total"`
	Feedback  string    `json:"feedback"`
}

type ListeningResult struct {
	AttemptID uuid.UUID `json:"attemptId"`
	Feedback  string    `json:"feedback"`
}

type WritingResult struct {
	SubmissionID uuid.UUID `json:"submissionId"`
	Feedback     string    `json:"feedback"`
}

type SpeakingResult struct {
	AttemptID uuid.UUID      `json:"attemptId"`
	Feedback  string         `json:"feedback"`
	Scores    map[string]int `json:"scores"`
}

type ReelAnswerResult struct {
	AttemptID     uuid.UUID `json:"attemptId"`
	Correct       bool      `json:"correct"`
	CorrectAnswer string    `json:"correctAnswer"`
}
