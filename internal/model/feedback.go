package model

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is the generated response to exactly one attempt/submission. The
// per-kind foreign keys are each unique, which enforces at most one feedback
// row per attempt at the store level.
type Feedback struct {
	FeedbackID uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID    `gorm:"type:uuid;not null;index" json:"-"`
	Type       ActivityKind `gorm:"not null;index" json:"type"`
	Content    string       `gorm:"not null" json:"content"`
	Scores     *string      `json:"-"`
	CreatedAt  time.Time    `json:"createdAt"`

	ReadingAttemptID    *uuid.UUID `gorm:"type:uuid;unique" json:"-"`
	ListeningAttemptID  *uuid.UUID `gorm:"type:uuid;unique" json:"-"`
	WritingSubmissionID *uuid.UUID `gorm:"type:uuid;unique" json:"-"`
	SpeakingAttemptID   *uuid.UUID `gorm:"type:uuid;unique" json:"-"`
}

func (Feedback) TableName() string {
	return "feedback"
}

// AttemptRef points the feedback row at its owning attempt.
func (f *Feedback) AttemptRef() *uuid.UUID {
	switch f.Type {
	case KindReading:
		return f.ReadingAttemptID
	case KindListening:
		return f.ListeningAttemptID
	case KindWriting:
		return f.WritingSubmissionID
	case KindSpeaking:
		return f.SpeakingAttemptID
	}
	return nil
}

type FeedbackResponse struct {
	ID        uuid.UUID      `json:"id"`
	Type      ActivityKind   `json:"type"`
	Content   string         `json:"content"`
	Scores    map[string]int `json:"scores"`
	CreatedAt time.Time      `json:"createdAt"`
}
