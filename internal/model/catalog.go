package model

import (
	"time"

	"github.com/google/uuid"
)

// ActivityKind tags the five gradable activity variants. A category holds
// activities of exactly one kind; the kind drives evaluator dispatch and the
// coverage count in the progress tracker.
type ActivityKind string

const (
	KindReading   ActivityKind = "reading"
	KindListening ActivityKind = "listening"
	KindWriting   ActivityKind = "writing"
	KindSpeaking  ActivityKind = "speaking"
	KindReelBatch ActivityKind = "reel_batch"
)

func (k ActivityKind) Valid() bool {
	switch k {
	case KindReading, KindListening, KindWriting, KindSpeaking, KindReelBatch:
		return true
	}
	return false
}

// FeedbackKinds are the activity kinds that produce a Feedback row. Reel batch
// answers return correctness inline and generate no feedback.
var FeedbackKinds = []ActivityKind{KindReading, KindListening, KindWriting, KindSpeaking}

// Category is an ordered group of levels. Order is display-only; prerequisite
// chaining happens between levels inside a category, never across categories.
type Category struct {
	CategoryID  uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	Slug        string       `gorm:"unique;not null" json:"slug"`
	Name        string       `gorm:"not null" json:"name"`
	Description *string      `json:"description"`
	Kind        ActivityKind `gorm:"not null" json:"kind"`
	Order       int          `gorm:"column:sort_order;not null;default:0" json:"order"`

	Levels []Level `gorm:"foreignKey:CategoryID" json:"-"`
}

func (Category) TableName() string {
	return "categories"
}

// Level belongs to one category. Order defines the prerequisite chain within
// the category: level N is unlocked by completing level N-1.
type Level struct {
	LevelID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CategoryID  uuid.UUID `gorm:"type:uuid;not null;index" json:"categoryId"`
	Order       int       `gorm:"column:sort_order;not null" json:"order"`
	Name        string    `gorm:"not null" json:"name"`
	Description *string   `json:"description"`

	Category *Category `gorm:"foreignKey:CategoryID;references:CategoryID" json:"-"`
}

func (Level) TableName() string {
	return "levels"
}

// ReadingText is a reading activity: a passage plus its quiz questions.
type ReadingText struct {
	ReadingTextID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	LevelID       uuid.UUID `gorm:"type:uuid;not null;index" json:"levelId"`
	Title         string    `gorm:"not null" json:"title"`
	Body          string    `gorm:"not null" json:"body"`
	Order         int       `gorm:"column:sort_order;not null;default:0" json:"order"`

	Questions []ReadingQuestion `gorm:"foreignKey:ReadingTextID" json:"-"`
}

func (ReadingText) TableName() string {
	return "reading_texts"
}

// ReadingQuestion holds the answer key for one quiz question. Options is a
// JSON array stored as text, like the rest of the JSON-in-text columns.
type ReadingQuestion struct {
	QuestionID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ReadingTextID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Question      string    `gorm:"not null" json:"question"`
	Options       *string   `json:"-"`
	CorrectAnswer string    `gorm:"not null" json:"-"`
	Order         int       `gorm:"column:sort_order;not null;default:0" json:"order"`
}

func (ReadingQuestion) TableName() string {
	return "reading_questions"
}

// ListeningAudio is a listening activity. Transcript is optional; without it
// the evaluator can only acknowledge the submission.
type ListeningAudio struct {
	ListeningAudioID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	LevelID          uuid.UUID `gorm:"type:uuid;not null;index" json:"levelId"`
	Title            string    `gorm:"not null" json:"title"`
	AudioURL         string    `gorm:"not null" json:"audioUrl"`
	Transcript       *string   `json:"-"`
	DurationSeconds  *int      `json:"durationSeconds"`
	Order            int       `gorm:"column:sort_order;not null;default:0" json:"order"`
}

func (ListeningAudio) TableName() string {
	return "listening_audios"
}

// WritingTopic is an open-ended essay prompt. No answer key.
type WritingTopic struct {
	WritingTopicID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	LevelID        uuid.UUID `gorm:"type:uuid;not null;index" json:"levelId"`
	Title          string    `gorm:"not null" json:"title"`
	Prompt         string    `gorm:"not null" json:"prompt"`
	Order          int       `gorm:"column:sort_order;not null;default:0" json:"order"`
}

func (WritingTopic) TableName() string {
	return "writing_topics"
}

const (
	SpeakingTypeReadAloud    = "read_aloud"
	SpeakingTypeConversation = "conversation"
)

// SpeakingExercise is an open-ended speaking activity.
type SpeakingExercise struct {
	SpeakingExerciseID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	LevelID            uuid.UUID `gorm:"type:uuid;not null;index" json:"levelId"`
	Type               string    `gorm:"not null" json:"type"`
	Title              string    `gorm:"not null" json:"title"`
	Prompt             string    `gorm:"not null" json:"prompt"`
	SampleAudioURL     *string   `json:"sampleAudioUrl"`
	Order              int       `gorm:"column:sort_order;not null;default:0" json:"order"`
}

func (SpeakingExercise) TableName() string {
	return "speaking_exercises"
}

// ReadingQuestionResponse exposes a question without its answer key.
type ReadingQuestionResponse struct {
	ID       uuid.UUID `json:"id"`
	Question string    `json:"question"`
	Options  []string  `json:"options"`
	Order    int       `json:"order"`
}

type ReadingTextResponse struct {
	ID        uuid.UUID                 `json:"id"`
	LevelID   uuid.UUID                 `json:"levelId"`
	Title     string                    `json:"title"`
	Body      string                    `json:"body"`
	Order     int                       `json:"order"`
	Questions []ReadingQuestionResponse `json:"questions"`
}

type LevelSummary struct {
	ID          uuid.UUID  `json:"id"`
	Order       int        `json:"order"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt"`
}

type CategoryResponse struct {
	ID          uuid.UUID      `json:"id"`
	Slug        string         `json:"slug"`
	Name        string         `json:"name"`
	Description *string        `json:"description"`
	Kind        ActivityKind   `json:"kind"`
	Order       int            `json:"order"`
	Levels      []LevelSummary `json:"levels"`
}
