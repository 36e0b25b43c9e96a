// internal/model/progress.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// CompletionState is the derived per-(user, level) state. Transitions are
// monotonic: not_started -> in_progress -> completed, never backwards.
type CompletionState string

const (
	StateNotStarted CompletionState = "not_started"
	StateInProgress CompletionState = "in_progress"
	StateCompleted  CompletionState = "completed"
)

// UserLevelProgress is the single completion record per (user, category,
// level), enforced by the composite unique index. Created lazily on first
// completion; CompletedAt is stamped once and never refreshed.
type UserLevelProgress struct {
	ProgressID  uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index:idx_user_category_level,unique" json:"-"`
	CategoryID  uuid.UUID  `gorm:"type:uuid;not null;index:idx_user_category_level,unique" json:"categoryId"`
	LevelID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_user_category_level,unique" json:"levelId"`
	Completed   bool       `gorm:"not null;default:false" json:"completed"`
	CompletedAt *time.Time `json:"completedAt"`
	CreatedAt   time.Time  `json:"-"`

	Level    *Level    `gorm:"foreignKey:LevelID;references:LevelID" json:"-"`
	Category *Category `gorm:"foreignKey:CategoryID;references:CategoryID" json:"-"`
}

func (UserLevelProgress) TableName() string {
	return "user_level_progress"
}

// LevelStatus is one row of the unlock listing for a category. Unlocked is
// display-only and derived from the previous level's completion.
type LevelStatus struct {
	ID          uuid.UUID  `json:"id"`
	Order       int        `json:"order"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	Unlocked    bool       `json:"unlocked"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt"`
}

type ProgressResponse struct {
	ID          uuid.UUID  `json:"id"`
	CategoryID  uuid.UUID  `json:"categoryId"`
	LevelID     uuid.UUID  `json:"levelId"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt"`
	Level       *LevelRef  `json:"level,omitempty"`
	Category    *CatRef    `json:"category,omitempty"`
}

type LevelRef struct {
	ID    uuid.UUID `json:"id"`
	Order int       `json:"order"`
	Name  string    `json:"name"`
}

type CatRef struct {
	ID   uuid.UUID `json:"id"`
	Slug string    `json:"slug"`
	Name string    `json:"name"`
}
