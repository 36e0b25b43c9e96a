package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a learner account. NativeLanguage/LearningLanguage are BCP-47-ish
// short codes ("en", "hr", ...).
type User struct {
	UserID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Email             string         `gorm:"unique;not null" json:"email"`
	PasswordHash      string         `gorm:"not null" json:"-"`
	Name              *string        `json:"name"`
	NativeLanguage    string         `gorm:"not null;default:en" json:"nativeLanguage"`
	LearningLanguage  string         `gorm:"not null;default:en" json:"learningLanguage"`
	TTSSTTModeEnabled bool           `gorm:"not null;default:false" json:"ttsSttModeEnabled"`
	CreatedAt         time.Time      `json:"-"`
	UpdatedAt         time.Time      `json:"-"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

type ContextKey string

const UserIDKey ContextKey = "userID"

// RegisterRequest is the sign-up DTO. Password rules follow the product
// minimum (6 chars), not the usual 8.
type RegisterRequest struct {
	Email            string  `json:"email" validate:"required,email"`
	Password         string  `json:"password" validate:"required,min=6,max=72"`
	Name             *string `json:"name,omitempty" validate:"omitempty,max=255"`
	NativeLanguage   string  `json:"nativeLanguage,omitempty" validate:"omitempty,max=10"`
	LearningLanguage string  `json:"learningLanguage,omitempty" validate:"omitempty,max=10"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest patches the mutable profile fields. Nil means "leave
// unchanged".
type UpdateProfileRequest struct {
	Name              *string `json:"name,omitempty" validate:"omitempty,max=255"`
	NativeLanguage    *string `json:"nativeLanguage,omitempty" validate:"omitempty,min=1,max=10"`
	LearningLanguage  *string `json:"learningLanguage,omitempty" validate:"omitempty,min=1,max=10"`
	TTSSTTModeEnabled *bool   `json:"ttsSttModeEnabled,omitempty"`
}

type UserResponse struct {
	ID                uuid.UUID `json:"id"`
	Email             string    `json:"email"`
	Name              *string   `json:"name"`
	NativeLanguage    string    `json:"nativeLanguage"`
	LearningLanguage  string    `json:"learningLanguage"`
	TTSSTTModeEnabled bool      `json:"ttsSttModeEnabled"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

/// JWTCustomClaims is the token payload: standard claims (sub = user id) plus
// the email, mirroring what the frontend expects.
type JWTCustomClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:                u.UserID,
		Email:             u.Email,
		Name:              u.Name,
		NativeLanguage:    u.NativeLanguage,
		LearningLanguage:  u.LearningLanguage,
		TTSSTTModeEnabled: u.TTSSTTModeEnabled,
	}
}
