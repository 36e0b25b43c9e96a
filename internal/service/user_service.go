//go:generate mockery --name UserService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"

	"reel_lingo_backend/internal/model"
	"reel_lingo_backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService reads and patches the learner profile.
type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*model.UserResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *model.UpdateProfileRequest) (*model.UserResponse, error)
}

type userService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
}

func NewUserService(db *gorm.DB, userRepo repository.UserRepository) UserService {
	return &userService{db: db, userRepo: userRepo}
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}
	resp := user.ToResponse()
	return &resp, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *model.UpdateProfileRequest) (*model.UserResponse, error) {
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.NativeLanguage != nil {
		updates["native_language"] = *req.NativeLanguage
	}
	if req.LearningLanguage != nil {
		updates["learning_language"] = *req.LearningLanguage
	}
	if req.TTSSTTModeEnabled != nil {
		updates["tts_stt_mode_enabled"] = *req.TTSSTTModeEnabled
	}

	if len(updates) > 0 {
		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return s.userRepo.Update(ctx, tx, userID, updates)
		})
		if err != nil {
			return nil, err
		}
	}

	return s.GetProfile(ctx, userID)
}
