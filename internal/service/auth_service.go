//go:generate mockery --name AuthService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"reel_lingo_backend/internal/config"
	"reel_lingo_backend/internal/middleware"
	"reel_lingo_backend/internal/model"
	"reel_lingo_backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles registration and login. Passwords are stored as bcrypt
// hashes; successful calls return a signed JWT with sub = user id.
type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)
}

type authService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
	cfg      *config.Config
	now      func() time.Time
}

func NewAuthService(db *gorm.DB, userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{db: db, userRepo: userRepo, cfg: cfg, now: time.Now}
}

func (s *authService) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	logger := middleware.GetLogger(ctx)

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("authService.Register: hash password: %w", err)
	}

	user := &model.User{
		UserID:           uuid.New(),
		Email:            req.Email,
		PasswordHash:     string(hash),
		Name:             req.Name,
		NativeLanguage:   "en",
		LearningLanguage: "en",
	}
	if req.NativeLanguage != "" {
		user.NativeLanguage = req.NativeLanguage
	}
	if req.LearningLanguage != "" {
		user.LearningLanguage = req.LearningLanguage
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.userRepo.Create(ctx, tx, user)
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, model.NewAppError("EMAIL_EXISTS", "An account with this email already exists.", "email", model.ErrConflict)
		}
		return nil, err
	}

	token, err := s.signToken(user)
	if err != nil {
		return nil, err
	}

	logger.Info("User registered", "user_id", user.UserID.String())
	return &model.AuthResponse{Token: token, User: user.ToResponse()}, nil
}

func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	logger := middleware.GetLogger(ctx)

	user, err := s.userRepo.FindByEmail(ctx, s.db, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// Same response as a bad password; don't leak which emails exist.
			return nil, invalidCredentials()
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("Login failed: password mismatch", "user_id", user.UserID.String())
		return nil, invalidCredentials()
	}

	token, err := s.signToken(user)
	if err != nil {
		return nil, err
	}
	return &model.AuthResponse{Token: token, User: user.ToResponse()}, nil
}

func invalidCredentials() error {
	return model.NewAppError("INVALID_CREDENTIALS", "Email or password is incorrect.", "", model.ErrUnauthorized)
}

func (s *authService) signToken(user *model.User) (string, error) {
	now := s.now()
	claims := model.JWTCustomClaims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.cfg.JWT.ExpirationMinutes) * time.Minute)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		return "", fmt.Errorf("authService.signToken: %w", err)
	}
	return signed, nil
}
