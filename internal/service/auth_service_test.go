package service

import (
	"context"
	"testing"
	"time"

	"reel_lingo_backend/internal/config"
	"reel_lingo_backend/internal/model"
	repomocks "reel_lingo_backend/internal/repository/mocks"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testAuthConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret"
	cfg.JWT.ExpirationMinutes = 60
	return cfg
}

func parseTestToken(t *testing.T, tokenString string) *model.JWTCustomClaims {
	t.Helper()
	claims := &model.JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)
	return claims
}

func Test_authService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("hashes the password and returns a signed token", func(t *testing.T) {
		userRepo := new(repomocks.UserRepository)
		svc := NewAuthService(setupTestDB(t), userRepo, testAuthConfig())

		var created *model.User
		userRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.User")).
			Run(func(args mock.Arguments) {
				created = args.Get(2).(*model.User)
			}).Return(nil).Once()

		resp, err := svc.Register(ctx, &model.RegisterRequest{
			Email:            "ana@example.com",
			Password:         "lozinka123",
			LearningLanguage: "hr",
		})
		require.NoError(t, err)
		require.NotNil(t, created)

		assert.Equal(t, "ana@example.com", created.Email)
		assert.NotEqual(t, "lozinka123", created.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("lozinka123")))
		assert.Equal(t, "en", created.NativeLanguage)
		assert.Equal(t, "hr", created.LearningLanguage)

		claims := parseTestToken(t, resp.Token)
		assert.Equal(t, created.UserID.String(), claims.Subject)
		assert.Equal(t, "ana@example.com", claims.Email)
		userRepo.AssertExpectations(t)
	})

	t.Run("duplicate email maps to EMAIL_EXISTS", func(t *testing.T) {
		userRepo := new(repomocks.UserRepository)
		svc := NewAuthService(setupTestDB(t), userRepo, testAuthConfig())

		userRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.User")).
			Return(model.ErrConflict).Once()

		_, err := svc.Register(ctx, &model.RegisterRequest{Email: "ana@example.com", Password: "lozinka123"})
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrConflict)

		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "EMAIL_EXISTS", appErr.Detail.Code)
		userRepo.AssertExpectations(t)
	})
}

func Test_authService_Login(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("lozinka123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &model.User{
		UserID:       uuid.New(),
		Email:        "ana@example.com",
		PasswordHash: string(hash),
	}

	t.Run("valid credentials return a token with sub and expiry", func(t *testing.T) {
		userRepo := new(repomocks.UserRepository)
		svc := NewAuthService(setupTestDB(t), userRepo, testAuthConfig())
		fixedNow := time.Now().Truncate(time.Second)
		svc.(*authService).now = func() time.Time { return fixedNow }

		userRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), "ana@example.com").Return(user, nil).Once()

		resp, err := svc.Login(ctx, &model.LoginRequest{Email: "ana@example.com", Password: "lozinka123"})
		require.NoError(t, err)

		claims := parseTestToken(t, resp.Token)
		assert.Equal(t, user.UserID.String(), claims.Subject)
		assert.Equal(t, fixedNow.Add(60*time.Minute).Unix(), claims.ExpiresAt.Unix())
		userRepo.AssertExpectations(t)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		userRepo := new(repomocks.UserRepository)
		svc := NewAuthService(setupTestDB(t), userRepo, testAuthConfig())

		userRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), "ana@example.com").Return(user, nil).Once()

		_, err := svc.Login(ctx, &model.LoginRequest{Email: "ana@example.com", Password: "pogresna"})
		assert.ErrorIs(t, err, model.ErrUnauthorized)
		userRepo.AssertExpectations(t)
	})

	t.Run("unknown email gets the same response as a bad password", func(t *testing.T) {
		userRepo := new(repomocks.UserRepository)
		svc := NewAuthService(setupTestDB(t), userRepo, testAuthConfig())

		userRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), "nitko@example.com").Return(nil, model.ErrNotFound).Once()

		_, err := svc.Login(ctx, &model.LoginRequest{Email: "nitko@example.com", Password: "whatever"})
		assert.ErrorIs(t, err, model.ErrUnauthorized)

		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "INVALID_CREDENTIALS", appErr.Detail.Code)
		userRepo.AssertExpectations(t)
	})
}
