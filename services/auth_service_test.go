package services

import (
	"testing"
	"time"

	"stayhub/apperrors"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/repositories"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Listing{}, &models.Review{}, &models.RevokedToken{}))
	return db
}

func newTestAuthService(t *testing.T) IAuthService {
	t.Helper()
	db := setupTestDB(t)
	return NewAuthService(repositories.NewAuthRepository(db), repositories.NewTokenRepository(db))
}

func TestSignupAndLogin(t *testing.T) {
	service := newTestAuthService(t)

	user, err := service.Signup(dto.SignupInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "password123", user.Password, "password must be stored hashed")

	loggedIn, err := service.Login("alice", "password123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	service := newTestAuthService(t)

	_, err := service.Signup(dto.SignupInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = service.Login("alice", "wrongpassword")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	service := newTestAuthService(t)

	_, err := service.Login("nobody", "password123")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestSignupDuplicateUsername(t *testing.T) {
	service := newTestAuthService(t)

	input := dto.SignupInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	}
	_, err := service.Signup(input)
	require.NoError(t, err)

	input.Email = "other@example.com"
	_, err = service.Signup(input)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateUser)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	service := newTestAuthService(t)

	user, err := service.Signup(dto.SignupInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	tokenString, err := service.CreateAccessToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	fromToken, err := service.GetUserFromToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, user.Username, fromToken.Username)
}

func TestRevokedTokenRejected(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	service := newTestAuthService(t)

	user, err := service.Signup(dto.SignupInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	tokenString, err := service.CreateAccessToken(user)
	require.NoError(t, err)

	require.NoError(t, service.RevokeToken(tokenString))

	_, err = service.GetUserFromToken(tokenString)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
}

func TestExpiredTokenRejected(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	service := newTestAuthService(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      uint(1),
		"username": "alice",
		"role":     "user",
		"exp":      time.Now().Add(-time.Minute).Unix(),
	})
	tokenString, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = service.GetUserFromToken(tokenString)
	assert.Error(t, err)
}

func TestRevokeTokenTwiceSucceeds(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	service := newTestAuthService(t)

	user, err := service.Signup(dto.SignupInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	tokenString, err := service.CreateAccessToken(user)
	require.NoError(t, err)

	require.NoError(t, service.RevokeToken(tokenString))
	require.NoError(t, service.RevokeToken(tokenString), "revoking again is a no-op")

	_, err = service.GetUserFromToken(tokenString)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
}
