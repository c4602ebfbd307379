package services

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"stayhub/apperrors"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/repositories"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Signup(input dto.SignupInput) (*models.User, error)
	Login(username string, password string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	CreateAccessToken(user *models.User) (string, error)
	GetUserFromToken(tokenString string) (*models.User, error)
	RevokeToken(tokenString string) error
}

type AuthService struct {
	repository      repositories.IAuthRepository
	tokenRepository repositories.ITokenRepository
}

func NewAuthService(repository repositories.IAuthRepository, tokenRepository repositories.ITokenRepository) IAuthService {
	return &AuthService{
		repository:      repository,
		tokenRepository: tokenRepository,
	}
}

func (s *AuthService) Signup(input dto.SignupInput) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username: input.Username,
		Email:    input.Email,
		Password: string(hashedPassword),
	}
	if err := s.repository.CreateUser(&user); err != nil {
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "UNIQUE constraint") {
			return nil, apperrors.ErrDuplicateUser
		}
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) Login(username string, password string) (*models.User, error) {
	foundUser, err := s.repository.FindByUsername(username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.Password), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return foundUser, nil
}

func (s *AuthService) GetUserByID(id uint) (*models.User, error) {
	return s.repository.FindByID(id)
}

// CreateAccessToken issues an HS256 token for the JSON API, valid for one hour.
func (s *AuthService) CreateAccessToken(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	return token.SignedString([]byte(os.Getenv("SECRET_KEY")))
}

func (s *AuthService) GetUserFromToken(tokenString string) (*models.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected method: %v", token.Header["alg"])
		}
		return []byte(os.Getenv("SECRET_KEY")), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	exp, ok := claims["exp"].(float64)
	if !ok || float64(time.Now().Unix()) > exp {
		return nil, jwt.ErrTokenExpired
	}

	revoked, err := s.tokenRepository.IsTokenRevoked(tokenString)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, apperrors.ErrTokenRevoked
	}

	username, ok := claims["username"].(string)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return s.repository.FindByUsername(username)
}

// RevokeToken blacklists the token until its own expiry and sweeps rows
// whose expiry has already passed.
func (s *AuthService) RevokeToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected method: %v", token.Header["alg"])
		}
		return []byte(os.Getenv("SECRET_KEY")), nil
	})
	if err != nil {
		return err
	}

	expiresAt := time.Now().Add(time.Hour).Unix()
	if claims, ok := token.Claims.(jwt.MapClaims); ok {
		if exp, ok := claims["exp"].(float64); ok {
			expiresAt = int64(exp)
		}
	}

	if err := s.tokenRepository.CleanExpiredTokens(); err != nil {
		return err
	}
	return s.tokenRepository.AddRevokedToken(tokenString, expiresAt)
}
