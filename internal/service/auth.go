package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/Dan9191/finance-sage/internal/config"
	"github.com/Dan9191/finance-sage/internal/models"
	"github.com/Dan9191/finance-sage/internal/repository"
)

// AuthService handles accounts and tokens
type AuthService struct {
	users  repository.UserStore
	log    *logrus.Logger
	config *config.Config
	now    func() time.Time
}

// NewAuthService initializes a new auth service
func NewAuthService(users repository.UserStore, log *logrus.Logger, cfg *config.Config) *AuthService {
	return &AuthService{users: users, log: log, config: cfg, now: time.Now}
}

// SignUp creates a new user with hashed password
func (s *AuthService) SignUp(ctx context.Context, in models.SignUpInput) (*models.User, error) {
	in.Email = strings.TrimSpace(in.Email)
	in.Username = strings.TrimSpace(in.Username)
	if err := in.Validate(); err != nil {
		return nil, invalid(err.Error())
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    s.now().UTC(),
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, conflict("Email or username already registered")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.log.Infof("User registered: %s", user.Email)
	return user, nil
}

// SignIn authenticates a user and returns a JWT token
func (s *AuthService) SignIn(ctx context.Context, in models.SignInInput) (string, error) {
	user, err := s.users.FindUserByEmail(ctx, strings.TrimSpace(in.Email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.GenerateToken(user.ID)
	if err != nil {
		return "", err
	}

	s.log.Infof("User signed in: %s", user.Email)
	return token, nil
}

// GenerateToken issues an HS256 token whose subject is the user ID
func (s *AuthService) GenerateToken(userID uuid.UUID) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenExpiry)),
	})
	tokenString, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ParseToken validates a token and returns the user ID it was issued to
func (s *AuthService) ParseToken(tokenString string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidCredentials
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidCredentials
	}
	return userID, nil
}
