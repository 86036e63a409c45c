package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"olms-backend/internal/domain"
	"olms-backend/internal/logger"
	"olms-backend/internal/repository"
	"olms-backend/internal/security"
)

type authService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, repository.ErrNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, fmt.Errorf("failed to load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if user.Status != domain.UserStatusActive {
		logger.WarnContext(ctx, "Login attempt for inactive user", "user_id", user.ID)
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return token, user, nil
}

// Authenticate resolves a bearer token to an active user.
func (s *authService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUnauthenticated
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user.Status != domain.UserStatusActive {
		return nil, ErrUnauthenticated
	}
	return user, nil
}
