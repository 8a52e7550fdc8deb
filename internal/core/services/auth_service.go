package services

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
	"github.com/vncsmyrnk/quickpoll/internal/core/ports"
)

const maxUsernameLength = 80

type AuthService struct {
	userRepo ports.UserRepository
	hasher   ports.PasswordHasher
	issuer   ports.TokenIssuer
}

func NewAuthService(userRepo ports.UserRepository, hasher ports.PasswordHasher, issuer ports.TokenIssuer) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		issuer:   issuer,
	}
}

func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.AuthResult, error) {
	if strings.TrimSpace(username) == "" {
		return nil, domain.NewValidationError("username", "is required")
	}
	if utf8.RuneCountInString(username) > maxUsernameLength {
		return nil, domain.NewValidationError("username", "is too long")
	}
	if password == "" {
		return nil, domain.NewValidationError("password", "is required")
	}

	existing, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
	}
	// A concurrent registration of the same name surfaces here as ErrUsernameTaken.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.issue(user)
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.AuthResult, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return s.issue(user)
}

func (s *AuthService) issue(user *domain.User) (*domain.AuthResult, error) {
	token, err := s.issuer.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	return &domain.AuthResult{
		AccessToken: token,
		User:        user.Summary(),
	}, nil
}
