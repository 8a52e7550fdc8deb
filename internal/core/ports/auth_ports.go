package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
)

// TokenIssuer mints and validates bearer tokens bound to a user id.
type TokenIssuer interface {
	Issue(userID uuid.UUID) (string, error)
	Verify(token string) (uuid.UUID, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.AuthResult, error)
	Login(ctx context.Context, username, password string) (*domain.AuthResult, error)
}
