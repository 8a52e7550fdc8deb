package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
)

type UserService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.UserSummary, error)
}
