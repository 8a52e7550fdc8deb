package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
)

type ResultRepository interface {
	CountVotesByOption(ctx context.Context, pollID uuid.UUID) ([]domain.OptionResult, error)
}

type ResultService interface {
	GetResults(ctx context.Context, pollID string) ([]domain.OptionResult, error)
}
