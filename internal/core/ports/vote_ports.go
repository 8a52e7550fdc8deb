package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
)

type VoteRepository interface {
	SaveVote(ctx context.Context, vote *domain.Vote) error
	HasVoted(ctx context.Context, userID, optionID uuid.UUID) (bool, error)
}

// VoteInput carries the poll from the request path, but admission only looks
// at the (user, option) pair.
type VoteInput struct {
	UserID   uuid.UUID
	PollID   uuid.UUID
	OptionID uuid.UUID
}

type VoteService interface {
	CastVote(ctx context.Context, input VoteInput) (*domain.Vote, error)
}
