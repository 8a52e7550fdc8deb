package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
	"github.com/vncsmyrnk/quickpoll/internal/core/ports"
)

type voteService struct {
	voteRepo ports.VoteRepository
}

func NewVoteService(voteRepo ports.VoteRepository) ports.VoteService {
	return &voteService{
		voteRepo: voteRepo,
	}
}

// CastVote admits at most one vote per (user, option). The poll id is not
// consulted: an option from another poll is accepted as-is.
func (s *voteService) CastVote(ctx context.Context, input ports.VoteInput) (*domain.Vote, error) {
	hasVoted, err := s.voteRepo.HasVoted(ctx, input.UserID, input.OptionID)
	if err != nil {
		return nil, err
	}
	if hasVoted {
		return nil, domain.ErrDuplicateVote
	}

	vote := &domain.Vote{
		ID:        uuid.New(),
		UserID:    input.UserID,
		OptionID:  input.OptionID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.voteRepo.SaveVote(ctx, vote); err != nil {
		return nil, err
	}

	return vote, nil
}
