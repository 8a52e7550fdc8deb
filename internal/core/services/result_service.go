package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
	"github.com/vncsmyrnk/quickpoll/internal/core/ports"
)

type resultService struct {
	pollRepo   ports.PollRepository
	resultRepo ports.ResultRepository
}

func NewResultService(pollRepo ports.PollRepository, resultRepo ports.ResultRepository) ports.ResultService {
	return &resultService{
		pollRepo:   pollRepo,
		resultRepo: resultRepo,
	}
}

// GetResults counts votes per option of the poll, in option creation order.
// Every call hits the store.
func (s *resultService) GetResults(ctx context.Context, id string) ([]domain.OptionResult, error) {
	pollID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.NewValidationError("poll_id", "invalid poll id")
	}

	exists, err := s.pollRepo.Exists(ctx, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to check poll: %w", err)
	}
	if !exists {
		return nil, domain.ErrPollNotFound
	}

	results, err := s.resultRepo.CountVotesByOption(ctx, pollID)
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []domain.OptionResult{}
	}
	return results, nil
}
