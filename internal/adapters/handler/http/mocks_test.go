package http

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
	"github.com/vncsmyrnk/quickpoll/internal/core/ports"
)

type mockPollService struct{ mock.Mock }

func (m *mockPollService) Create(ctx context.Context, input ports.CreatePollInput) (*domain.Poll, error) {
	args := m.Called(ctx, input)
	poll, _ := args.Get(0).(*domain.Poll)
	return poll, args.Error(1)
}

func (m *mockPollService) GetPoll(ctx context.Context, id string) (*domain.Poll, error) {
	args := m.Called(ctx, id)
	poll, _ := args.Get(0).(*domain.Poll)
	return poll, args.Error(1)
}

func (m *mockPollService) ListPolls(ctx context.Context) ([]*domain.Poll, error) {
	args := m.Called(ctx)
	polls, _ := args.Get(0).([]*domain.Poll)
	return polls, args.Error(1)
}

type mockResultService struct{ mock.Mock }

func (m *mockResultService) GetResults(ctx context.Context, pollID string) ([]domain.OptionResult, error) {
	args := m.Called(ctx, pollID)
	results, _ := args.Get(0).([]domain.OptionResult)
	return results, args.Error(1)
}

type mockVoteService struct{ mock.Mock }

func (m *mockVoteService) CastVote(ctx context.Context, input ports.VoteInput) (*domain.Vote, error) {
	args := m.Called(ctx, input)
	vote, _ := args.Get(0).(*domain.Vote)
	return vote, args.Error(1)
}

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) Register(ctx context.Context, username, password string) (*domain.AuthResult, error) {
	args := m.Called(ctx, username, password)
	res, _ := args.Get(0).(*domain.AuthResult)
	return res, args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (*domain.AuthResult, error) {
	args := m.Called(ctx, username, password)
	res, _ := args.Get(0).(*domain.AuthResult)
	return res, args.Error(1)
}

type mockUserService struct{ mock.Mock }

func (m *mockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.UserSummary, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*domain.UserSummary)
	return user, args.Error(1)
}

type stubPinger struct{ err error }

func (p stubPinger) PingContext(context.Context) error { return p.err }
