package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
)

type mockPollRepository struct {
	mock.Mock
}

func (m *mockPollRepository) Save(ctx context.Context, poll *domain.Poll) error {
	return m.Called(ctx, poll).Error(0)
}

func (m *mockPollRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Poll, error) {
	args := m.Called(ctx, id)
	poll, _ := args.Get(0).(*domain.Poll)
	return poll, args.Error(1)
}

func (m *mockPollRepository) GetAll(ctx context.Context) ([]*domain.Poll, error) {
	args := m.Called(ctx)
	polls, _ := args.Get(0).([]*domain.Poll)
	return polls, args.Error(1)
}

func (m *mockPollRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockVoteRepository struct {
	mock.Mock
}

func (m *mockVoteRepository) SaveVote(ctx context.Context, vote *domain.Vote) error {
	return m.Called(ctx, vote).Error(0)
}

func (m *mockVoteRepository) HasVoted(ctx context.Context, userID, optionID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, optionID)
	return args.Bool(0), args.Error(1)
}

type mockResultRepository struct {
	mock.Mock
}

func (m *mockResultRepository) CountVotesByOption(ctx context.Context, pollID uuid.UUID) ([]domain.OptionResult, error) {
	args := m.Called(ctx, pollID)
	results, _ := args.Get(0).([]domain.OptionResult)
	return results, args.Error(1)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

type mockHasher struct {
	mock.Mock
}

func (m *mockHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *mockHasher) Compare(hash, password string) error {
	return m.Called(hash, password).Error(0)
}

type mockIssuer struct {
	mock.Mock
}

func (m *mockIssuer) Issue(userID uuid.UUID) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *mockIssuer) Verify(token string) (uuid.UUID, error) {
	args := m.Called(token)
	id, _ := args.Get(0).(uuid.UUID)
	return id, args.Error(1)
}
