package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
)

// setupDB starts a throwaway PostgreSQL, applies the embedded migrations and
// returns a connection. Integration tests are skipped with -short.
func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	pgContainer, err := tcpostgres.Run(ctx, "postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("user"),
		tcpostgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := Open(ctx, connStr, PoolConfig{MaxOpenConns: 5})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, Migrate(ctx, db))
	return db
}

func createUser(t *testing.T, db *sql.DB, username string) *domain.User {
	t.Helper()
	user := &domain.User{Username: username, PasswordHash: "hash"}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	return user
}

func createPoll(t *testing.T, db *sql.DB, title string, createdAt time.Time, options ...string) *domain.Poll {
	t.Helper()
	poll := &domain.Poll{
		ID:        uuid.New(),
		Title:     title,
		CreatedAt: createdAt,
	}
	for i, text := range options {
		poll.Options = append(poll.Options, domain.PollOption{
			ID:       uuid.New(),
			PollID:   poll.ID,
			Text:     text,
			Position: i,
		})
	}
	require.NoError(t, NewPollRepository(db).Save(context.Background(), poll))
	return poll
}

func castVote(t *testing.T, db *sql.DB, userID, optionID uuid.UUID) error {
	t.Helper()
	return NewVoteRepository(db).SaveVote(context.Background(), &domain.Vote{
		ID:        uuid.New(),
		UserID:    userID,
		OptionID:  optionID,
		CreatedAt: time.Now().UTC(),
	})
}
