package integration

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	handler "github.com/vncsmyrnk/quickpoll/internal/adapters/handler/http"
	"github.com/vncsmyrnk/quickpoll/internal/adapters/password"
	repo "github.com/vncsmyrnk/quickpoll/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/quickpoll/internal/adapters/token"
	"github.com/vncsmyrnk/quickpoll/internal/core/services"
)

// setupServer wires the whole application against a throwaway PostgreSQL
// and serves it with httptest.
func setupServer(t *testing.T) *httptest.Server {
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

	db, err := repo.Open(ctx, connStr, repo.PoolConfig{})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, repo.Migrate(ctx, db))

	logger := zap.NewNop()
	pollRepo := repo.NewPollRepository(db)
	userRepo := repo.NewUserRepository(db)
	issuer := token.NewJWTIssuer("integration-secret", time.Hour)

	router := handler.NewHandler(handler.Handlers{
		Poll: handler.NewPollHandler(
			services.NewPollService(pollRepo),
			services.NewResultService(pollRepo, repo.NewResultRepository(db)),
			logger,
		),
		Vote:   handler.NewVoteHandler(services.NewVoteService(repo.NewVoteRepository(db)), logger),
		Auth:   handler.NewAuthHandler(services.NewAuthService(userRepo, password.NewBcryptHasher(password.DefaultCost), issuer), logger),
		User:   handler.NewUserHandler(services.NewUserService(userRepo), logger),
		Health: handler.NewHealthHandler(db, logger),
	}, issuer, []string{"*"}, logger)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}
