package main

import (
	"context"
	"errors"
	stdhttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vncsmyrnk/quickpoll/internal/adapters/handler/http"
	"github.com/vncsmyrnk/quickpoll/internal/adapters/password"
	"github.com/vncsmyrnk/quickpoll/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/quickpoll/internal/adapters/token"
	"github.com/vncsmyrnk/quickpoll/internal/config"
	"github.com/vncsmyrnk/quickpoll/internal/core/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("load config", zap.Error(err))
	}

	logger, err := newLogger(cfg.Log.Level)
	if err != nil {
		zap.NewExample().Fatal("build logger", zap.Error(err))
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(ctx, cfg.Database.DSN(), postgres.PoolConfig{
		MaxOpenConns:    25,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
	})
	if err != nil {
		logger.Fatal("database", zap.Error(err))
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, db); err != nil {
			logger.Fatal("migrate", zap.Error(err))
		}
	}

	pollRepo := postgres.NewPollRepository(db)
	voteRepo := postgres.NewVoteRepository(db)
	resultRepo := postgres.NewResultRepository(db)
	userRepo := postgres.NewUserRepository(db)

	issuer := token.NewJWTIssuer(cfg.JWT.Secret, cfg.JWT.TTL())
	hasher := password.NewBcryptHasher(password.DefaultCost)

	pollSvc := services.NewPollService(pollRepo)
	voteSvc := services.NewVoteService(voteRepo)
	resultSvc := services.NewResultService(pollRepo, resultRepo)
	authSvc := services.NewAuthService(userRepo, hasher, issuer)
	userSvc := services.NewUserService(userRepo)

	handler := http.NewHandler(http.Handlers{
		Poll:   http.NewPollHandler(pollSvc, resultSvc, logger),
		Vote:   http.NewVoteHandler(voteSvc, logger),
		Auth:   http.NewAuthHandler(authSvc, logger),
		User:   http.NewUserHandler(userSvc, logger),
		Health: http.NewHealthHandler(db, logger),
	}, issuer, cfg.Server.CORSAllowedOrigins, logger)

	server := &stdhttp.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger(level string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if lvl, err := zap.ParseAtomicLevel(level); err == nil {
		config.Level = lvl
	}
	return config.Build()
}
