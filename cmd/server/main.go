package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/englishlessons/classroom-api/internal/api"
	"github.com/englishlessons/classroom-api/internal/infrastructure/config"
	mongodb "github.com/englishlessons/classroom-api/internal/infrastructure/db/mongo"
	redisdb "github.com/englishlessons/classroom-api/internal/infrastructure/db/redis"
	"github.com/englishlessons/classroom-api/internal/infrastructure/seed"
	"github.com/englishlessons/classroom-api/pkg/logger"
)

func main() {
	// .env is a local-development convenience; absence is not an error.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fallback := logger.New(logger.Options{})
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.Production(),
	})

	if cfg.Production() {
		if cfg.JWTSecret == "dev-signing-secret" {
			log.Fatal().Msg("JWT_SECRET must be overridden in production")
		}
		if cfg.TeacherPassword == "Teach2025" {
			log.Warn().Msg("TEACHER_PASSWORD still has its default value")
		}
	}

	// Startup connectivity is bounded: either mongo answers within the retry
	// budget or the process exits.
	client, db, err := mongodb.ConnectWithRetry(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Attempts: cfg.Mongo.ConnectAttempts,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongo")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongo")

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}
	if err := seed.Run(ctx, db, log); err != nil {
		log.Fatal().Err(err).Msg("failed to seed data")
	}

	// Redis only backs the directory cache; the service runs without it.
	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, directory cache disabled")
		rdb = nil
	} else {
		defer rdb.Close()
	}

	e := api.NewRouter(db, rdb, cfg, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("server running")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewDirectoryRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongodb.NewSubmissionRepository(db).EnsureIndexes(ctx)
}
