package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fitlogapp/fitlog-api/internal/api"
	"github.com/fitlogapp/fitlog-api/internal/infrastructure/config"
	mongodb "github.com/fitlogapp/fitlog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/fitlogapp/fitlog-api/internal/infrastructure/db/redis"
	"github.com/fitlogapp/fitlog-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title FitLog API
// @version 1.0
// @description Fitness tracking backend: users, exercises, workouts and per-workout exercise entries behind JWT cookie or bearer authentication.

// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT with the `Bearer ` prefix, e.g. "Bearer eyJhbGci..."

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{Service: "fitlog-api"})
		fallbackLog := logger.Get()
		fallbackLog.Fatal().Err(err).Msg("loading configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevOrTest(),
		Service: "fitlog-api",
	})

	// --- MongoDB ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to mongodb")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("disconnecting mongodb")
		}
	}()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("creating indexes")
	}

	// --- Redis (optional: login throttling degrades gracefully without it) ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, login rate limiting disabled")
		rdb = nil
	} else {
		defer rdb.Close()
	}

	e := api.NewRouter(cfg, db, rdb, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting http server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown")
	}
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewExerciseRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewWorkoutRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongodb.NewWorkoutExerciseRepository(db).EnsureIndexes(ctx)
}
