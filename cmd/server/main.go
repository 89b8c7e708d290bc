package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/photosbyzee/studio-portal/internal/api"
	"github.com/photosbyzee/studio-portal/internal/core/service"
	"github.com/photosbyzee/studio-portal/internal/infrastructure/config"
	"github.com/photosbyzee/studio-portal/internal/infrastructure/db/postgres"
	"github.com/photosbyzee/studio-portal/internal/infrastructure/db/redis"
	"github.com/photosbyzee/studio-portal/internal/infrastructure/mail"
	"github.com/photosbyzee/studio-portal/internal/infrastructure/queue"
	"github.com/photosbyzee/studio-portal/pkg/logger"
	"github.com/photosbyzee/studio-portal/pkg/token"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	tokens, err := token.NewManager(cfg.JWTSecret)
	if err != nil {
		log.Fatal().Err(err).Msg("token manager init failed")
	}

	db, err := postgres.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connect failed")
	}

	rdb, err := redis.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}

	// Page views flow handler → dispatcher → service → postgres, with redis
	// suppressing repeat views.
	pageViews := service.NewPageViewService(
		postgres.NewPageViewRepository(db),
		redis.NewViewDedup(rdb),
		log,
	)
	dispatcher := queue.NewDispatcher(cfg.PageViewWorkers, pageViews, log)

	workerCtx, stopWorkers := context.WithCancel(ctx)
	dispatcher.Start(workerCtx)

	e := api.NewRouter(api.RouterDeps{
		DB:            db,
		Redis:         rdb,
		Tokens:        tokens,
		Views:         dispatcher,
		Contact:       mail.NewMailer(cfg.SMTP, log),
		SecureCookies: cfg.IsProduction(),
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	waitForShutdown(e, log, stopWorkers, rdb.Close)
}

func waitForShutdown(e *echo.Echo, log zerolog.Logger, stopWorkers func(), closeRedis func() error) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}

	stopWorkers()
	if err := closeRedis(); err != nil {
		log.Error().Err(err).Msg("redis close error")
	}

	log.Info().Msg("server exited cleanly")
}
