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

	"github.com/hongminglow/jobtracker-be/internal/config"
	"github.com/hongminglow/jobtracker-be/internal/http/handlers"
	"github.com/hongminglow/jobtracker-be/internal/logging"
	"github.com/hongminglow/jobtracker-be/internal/server"
	"github.com/hongminglow/jobtracker-be/internal/storage/memory"
	"github.com/hongminglow/jobtracker-be/internal/storage/postgres"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.New(os.Stderr, false).Error(context.Background(), "load config", "err", err)
		os.Exit(1)
	}

	log := logging.New(os.Stdout, cfg.IsProduction())
	ctx := context.Background()
	if envErr != nil {
		log.Debug(ctx, "no .env file found; relying on existing environment")
	}

	deps := server.Deps{Log: log, ErrorLog: log.Slog()}
	switch cfg.StorageDriver {
	case config.DriverMemory:
		log.Warn(ctx, "using in-memory storage; data is lost on restart")
		deps.Store = memory.NewStore()
	default:
		store, err := postgres.NewStore(ctx, cfg.DatabaseURL, cfg.DBConnectTimeout)
		if err != nil {
			log.Error(ctx, "init database", "err", err)
			os.Exit(1)
		}
		defer store.Close()
		deps.Store = store
		deps.Checkers = []handlers.Checker{store}
	}

	srv := server.New(cfg, deps)

	go func() {
		log.Info(ctx, "job tracker backend listening", "addr", cfg.HTTPAddress(), "env", cfg.Env, "storage", cfg.StorageDriver)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "http server error", "err", err)
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Error(ctx, "graceful shutdown error", "err", err)
	}
	log.Info(ctx, "server stopped")
}
