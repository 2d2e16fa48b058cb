package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/localspot/directory-gateway/internal/api"
	"github.com/localspot/directory-gateway/internal/core/ports"
	"github.com/localspot/directory-gateway/internal/core/service"
	"github.com/localspot/directory-gateway/internal/infrastructure/credstore"
	"github.com/localspot/directory-gateway/internal/infrastructure/db/redis"
	"github.com/localspot/directory-gateway/internal/infrastructure/upstream"
	"github.com/localspot/directory-gateway/internal/pkg/config"
	"github.com/localspot/directory-gateway/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("gateway stopped")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, rdb, err := buildCredentialStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer func() {
			if cerr := rdb.Close(); cerr != nil {
				log.Error().Err(cerr).Msg("close redis")
			}
		}()
	}

	// The upstream client needs the session's bearer token and the session
	// service needs the client for login calls. The token source closes over
	// the service variable assigned right after.
	var sessions *service.SessionService
	client := upstream.NewClient(cfg.APIBaseURL, func() string {
		if sessions == nil {
			return ""
		}
		return sessions.Token()
	}, log)
	sessions = service.NewSessionService(client, store, log)

	// Restore a previous session before serving any guarded request.
	sessions.Hydrate(ctx)

	e := api.NewRouter(api.Deps{
		Sessions:  sessions,
		Directory: client,
		Redis:     rdb,
		Logger:    log,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("api_base_url", cfg.APIBaseURL).
			Str("session_store", cfg.SessionStore).
			Msg("gateway listening")
		errCh <- e.Start(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// buildCredentialStore picks the persistence backend for the session pair.
// The Redis client is returned so the caller can close it and feed the
// readiness probe; it is nil for the file backend.
func buildCredentialStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ports.CredentialStore, *goredis.Client, error) {
	switch cfg.SessionStore {
	case "redis":
		rdb, err := redis.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
		if err != nil {
			return nil, nil, err
		}
		return credstore.NewRedisStore(rdb), rdb, nil
	default:
		path := cfg.CredentialsFile
		if path == "" {
			var err error
			path, err = credstore.DefaultCredentialsPath()
			if err != nil {
				return nil, nil, err
			}
		}
		log.Debug().Str("path", path).Msg("using file credential store")
		return credstore.NewFileStore(path), nil, nil
	}
}
