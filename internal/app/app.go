package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/frolovkirill/pdf2office/internal/auth"
	"github.com/frolovkirill/pdf2office/internal/config"
	v1 "github.com/frolovkirill/pdf2office/internal/controller/http/v1"
	"github.com/frolovkirill/pdf2office/internal/converter"
	"github.com/frolovkirill/pdf2office/internal/repository/postgresql"
	"github.com/frolovkirill/pdf2office/internal/storage"
	"github.com/frolovkirill/pdf2office/internal/workflow"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

func (a *App) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting app",
		slog.String("storage_backend", a.cfg.Storage.Backend),
		slog.Duration("convert_timeout", a.cfg.App.ConvertTimeout),
	)

	a.log.InfoContext(ctx, "establishing postgresql connection",
		slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
		slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
		slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
	)

	pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}
	defer pool.Close()

	blobs, err := a.newBlobStore(ctx)
	if err != nil {
		return fmt.Errorf("failed to create blob store: %w", err)
	}

	conversionsRepository := postgresql.NewConversionsRepository(pool)
	usersRepository := postgresql.NewUsersRepository(pool)

	coordinator := workflow.NewCoordinator(
		a.log,
		conversionsRepository,
		blobs,
		converter.NewStub(a.cfg.App.ConvertDelay),
		a.cfg.App.ConvertTimeout,
	)

	sessions := auth.NewSessionStore(a.log, a.cfg.App.SessionTTL)
	authService := auth.NewService(a.log, usersRepository, sessions)

	return a.serve(ctx, coordinator, sessions, authService)
}

func (a *App) newBlobStore(ctx context.Context) (workflow.BlobStore, error) {
	switch a.cfg.Storage.Backend {
	case config.StorageGCS:
		return storage.NewGCS(ctx, a.cfg.Storage.GCSBucket)
	case config.StorageFilesystem:
		return storage.NewFilesystem(a.cfg.Storage.Directory), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", a.cfg.Storage.Backend)
	}
}

func (a *App) serve(
	ctx context.Context,
	coordinator *workflow.Coordinator,
	sessions *auth.SessionStore,
	authService *auth.Service,
) error {
	server := v1.NewServer(a.cfg.HTTP, coordinator, authService)

	erg, ctx := errgroup.WithContext(ctx)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "session pruner started")
		return sessions.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}

		// let in-flight conversions reach a terminal state
		coordinator.Wait()

		return nil
	})

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "app stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "app stopped gracefully")

	return nil
}
