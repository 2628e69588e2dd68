package main

import (
	"context"
	"errors"
	"log/slog"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vncsmyrnk/projectvote/internal/adapters/handler/http"
	"github.com/vncsmyrnk/projectvote/internal/app"
	"github.com/vncsmyrnk/projectvote/internal/config"
	"github.com/vncsmyrnk/projectvote/internal/core/services"
	"github.com/vncsmyrnk/projectvote/internal/logging"
)

func main() {
	cfg, err := config.Load("server", os.Args[1:])
	if err != nil {
		slog.Error("error parsing configuration", "error", err)
		os.Exit(1)
	}

	logger, err := app.NewLogger(cfg)
	if err != nil {
		slog.Error("error configuring logger", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := app.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	applied, err := store.Migrate(ctx)
	if err != nil {
		return err
	}
	logger.Info("database schema ready", "driver", cfg.DatabaseDriver, "applied", applied)

	log := logging.NewSlogLogger(logger)

	projectSvc := services.NewProjectService(store.Projects())
	voteSvc := services.NewVoteService(services.NewIdentityProvider(cfg.IdentityTTL), store)

	cookie := http.CookieOptions{
		Name:     cfg.IdentityCookie,
		Secure:   cfg.CookieSecure,
		SameSite: stdhttp.SameSiteLaxMode,
	}
	projectHandler := http.NewProjectHandler(projectSvc, log.With("component", "projects"))
	voteHandler := http.NewVoteHandler(voteSvc, cookie, log.With("component", "votes"))

	handler := http.NewHandler(projectHandler, voteHandler, store, logger)
	server := &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	logger.Info("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
