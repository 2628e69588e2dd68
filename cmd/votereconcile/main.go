package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/vncsmyrnk/projectvote/internal/app"
	"github.com/vncsmyrnk/projectvote/internal/config"
	"github.com/vncsmyrnk/projectvote/internal/core/services"
	"github.com/vncsmyrnk/projectvote/internal/flagx"
)

func main() {
	jobArgs, configArgs := flagx.Split(os.Args[1:], []string{"-timeout"})

	fs := flag.NewFlagSet("votereconcile", flag.ExitOnError)
	timeout := fs.Duration("timeout", 5*time.Minute, "Job timeout")
	_ = fs.Parse(jobArgs)

	cfg, err := config.Load("votereconcile", configArgs)
	if err != nil {
		slog.Error("error parsing configuration", "error", err)
		os.Exit(1)
	}

	logger, err := app.NewLogger(cfg)
	if err != nil {
		slog.Error("error configuring logger", "error", err)
		os.Exit(1)
	}

	// Use a timeout for the job execution to prevent it from hanging indefinitely
	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	store, err := app.OpenStore(ctx, cfg)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	reconciler := services.NewReconcileService(store)

	logger.Info("starting vote reconciliation job")

	fixed, err := reconciler.Reconcile(ctx)
	if err != nil {
		logger.Error("error reconciling votes", "error", err, "fixed", fixed)
		os.Exit(1)
	}

	logger.Info("vote reconciliation completed", "fixed", fixed)
}
