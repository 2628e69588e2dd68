package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type HealthChecker interface {
	Ping(ctx context.Context) error
}

func NewHandler(projectHandler *ProjectHandler, voteHandler *VoteHandler, health HealthChecker, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  slog.NewLogLogger(logger.Handler(), slog.LevelInfo),
		NoColor: true,
	}))
	r.Use(middleware.Recoverer)

	r.Get("/", projectHandler.List)
	r.Get("/upload", projectHandler.UploadForm)
	r.Post("/upload", projectHandler.Upload)
	r.Get("/results", projectHandler.Results)
	r.Get("/stats", projectHandler.Stats)
	r.Get("/projects/{projectID}", projectHandler.GetProject)

	r.Post("/vote/{projectID}", voteHandler.Vote)
	r.Get("/votes/mine", voteHandler.MyVotes)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := health.Ping(r.Context()); err != nil {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("ok"))
	})

	return r
}
