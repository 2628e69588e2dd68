package ports

import (
	"context"

	"github.com/vncsmyrnk/projectvote/internal/core/domain"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	ListByVotes(ctx context.Context) ([]*domain.Project, error)
	IncrementVotes(ctx context.Context, id int64) error
	// RecountVotes sets the counter to the ledger count in a single statement.
	RecountVotes(ctx context.Context, id int64) error
}

type CreateProjectInput struct {
	Title       string
	Description string
	Link        string
	Author      string
}

type ProjectService interface {
	Create(ctx context.Context, input CreateProjectInput) (*domain.Project, error)
	Get(ctx context.Context, id int64) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Results(ctx context.Context) ([]*domain.Project, error)
	Stats(ctx context.Context) (*domain.Stats, error)
}
