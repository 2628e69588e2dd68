package ports

import (
	"context"

	"github.com/vncsmyrnk/projectvote/internal/core/domain"
)

type VoteRepository interface {
	// SaveVote returns domain.ErrAlreadyVoted when the (identity, project)
	// pair is already recorded.
	SaveVote(ctx context.Context, vote *domain.Vote) error
	HasVoted(ctx context.Context, identity string, projectID int64) (bool, error)
	ListProjectIDsByIdentity(ctx context.Context, identity string) ([]int64, error)
	CountByProject(ctx context.Context) (map[int64]int64, error)
}

type VoteService interface {
	CastVote(ctx context.Context, token string, projectID int64) (*domain.VoteResult, error)
	MyVotes(ctx context.Context, token string) ([]int64, error)
}

type ReconcileService interface {
	Reconcile(ctx context.Context) (int, error)
}
