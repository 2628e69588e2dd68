package ports

import "context"

// Repositories groups the repositories bound to one database handle.
type Repositories interface {
	Projects() ProjectRepository
	Votes() VoteRepository
}

// UnitOfWork runs fn against repositories bound to a single transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type UnitOfWork interface {
	Repositories
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
	Ping(ctx context.Context) error
}
