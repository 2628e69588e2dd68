// Package sqlstore implements the project store and vote ledger on
// database/sql for PostgreSQL (lib/pq or pgx) and SQLite (modernc).
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/vncsmyrnk/projectvote/internal/core/ports"
)

// Store vends repositories bound either to the pool or to a transaction.
type Store struct {
	db      *sql.DB
	dialect Dialect
	builder sq.StatementBuilderType
}

var _ ports.UnitOfWork = (*Store)(nil)

func New(db *sql.DB, dialect Dialect) *Store {
	return &Store{
		db:      db,
		dialect: dialect,
		builder: sq.StatementBuilder.PlaceholderFormat(dialect.placeholder()),
	}
}

// Open connects to the database, tunes the pool for the dialect and verifies
// the connection.
func Open(ctx context.Context, dialect Dialect, dsn string) (*Store, error) {
	if dialect == DialectSQLite {
		dsn = sqliteDSN(dsn)
	}

	db, err := sql.Open(dialect.driverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if dialect == DialectSQLite {
		// One connection serializes writers and keeps :memory: databases alive.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxIdleTime(5 * time.Minute)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return New(db, dialect), nil
}

func sqliteDSN(dsn string) string {
	if dsn == "" {
		dsn = ":memory:"
	}
	if strings.Contains(dsn, "_pragma=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	if !strings.HasPrefix(dsn, "file:") && dsn != ":memory:" {
		dsn = "file:" + dsn
	}
	return dsn + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_time_format=sqlite"
}

func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) Dialect() Dialect {
	return s.dialect
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Projects() ports.ProjectRepository {
	return NewProjectRepository(s.db, s.builder)
}

func (s *Store) Votes() ports.VoteRepository {
	return NewVoteRepository(s.db, s.builder)
}

func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, repos ports.Repositories) error) error {
	return withTx(ctx, s.db, nil, func(ctx context.Context, tx DBTX) error {
		return fn(ctx, &txRepositories{
			projects: NewProjectRepository(tx, s.builder),
			votes:    NewVoteRepository(tx, s.builder),
		})
	})
}

type txRepositories struct {
	projects ports.ProjectRepository
	votes    ports.VoteRepository
}

func (r *txRepositories) Projects() ports.ProjectRepository { return r.projects }
func (r *txRepositories) Votes() ports.VoteRepository       { return r.votes }
