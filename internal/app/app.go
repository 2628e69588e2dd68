// Package app wires configuration, logging and the SQL store shared by the
// binaries under cmd/.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/vncsmyrnk/projectvote/internal/adapters/repository/sqlstore"
	"github.com/vncsmyrnk/projectvote/internal/config"
	"github.com/vncsmyrnk/projectvote/internal/logging"
)

func NewLogger(cfg config.Config) (*slog.Logger, error) {
	return logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
}

// OpenStore opens the configured database, creating the parent directory of
// a SQLite file when needed.
func OpenStore(ctx context.Context, cfg config.Config) (*sqlstore.Store, error) {
	dialect, err := sqlstore.ParseDialect(cfg.DatabaseDriver)
	if err != nil {
		return nil, err
	}

	if dialect == sqlstore.DialectSQLite && isSQLiteFile(cfg.DatabaseURL) {
		path := strings.TrimPrefix(cfg.DatabaseURL, "file:")
		if i := strings.IndexByte(path, '?'); i >= 0 {
			path = path[:i]
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	return sqlstore.Open(ctx, dialect, cfg.DatabaseURL)
}

func isSQLiteFile(dsn string) bool {
	return dsn != "" && !strings.Contains(dsn, ":memory:") && !strings.Contains(dsn, "mode=memory")
}
