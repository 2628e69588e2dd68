package sqlstore

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/pressly/goose/v3"
)

// Dialect selects the database/sql driver and SQL flavour.
type Dialect string

const (
	DialectPostgres Dialect = "postgres" // github.com/lib/pq
	DialectPGX      Dialect = "pgx"      // github.com/jackc/pgx/v5/stdlib
	DialectSQLite   Dialect = "sqlite"   // modernc.org/sqlite
)

func ParseDialect(s string) (Dialect, error) {
	switch d := Dialect(s); d {
	case DialectPostgres, DialectPGX, DialectSQLite:
		return d, nil
	case "postgresql":
		return DialectPostgres, nil
	case "sqlite3":
		return DialectSQLite, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", s)
	}
}

func (d Dialect) driverName() string {
	return string(d)
}

func (d Dialect) placeholder() sq.PlaceholderFormat {
	if d == DialectSQLite {
		return sq.Question
	}
	return sq.Dollar
}

func (d Dialect) gooseDialect() goose.Dialect {
	if d == DialectSQLite {
		return goose.DialectSQLite3
	}
	return goose.DialectPostgres
}

func (d Dialect) migrationsDir() string {
	if d == DialectSQLite {
		return "migrations/sqlite"
	}
	return "migrations/postgres"
}
