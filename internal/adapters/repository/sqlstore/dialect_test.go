package sqlstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDialect(t *testing.T) {
	tests := []struct {
		in   string
		want Dialect
	}{
		{"postgres", DialectPostgres},
		{"postgresql", DialectPostgres},
		{"pgx", DialectPGX},
		{"sqlite", DialectSQLite},
		{"sqlite3", DialectSQLite},
	}
	for _, tt := range tests {
		got, err := ParseDialect(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseDialect("mysql")
	assert.Error(t, err)
}

func TestSQLiteDSN(t *testing.T) {
	const pragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_time_format=sqlite"

	assert.Equal(t, ":memory:?"+pragmas, sqliteDSN(""))
	assert.Equal(t, ":memory:?"+pragmas, sqliteDSN(":memory:"))
	assert.Equal(t, "file:data/app.db?"+pragmas, sqliteDSN("data/app.db"))
	assert.Equal(t, "file:app.db?cache=shared&"+pragmas, sqliteDSN("file:app.db?cache=shared"))
	assert.Equal(t, "app.db?_pragma=foreign_keys(0)", sqliteDSN("app.db?_pragma=foreign_keys(0)"))
}
