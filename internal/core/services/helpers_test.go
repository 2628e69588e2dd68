package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/projectvote/internal/adapters/repository/sqlstore"
	"github.com/vncsmyrnk/projectvote/internal/core/domain"
	"github.com/vncsmyrnk/projectvote/internal/core/ports"
)

func newTestStore(t *testing.T) *sqlstore.Store {
	t.Helper()
	ctx := context.Background()

	store, err := sqlstore.Open(ctx, sqlstore.DialectSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	_, err = store.Migrate(ctx)
	require.NoError(t, err)
	return store
}

func createProject(t *testing.T, svc ports.ProjectService, title string) *domain.Project {
	t.Helper()

	p, err := svc.Create(context.Background(), ports.CreateProjectInput{
		Title:       title,
		Description: title + " description",
		Link:        "https://example.com/" + title,
		Author:      "Author of " + title,
	})
	require.NoError(t, err)
	return p
}
