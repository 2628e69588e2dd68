package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/projectvote/internal/core/services"
)

func TestReconcileService_RepairsDrift(t *testing.T) {
	store := newTestStore(t)
	projectSvc := services.NewProjectService(store.Projects())
	voteSvc := services.NewVoteService(services.NewIdentityProvider(0), store)
	reconciler := services.NewReconcileService(store)
	ctx := context.Background()

	a := createProject(t, projectSvc, "A")
	b := createProject(t, projectSvc, "B")
	c := createProject(t, projectSvc, "C")
	for i := 0; i < 3; i++ {
		_, err := voteSvc.CastVote(ctx, "", a.ID)
		require.NoError(t, err)
	}
	_, err := voteSvc.CastVote(ctx, "", b.ID)
	require.NoError(t, err)

	fixed, err := reconciler.Reconcile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, fixed, "consistent counters are left alone")

	_, err = store.DB().ExecContext(ctx, `UPDATE projects SET votes = 42 WHERE id = ?`, a.ID)
	require.NoError(t, err)
	_, err = store.DB().ExecContext(ctx, `UPDATE projects SET votes = 7 WHERE id = ?`, c.ID)
	require.NoError(t, err)

	fixed, err = reconciler.Reconcile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, fixed)

	want := map[int64]int64{a.ID: 3, b.ID: 1, c.ID: 0}
	for id, votes := range want {
		p, err := projectSvc.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, votes, p.Votes, p.Title)
	}
}
