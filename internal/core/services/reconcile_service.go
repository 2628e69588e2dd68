package services

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/vncsmyrnk/projectvote/internal/core/ports"
)

type reconcileService struct {
	store ports.UnitOfWork
}

func NewReconcileService(store ports.UnitOfWork) ports.ReconcileService {
	return &reconcileService{
		store: store,
	}
}

// Reconcile rewrites every project counter that disagrees with the vote
// ledger and returns how many were corrected.
func (s *reconcileService) Reconcile(ctx context.Context) (int, error) {
	projects, err := s.store.Projects().List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch all projects: %w", err)
	}

	counts, err := s.store.Votes().CountByProject(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count votes: %w", err)
	}

	var (
		wg    sync.WaitGroup
		fixed atomic.Int32
	)
	errChan := make(chan error, len(projects))

	for _, project := range projects {
		if project.Votes == counts[project.ID] {
			continue
		}

		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			if err := s.store.Projects().RecountVotes(ctx, id); err != nil {
				errChan <- fmt.Errorf("failed to reconcile project %d: %w", id, err)
				return
			}
			fixed.Add(1)
		}(project.ID)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return int(fixed.Load()), err
		}
	}

	return int(fixed.Load()), nil
}
