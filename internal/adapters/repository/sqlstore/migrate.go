package sqlstore

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

func (s *Store) migrationProvider() (*goose.Provider, error) {
	fsys, err := fs.Sub(migrationsFS, s.dialect.migrationsDir())
	if err != nil {
		return nil, fmt.Errorf("failed to open migrations: %w", err)
	}

	provider, err := goose.NewProvider(s.dialect.gooseDialect(), s.db, fsys)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration provider: %w", err)
	}
	return provider, nil
}

// Migrate applies every pending migration and returns the versions applied.
func (s *Store) Migrate(ctx context.Context) ([]int64, error) {
	provider, err := s.migrationProvider()
	if err != nil {
		return nil, err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	applied := make([]int64, 0, len(results))
	for _, r := range results {
		applied = append(applied, r.Source.Version)
	}
	return applied, nil
}

// MigrateDown rolls back the most recent migration.
func (s *Store) MigrateDown(ctx context.Context) (int64, error) {
	provider, err := s.migrationProvider()
	if err != nil {
		return 0, err
	}

	result, err := provider.Down(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to roll back migration: %w", err)
	}
	return result.Source.Version, nil
}

// MigrateReset rolls back every applied migration.
func (s *Store) MigrateReset(ctx context.Context) error {
	provider, err := s.migrationProvider()
	if err != nil {
		return err
	}

	if _, err := provider.DownTo(ctx, 0); err != nil {
		return fmt.Errorf("failed to reset migrations: %w", err)
	}
	return nil
}

type MigrationStatus struct {
	Version int64
	Name    string
	Applied bool
}

func (s *Store) MigrationStatus(ctx context.Context) ([]MigrationStatus, error) {
	provider, err := s.migrationProvider()
	if err != nil {
		return nil, err
	}

	statuses, err := provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read migration status: %w", err)
	}

	out := make([]MigrationStatus, 0, len(statuses))
	for _, st := range statuses {
		out = append(out, MigrationStatus{
			Version: st.Source.Version,
			Name:    st.Source.Path,
			Applied: st.State == goose.StateApplied,
		})
	}
	return out, nil
}
