package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/vncsmyrnk/projectvote/internal/core/domain"
	"github.com/vncsmyrnk/projectvote/internal/core/ports"
)

type voteRepository struct {
	db DBTX
	sq sq.StatementBuilderType
}

func NewVoteRepository(db DBTX, builder sq.StatementBuilderType) ports.VoteRepository {
	return &voteRepository{
		db: db,
		sq: builder,
	}
}

func (r *voteRepository) SaveVote(ctx context.Context, vote *domain.Vote) error {
	query, args, err := r.sq.Insert("votes").
		Columns("identity", "project_id", "created_at").
		Values(vote.Identity, vote.ProjectID, vote.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyVoted
		}
		return fmt.Errorf("failed to save vote: %w", err)
	}

	return nil
}

func (r *voteRepository) HasVoted(ctx context.Context, identity string, projectID int64) (bool, error) {
	query, args, err := r.sq.Select("1").
		From("votes").
		Where(sq.Eq{"identity": identity, "project_id": projectID}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build select: %w", err)
	}

	var exists int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check existing vote: %w", err)
	}

	return true, nil
}

func (r *voteRepository) ListProjectIDsByIdentity(ctx context.Context, identity string) ([]int64, error) {
	query, args, err := r.sq.Select("project_id").
		From("votes").
		Where(sq.Eq{"identity": identity}).
		OrderBy("project_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list votes: %w", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating votes: %w", err)
	}

	return ids, nil
}

func (r *voteRepository) CountByProject(ctx context.Context) (map[int64]int64, error) {
	query, args, err := r.sq.Select("project_id", "COUNT(*)").
		From("votes").
		GroupBy("project_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count votes: %w", err)
	}
	defer rows.Close()

	counts := make(map[int64]int64)
	for rows.Next() {
		var projectID, count int64
		if err := rows.Scan(&projectID, &count); err != nil {
			return nil, fmt.Errorf("failed to scan vote count: %w", err)
		}
		counts[projectID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vote counts: %w", err)
	}

	return counts, nil
}
