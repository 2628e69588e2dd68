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

var projectColumns = []string{"id", "title", "description", "link", "author", "votes", "created_at"}

type projectRepository struct {
	db DBTX
	sq sq.StatementBuilderType
}

func NewProjectRepository(db DBTX, builder sq.StatementBuilderType) ports.ProjectRepository {
	return &projectRepository{
		db: db,
		sq: builder,
	}
}

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) error {
	query, args, err := r.sq.Insert("projects").
		Columns("title", "description", "link", "author", "votes", "created_at").
		Values(project.Title, project.Description, project.Link, project.Author, 0, project.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert: %w", err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&project.ID); err != nil {
		return fmt.Errorf("failed to insert project: %w", err)
	}
	project.Votes = 0

	return nil
}

func (r *projectRepository) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	query, args, err := r.sq.Select(projectColumns...).
		From("projects").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select: %w", err)
	}

	var p domain.Project
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&p.ID, &p.Title, &p.Description, &p.Link, &p.Author, &p.Votes, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return &p, nil
}

func (r *projectRepository) List(ctx context.Context) ([]*domain.Project, error) {
	return r.list(ctx, "id ASC")
}

func (r *projectRepository) ListByVotes(ctx context.Context) ([]*domain.Project, error) {
	return r.list(ctx, "votes DESC", "id ASC")
}

func (r *projectRepository) list(ctx context.Context, orderBy ...string) ([]*domain.Project, error) {
	query, args, err := r.sq.Select(projectColumns...).
		From("projects").
		OrderBy(orderBy...).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []*domain.Project{}
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Link, &p.Author, &p.Votes, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating projects: %w", err)
	}

	return projects, nil
}

func (r *projectRepository) IncrementVotes(ctx context.Context, id int64) error {
	query, args, err := r.sq.Update("projects").
		Set("votes", sq.Expr("votes + 1")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update: %w", err)
	}

	return r.execOne(ctx, query, args, "increment votes")
}

func (r *projectRepository) RecountVotes(ctx context.Context, id int64) error {
	// nested builders must keep '?' placeholders; the outer statement numbers them
	count := sq.Select("COUNT(*)").From("votes").Where(sq.Eq{"project_id": id})

	query, args, err := r.sq.Update("projects").
		Set("votes", count).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update: %w", err)
	}

	return r.execOne(ctx, query, args, "recount votes")
}

func (r *projectRepository) execOne(ctx context.Context, query string, args []any, op string) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	if n == 0 {
		return domain.ErrProjectNotFound
	}

	return nil
}
