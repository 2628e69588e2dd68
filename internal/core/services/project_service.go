package services

import (
	"context"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/vncsmyrnk/projectvote/internal/core/domain"
	"github.com/vncsmyrnk/projectvote/internal/core/ports"
)

const (
	maxTitleLen       = 200
	maxAuthorLen      = 100
	maxDescriptionLen = 5000
)

type projectService struct {
	repo ports.ProjectRepository
}

func NewProjectService(repo ports.ProjectRepository) ports.ProjectService {
	return &projectService{
		repo: repo,
	}
}

func (s *projectService) Create(ctx context.Context, input ports.CreateProjectInput) (*domain.Project, error) {
	project := &domain.Project{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Link:        strings.TrimSpace(input.Link),
		Author:      strings.TrimSpace(input.Author),
		CreatedAt:   time.Now().UTC(),
	}

	if err := validateProject(project); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

func (s *projectService) Get(ctx context.Context, id int64) (*domain.Project, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidProjectID
	}
	return s.repo.GetByID(ctx, id)
}

func (s *projectService) List(ctx context.Context) ([]*domain.Project, error) {
	return s.repo.List(ctx)
}

func (s *projectService) Results(ctx context.Context) ([]*domain.Project, error) {
	return s.repo.ListByVotes(ctx)
}

func (s *projectService) Stats(ctx context.Context) (*domain.Stats, error) {
	projects, err := s.repo.ListByVotes(ctx)
	if err != nil {
		return nil, err
	}

	stats := &domain.Stats{Projects: len(projects)}
	for _, p := range projects {
		stats.Votes += p.Votes
	}
	if len(projects) > 0 {
		stats.Leader = projects[0]
	}

	return stats, nil
}

func validateProject(p *domain.Project) error {
	required := []struct {
		field string
		value string
		max   int
	}{
		{"title", p.Title, maxTitleLen},
		{"description", p.Description, maxDescriptionLen},
		{"link", p.Link, 0},
		{"author", p.Author, maxAuthorLen},
	}
	for _, f := range required {
		if f.value == "" {
			return domain.NewValidationError(f.field, "is required")
		}
		if f.max > 0 && utf8.RuneCountInString(f.value) > f.max {
			return domain.NewValidationError(f.field, "is too long")
		}
	}

	u, err := url.ParseRequestURI(p.Link)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return domain.NewValidationError("link", "must be an absolute http or https URL")
	}

	return nil
}
