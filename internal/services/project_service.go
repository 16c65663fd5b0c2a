package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"go.uber.org/zap"

	"portfolio/internal/models"
)

// RecentProjectLimit is how many projects the home view shows.
const RecentProjectLimit = 6

// ErrValidation marks a rejected create/update caused by missing required
// fields. The handler re-renders the form; nothing was persisted.
var ErrValidation = errors.New("validation failed")

// ProjectStore is the persistence contract the service operates on.
// *repositories.ProjectRepository satisfies it.
type ProjectStore interface {
	List(ctx context.Context) ([]models.Project, error)
	ListRecent(ctx context.Context, limit int) ([]models.Project, error)
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	Insert(ctx context.Context, project *models.Project) error
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id int64) error
}

type ProjectService struct {
	repo   ProjectStore
	images ImageStore
	logger *zap.Logger
}

func NewProjectService(repo ProjectStore, images ImageStore, logger *zap.Logger) *ProjectService {
	return &ProjectService{
		repo:   repo,
		images: images,
		logger: logger,
	}
}

// ListProjects returns every project, newest first. On a storage fault it
// returns an empty slice alongside the error so callers can render a
// degraded page instead of failing.
func (s *ProjectService) ListProjects(ctx context.Context) ([]models.Project, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch projects", zap.Error(err))
		return []models.Project{}, fmt.Errorf("failed to fetch projects: %w", err)
	}
	return projects, nil
}

// RecentProjects returns at most the 6 newest projects for the home view.
func (s *ProjectService) RecentProjects(ctx context.Context) ([]models.Project, error) {
	projects, err := s.repo.ListRecent(ctx, RecentProjectLimit)
	if err != nil {
		s.logger.Error("Failed to fetch recent projects", zap.Error(err))
		return []models.Project{}, fmt.Errorf("failed to fetch recent projects: %w", err)
	}
	return projects, nil
}

func (s *ProjectService) GetProject(ctx context.Context, id int64) (*models.Project, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateProject validates the form, stores the optional image and inserts
// the new project. A rejected or failed upload leaves the image absent.
func (s *ProjectService) CreateProject(ctx context.Context, form models.ProjectForm, file *multipart.FileHeader) (*models.Project, error) {
	title, description, link, err := normalizeForm(form)
	if err != nil {
		return nil, err
	}

	project := &models.Project{
		Title:       title,
		Description: description,
		Link:        link,
	}

	if name, ok := s.images.Store(file); ok {
		project.Image = &name
	}

	if err := s.repo.Insert(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// UpdateProject overwrites title, description and link of an existing
// project. The image is replaced only when a new file with a non-empty
// client filename was supplied and accepted; otherwise the prior value is
// preserved unchanged.
func (s *ProjectService) UpdateProject(ctx context.Context, id int64, form models.ProjectForm, file *multipart.FileHeader) (*models.Project, error) {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	title, description, link, err := normalizeForm(form)
	if err != nil {
		return nil, err
	}

	project.Title = title
	project.Description = description
	project.Link = link

	if file != nil && file.Filename != "" {
		if name, ok := s.images.Store(file); ok {
			project.Image = &name
		}
	}

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return project, nil
}

// DeleteProject removes the row. The stored image file, if any, stays on
// disk: filenames are never garbage-collected.
func (s *ProjectService) DeleteProject(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func normalizeForm(form models.ProjectForm) (title, description string, link *string, err error) {
	title = strings.TrimSpace(form.Title)
	description = strings.TrimSpace(form.Description)

	if title == "" || description == "" {
		return "", "", nil, fmt.Errorf("%w: title and description are required", ErrValidation)
	}

	if trimmed := strings.TrimSpace(form.Link); trimmed != "" {
		link = &trimmed
	}

	return title, description, link, nil
}
