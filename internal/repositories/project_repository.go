package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"portfolio/internal/models"
)

// ErrProjectNotFound is returned when a referenced project id does not
// exist in the store.
var ErrProjectNotFound = errors.New("project not found")

// Listing order everywhere is created_at descending; ties (same second in
// practice) break on id descending so the newest insert still sorts first.
const projectColumns = "id, title, description, image, link, created_at"

type ProjectRepository struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewProjectRepository(pool *pgxpool.Pool, logger *zap.Logger) *ProjectRepository {
	return &ProjectRepository{pool: pool, logger: logger}
}

func (r *ProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list projects", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return scanProjects(rows)
}

func (r *ProjectRepository) ListRecent(ctx context.Context, limit int) ([]models.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		r.logger.Error("Failed to list recent projects", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return scanProjects(rows)
}

func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects WHERE id = $1
	`

	var project models.Project
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&project.ID,
		&project.Title,
		&project.Description,
		&project.Image,
		&project.Link,
		&project.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	return &project, nil
}

// Insert persists a new project inside a transaction and fills in the
// generated id and created_at on the passed struct.
func (r *ProjectRepository) Insert(ctx context.Context, project *models.Project) error {
	query := `
		INSERT INTO projects (title, description, image, link)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, query,
			project.Title,
			project.Description,
			project.Image,
			project.Link,
		).Scan(&project.ID, &project.CreatedAt)
	})
	if err != nil {
		r.logger.Error("Failed to insert project", zap.String("title", project.Title), zap.Error(err))
		return err
	}

	r.logger.Info("Project inserted", zap.Int64("id", project.ID), zap.String("title", project.Title))
	return nil
}

// Update rewrites title, description, image and link in place. created_at
// is never touched.
func (r *ProjectRepository) Update(ctx context.Context, project *models.Project) error {
	query := `
		UPDATE projects SET
			title = $2, description = $3, image = $4, link = $5
		WHERE id = $1
	`

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		result, err := tx.Exec(ctx, query,
			project.ID,
			project.Title,
			project.Description,
			project.Image,
			project.Link,
		)
		if err != nil {
			return err
		}
		if result.RowsAffected() == 0 {
			return ErrProjectNotFound
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrProjectNotFound) {
			r.logger.Error("Failed to update project", zap.Int64("id", project.ID), zap.Error(err))
		}
		return err
	}

	r.logger.Info("Project updated", zap.Int64("id", project.ID))
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM projects WHERE id = $1`

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		result, err := tx.Exec(ctx, query, id)
		if err != nil {
			return err
		}
		if result.RowsAffected() == 0 {
			return ErrProjectNotFound
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrProjectNotFound) {
			r.logger.Error("Failed to delete project", zap.Int64("id", id), zap.Error(err))
		}
		return err
	}

	r.logger.Info("Project deleted", zap.Int64("id", id))
	return nil
}

func (r *ProjectRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM projects`).Scan(&count)
	return count, err
}

// SeedDefaults inserts the sample projects only when the table is empty.
// The count check and the inserts share one transaction so a concurrent
// second run cannot duplicate the seed data. Returns how many rows were
// inserted (0 means the seed was a no-op).
func (r *ProjectRepository) SeedDefaults(ctx context.Context, projects []models.Project) (int, error) {
	inserted := 0

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		var count int64
		if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM projects`).Scan(&count); err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		query := `
			INSERT INTO projects (title, description, image, link)
			VALUES ($1, $2, $3, $4)
		`
		for _, p := range projects {
			if _, err := tx.Exec(ctx, query, p.Title, p.Description, p.Image, p.Link); err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to seed projects", zap.Error(err))
		return 0, err
	}

	return inserted, nil
}

func scanProjects(rows pgx.Rows) ([]models.Project, error) {
	var projects []models.Project
	for rows.Next() {
		var project models.Project
		err := rows.Scan(
			&project.ID,
			&project.Title,
			&project.Description,
			&project.Image,
			&project.Link,
			&project.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	return projects, rows.Err()
}
