package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"taskboard/internal/models"
)

var ErrProjectNotFound = fmt.Errorf("project not found")

type ProjectRepository interface {
	Store(ctx context.Context, project *models.Project) error
	FindByID(ctx context.Context, id int64) (*models.Project, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]models.Project, error)
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id int64) error
	CountByOwner(ctx context.Context, ownerID int64) (int, error)
}

type projectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Store(ctx context.Context, project *models.Project) error {
	query := `
		INSERT INTO projects (owner_id, name, description, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id, created_at, updated_at`
	return r.db.QueryRowContext(ctx, query,
		project.OwnerID, project.Name, project.Description, project.CreatedAt, project.UpdatedAt,
	).Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)
}

func (r *projectRepository) FindByID(ctx context.Context, id int64) (*models.Project, error) {
	p := &models.Project{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, owner_id, name, description, created_at, updated_at FROM projects WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.OwnerID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *projectRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.Project, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, owner_id, name, description, created_at, updated_at
		 FROM projects WHERE owner_id = $1 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *projectRepository) Update(ctx context.Context, project *models.Project) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE projects SET name=$1, description=$2, updated_at=$3 WHERE id=$4`,
		project.Name, project.Description, project.UpdatedAt, project.ID)
	return err
}

func (r *projectRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	return err
}

func (r *projectRepository) CountByOwner(ctx context.Context, ownerID int64) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM projects WHERE owner_id = $1`, ownerID).Scan(&n)
	return n, err
}
