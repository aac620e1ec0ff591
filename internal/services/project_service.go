package services

import (
	"context"
	"time"

	"taskboard/internal/models"
	"taskboard/internal/repositories"
)

type ProjectService interface {
	Create(ctx context.Context, project *models.Project) (*models.Project, error)
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]models.Project, error)
	Update(ctx context.Context, id int64, updateData *models.Project) (*models.Project, error)
	Delete(ctx context.Context, id int64) error
}

type projectService struct {
	repo repositories.ProjectRepository
}

func NewProjectService(repo repositories.ProjectRepository) ProjectService {
	return &projectService{repo: repo}
}

func (s *projectService) Create(ctx context.Context, project *models.Project) (*models.Project, error) {
	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now
	if err := s.repo.Store(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *projectService) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *projectService) ListByOwner(ctx context.Context, ownerID int64) ([]models.Project, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *projectService) Update(ctx context.Context, id int64, updateData *models.Project) (*models.Project, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = updateData.Name
	existing.Description = updateData.Description
	existing.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *projectService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
