package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"taskboard/internal/models"
	"taskboard/internal/repositories"
)

type ImageService interface {
	Register(ctx context.Context, actorID int64, image *models.Image) (*models.Image, error)
	ListByParent(ctx context.Context, parentType models.ImageParent, parentID int64) ([]models.Image, error)
	// DeleteByParent removes every image attached to the entity, metadata
	// rows and stored files both.
	DeleteByParent(ctx context.Context, parentType models.ImageParent, parentID int64) error
	// StoragePath builds the relative path an upload should be saved to.
	StoragePath(parentType models.ImageParent, parentID int64, originalName string) string
}

type imageService struct {
	repo    repositories.ImageRepository
	audit   AuditService
	rootDir string
}

func NewImageService(repo repositories.ImageRepository, audit AuditService, rootDir string) ImageService {
	return &imageService{repo: repo, audit: audit, rootDir: rootDir}
}

func (s *imageService) Register(ctx context.Context, actorID int64, image *models.Image) (*models.Image, error) {
	image.CreatedAt = time.Now()
	if err := s.repo.Store(ctx, image); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, actorID, models.AuditImageUploaded, string(image.ParentType), image.ParentID, nil, image)
	return image, nil
}

func (s *imageService) ListByParent(ctx context.Context, parentType models.ImageParent, parentID int64) ([]models.Image, error) {
	return s.repo.ListByParent(ctx, parentType, parentID)
}

func (s *imageService) DeleteByParent(ctx context.Context, parentType models.ImageParent, parentID int64) error {
	images, err := s.repo.ListByParent(ctx, parentType, parentID)
	if err != nil {
		return err
	}
	for _, img := range images {
		if err := s.repo.Delete(ctx, img.ID); err != nil {
			return err
		}
		// the metadata row is gone; a missing or stuck file is only logged
		if err := os.Remove(filepath.Join(s.rootDir, img.Path)); err != nil && !os.IsNotExist(err) {
			log.Printf("[image][delete][warn] remove file %s: %v", img.Path, err)
		}
	}
	return nil
}

func (s *imageService) StoragePath(parentType models.ImageParent, parentID int64, originalName string) string {
	name := fmt.Sprintf("%d_%d%s", parentID, time.Now().UnixNano(), filepath.Ext(originalName))
	return filepath.Join(string(parentType)+"s", name)
}
