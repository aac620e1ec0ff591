package services

import (
	"context"
	"log"
	"time"

	"taskboard/internal/models"
	"taskboard/internal/repositories"
)

type CommentService interface {
	Create(ctx context.Context, actorID int64, comment *models.Comment) (*models.Comment, error)
	GetByID(ctx context.Context, id int64) (*models.Comment, error)
	ListByTask(ctx context.Context, taskID int64) ([]models.Comment, error)
	Delete(ctx context.Context, actorID int64, id int64) error
}

type commentService struct {
	repo   repositories.CommentRepository
	images ImageService
	audit  AuditService
}

func NewCommentService(repo repositories.CommentRepository, images ImageService, audit AuditService) CommentService {
	return &commentService{repo: repo, images: images, audit: audit}
}

func (s *commentService) Create(ctx context.Context, actorID int64, comment *models.Comment) (*models.Comment, error) {
	comment.CreatedAt = time.Now()
	if err := s.repo.Store(ctx, comment); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, actorID, models.AuditCommentAdded, "comment", comment.ID, nil, comment)
	return comment, nil
}

func (s *commentService) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	return s.repo.FindByID(ctx, id)
}

// ListByTask returns the task's comments with their image attachments
// loaded.
func (s *commentService) ListByTask(ctx context.Context, taskID int64) ([]models.Comment, error) {
	comments, err := s.repo.ListByTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	for i := range comments {
		images, err := s.images.ListByParent(ctx, models.ImageParentComment, comments[i].ID)
		if err != nil {
			return nil, err
		}
		comments[i].Images = images
	}
	return comments, nil
}

// Delete removes the comment together with its image attachments.
func (s *commentService) Delete(ctx context.Context, actorID int64, id int64) error {
	comment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.images.DeleteByParent(ctx, models.ImageParentComment, id); err != nil {
		log.Printf("[comment][delete][warn] images comment=%d: %v", id, err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.Record(ctx, actorID, models.AuditCommentDeleted, "comment", id, comment, nil)
	return nil
}
