package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"taskboard/internal/models"
	"taskboard/internal/repositories"
)

// TaskService defines the interface for task-related business logic.
type TaskService interface {
	Create(ctx context.Context, actorID int64, task *models.Task) (*models.Task, error)
	GetByID(ctx context.Context, id int64) (*models.Task, error)
	GetAll(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	Update(ctx context.Context, actorID int64, id int64, updateData *models.Task) (*models.Task, error)
	Delete(ctx context.Context, actorID int64, id int64) error
	Assign(ctx context.Context, actorID int64, id int64, assigneeID int64) (*models.Task, error)
}

type taskService struct {
	repo   repositories.TaskRepository
	users  repositories.UserRepository
	emails EmailService
	tg     *TelegramService
	audit  AuditService
}

// NewTaskService creates a new instance of TaskService.
func NewTaskService(repo repositories.TaskRepository, users repositories.UserRepository, emails EmailService, tg *TelegramService, audit AuditService) TaskService {
	return &taskService{repo: repo, users: users, emails: emails, tg: tg, audit: audit}
}

func (s *taskService) Create(ctx context.Context, actorID int64, task *models.Task) (*models.Task, error) {
	if task.Status == "" {
		task.Status = models.StatusPending
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now

	if err := s.repo.Store(ctx, task); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actorID, models.AuditTaskCreated, "task", task.ID, nil, task)

	// assigning someone else at creation time notifies assignee and owner
	if task.AssigneeID != nil && *task.AssigneeID != task.OwnerID {
		s.notifyAssigned(ctx, task)
	}
	return task, nil
}

func (s *taskService) GetByID(ctx context.Context, id int64) (*models.Task, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *taskService) GetAll(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	return s.repo.FindAll(ctx, filter)
}

func (s *taskService) Update(ctx context.Context, actorID int64, id int64, updateData *models.Task) (*models.Task, error) {
	existingTask, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	old := *existingTask

	existingTask.Title = updateData.Title
	existingTask.Description = updateData.Description
	existingTask.Priority = updateData.Priority
	existingTask.DueDate = updateData.DueDate
	existingTask.Status = updateData.Status
	existingTask.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, existingTask); err != nil {
		return nil, err
	}

	action := models.AuditTaskUpdated
	if old.Status != existingTask.Status {
		action = models.AuditTaskStatusChanged
	}
	s.audit.Record(ctx, actorID, action, "task", existingTask.ID, old, existingTask)

	return existingTask, nil
}

func (s *taskService) Delete(ctx context.Context, actorID int64, id int64) error {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.Record(ctx, actorID, models.AuditTaskDeleted, "task", id, task, nil)
	return nil
}

func (s *taskService) Assign(ctx context.Context, actorID int64, id int64, assigneeID int64) (*models.Task, error) {
	if _, err := s.users.GetByID(ctx, assigneeID); err != nil {
		return nil, fmt.Errorf("assignee: %w", err)
	}
	if err := s.repo.UpdateAssignee(ctx, id, assigneeID); err != nil {
		return nil, err
	}
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actorID, models.AuditTaskAssigned, "task", id, nil, map[string]int64{"assigned_user_id": assigneeID})

	if assigneeID != task.OwnerID {
		s.notifyAssigned(ctx, task)
	}
	return task, nil
}

// notifyAssigned mails assignee and owner about a new assignment. These
// notices are best-effort: failures are logged and the operation itself
// already succeeded.
func (s *taskService) notifyAssigned(ctx context.Context, task *models.Task) {
	for _, userID := range []int64{*task.AssigneeID, task.OwnerID} {
		user, err := s.users.GetByID(ctx, userID)
		if err != nil {
			log.Printf("[task][assign][warn] resolve user=%d: %v", userID, err)
			continue
		}
		if err := s.emails.SendTaskAssignedEmail(user.Email, *task); err != nil {
			log.Printf("[task][assign][warn] email user=%d task=%d: %v", userID, task.ID, err)
		}
		if user.TelegramChatID != nil {
			text := fmt.Sprintf("📌 <b>%s</b>\nYou have been assigned a new task.", task.Title)
			if err := s.tg.SendMessage(*user.TelegramChatID, text); err != nil {
				log.Printf("[task][assign][warn] tg user=%d task=%d: %v", userID, task.ID, err)
			}
		}
	}
}
