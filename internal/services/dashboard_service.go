package services

import (
	"context"
	"math"
	"time"

	"taskboard/internal/models"
	"taskboard/internal/repositories"
)

type DashboardService interface {
	Summary(ctx context.Context, userID int64) (*models.DashboardSummary, error)
}

type dashboardService struct {
	projects repositories.ProjectRepository
	tasks    repositories.TaskRepository
	comments repositories.CommentRepository
}

func NewDashboardService(projects repositories.ProjectRepository, tasks repositories.TaskRepository, comments repositories.CommentRepository) DashboardService {
	return &dashboardService{projects: projects, tasks: tasks, comments: comments}
}

func (s *dashboardService) Summary(ctx context.Context, userID int64) (*models.DashboardSummary, error) {
	now := time.Now()

	totalProjects, err := s.projects.CountByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	totalTasks, err := s.tasks.CountVisible(ctx, userID)
	if err != nil {
		return nil, err
	}
	completedTasks, err := s.tasks.CountVisibleByStatus(ctx, userID, models.StatusCompleted)
	if err != nil {
		return nil, err
	}
	overdue, err := s.tasks.OverdueByPriority(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	dueSoon, err := s.tasks.DueWithin(ctx, userID, now, now.AddDate(0, 0, 7))
	if err != nil {
		return nil, err
	}
	assignedToMe, err := s.tasks.ListAssignedOpen(ctx, userID)
	if err != nil {
		return nil, err
	}
	totalComments, err := s.comments.CountVisible(ctx, userID)
	if err != nil {
		return nil, err
	}

	percent := 0.0
	if totalTasks > 0 {
		percent = math.Round(float64(completedTasks)/float64(totalTasks)*100*100) / 100
	}

	return &models.DashboardSummary{
		TotalProjects:     totalProjects,
		TotalTasks:        totalTasks,
		CompletedTasks:    completedTasks,
		CompletedPercent:  percent,
		OverdueByPriority: overdue,
		TasksDueIn7Days:   dueSoon,
		TasksAssignedToMe: assignedToMe,
		TotalComments:     totalComments,
	}, nil
}
