package authz

import "taskboard/internal/models"

// Ownership-based access rules. A task is visible to its owner, its
// assignee and the owner of its project; only the task owner and the
// project owner may change it.

func CanViewTask(userID int64, task *models.Task, project *models.Project) bool {
	if task.OwnerID == userID {
		return true
	}
	if task.AssigneeID != nil && *task.AssigneeID == userID {
		return true
	}
	return project != nil && project.OwnerID == userID
}

func CanManageTask(userID int64, task *models.Task, project *models.Project) bool {
	if task.OwnerID == userID {
		return true
	}
	return project != nil && project.OwnerID == userID
}

func CanManageProject(userID int64, project *models.Project) bool {
	return project.OwnerID == userID
}

// CanDeleteComment: the comment author, or anyone who can manage the
// task the comment sits on.
func CanDeleteComment(userID int64, comment *models.Comment, task *models.Task, project *models.Project) bool {
	if comment.UserID == userID {
		return true
	}
	return CanManageTask(userID, task, project)
}
