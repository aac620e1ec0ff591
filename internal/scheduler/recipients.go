package scheduler

import "taskboard/internal/models"

// Recipients returns the deduplicated notification targets for a task:
// always the owner, plus the assignee when set and different from the
// owner. Never empty: every task has an owner.
func Recipients(task models.Task) []int64 {
	if task.AssigneeID == nil || *task.AssigneeID == task.OwnerID {
		return []int64{task.OwnerID}
	}
	return []int64{task.OwnerID, *task.AssigneeID}
}
