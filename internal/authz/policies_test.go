package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taskboard/internal/models"
)

func TestTaskPolicies(t *testing.T) {
	owner := int64(1)
	assignee := int64(2)
	projectOwner := int64(3)
	stranger := int64(4)

	project := &models.Project{ID: 10, OwnerID: projectOwner}
	task := &models.Task{ID: 5, ProjectID: 10, OwnerID: owner, AssigneeID: &assignee}

	assert.True(t, CanViewTask(owner, task, project))
	assert.True(t, CanViewTask(assignee, task, project))
	assert.True(t, CanViewTask(projectOwner, task, project))
	assert.False(t, CanViewTask(stranger, task, project))

	assert.True(t, CanManageTask(owner, task, project))
	assert.False(t, CanManageTask(assignee, task, project))
	assert.True(t, CanManageTask(projectOwner, task, project))

	// missing project falls back to task-level ownership
	assert.True(t, CanViewTask(owner, task, nil))
	assert.False(t, CanViewTask(projectOwner, task, nil))
}

func TestCommentPolicies(t *testing.T) {
	author := int64(9)
	taskOwner := int64(1)

	project := &models.Project{ID: 10, OwnerID: taskOwner}
	task := &models.Task{ID: 5, ProjectID: 10, OwnerID: taskOwner}
	comment := &models.Comment{ID: 77, TaskID: 5, UserID: author}

	assert.True(t, CanDeleteComment(author, comment, task, project))
	assert.True(t, CanDeleteComment(taskOwner, comment, task, project))
	assert.False(t, CanDeleteComment(int64(42), comment, task, project))
}
