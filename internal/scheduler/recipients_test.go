package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taskboard/internal/models"
)

func TestRecipients(t *testing.T) {
	owner := int64(10)
	other := int64(20)

	t.Run("owner only when unassigned", func(t *testing.T) {
		task := models.Task{ID: 1, OwnerID: owner}
		assert.Equal(t, []int64{owner}, Recipients(task))
	})

	t.Run("owner and assignee when different", func(t *testing.T) {
		task := models.Task{ID: 1, OwnerID: owner, AssigneeID: &other}
		assert.Equal(t, []int64{owner, other}, Recipients(task))
	})

	t.Run("self-assigned task gets one target", func(t *testing.T) {
		self := owner
		task := models.Task{ID: 1, OwnerID: owner, AssigneeID: &self}
		assert.Equal(t, []int64{owner}, Recipients(task))
	})
}
