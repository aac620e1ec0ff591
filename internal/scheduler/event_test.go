package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventLine(t *testing.T) {
	assert.Equal(t, "This task is due in 7 days.", EventSevenDay.Line())
	assert.Equal(t, "This task is due in 24 hours.", EventTwentyFourHour.Line())
	assert.Equal(t, "This task is due in 12 hours.", EventTwelveHour.Line())
	assert.Equal(t, "This task is overdue!", EventOverdue.Line())
}

func TestEventLineUnknownFallsBack(t *testing.T) {
	// an unexpected window key still produces a usable notice
	assert.Equal(t, "This is a reminder for your task.", Event("3_days").Line())
}
