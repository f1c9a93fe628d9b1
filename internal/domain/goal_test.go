package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validGoal() *Goal {
	return &Goal{
		ID:       "g1",
		Title:    "Finish calculus review",
		Priority: PriorityHigh,
		Deadline: "2026-10-01",
		Status:   GoalInProgress,
	}
}

func TestGoalValidate(t *testing.T) {
	require.NoError(t, validGoal().Validate())

	g := validGoal()
	g.Title = "   "
	assert.Error(t, g.Validate(), "blank title should be rejected")

	g = validGoal()
	g.Priority = "Urgente"
	assert.Error(t, g.Validate(), "unknown priority should be rejected")

	g = validGoal()
	g.Deadline = "01/10/2026"
	assert.Error(t, g.Validate(), "non-ISO deadline should be rejected")

	g = validGoal()
	g.Progress = 120
	assert.Error(t, g.Validate())
}

func TestGoalValidate_DeadlineBeforeStart(t *testing.T) {
	g := validGoal()
	g.StartDate = "2026-11-01"
	g.Deadline = "2026-10-01"
	assert.Error(t, g.Validate())

	g.Deadline = "2026-11-01"
	assert.NoError(t, g.Validate(), "deadline equal to start date is allowed")
}

func TestGoalToggleStatus(t *testing.T) {
	g := validGoal()

	g.ToggleStatus()
	assert.Equal(t, GoalCompleted, g.Status)
	assert.Equal(t, 100, g.Progress)

	g.ToggleStatus()
	assert.Equal(t, GoalInProgress, g.Status)
	assert.Equal(t, 0, g.Progress)
}

func TestGoalToggleStatus_ReopensCancelled(t *testing.T) {
	g := validGoal()
	g.Cancel()
	require.Equal(t, GoalCancelled, g.Status)

	g.ToggleStatus()
	assert.Equal(t, GoalCompleted, g.Status)
	assert.Equal(t, 100, g.Progress)
}

func TestGoalSetProgress_DerivesStatus(t *testing.T) {
	g := validGoal()

	require.NoError(t, g.SetProgress(100))
	assert.Equal(t, GoalCompleted, g.Status)

	require.NoError(t, g.SetProgress(40))
	assert.Equal(t, GoalInProgress, g.Status)
	assert.Equal(t, 40, g.Progress)

	assert.Error(t, g.SetProgress(101))
	assert.Error(t, g.SetProgress(-1))
	assert.Equal(t, 40, g.Progress, "rejected progress must not mutate the goal")
}

func TestGoalSetProgress_CancelledStaysCancelled(t *testing.T) {
	g := validGoal()
	g.Cancel()

	require.NoError(t, g.SetProgress(100))
	assert.Equal(t, GoalCancelled, g.Status)
	assert.Equal(t, 100, g.Progress)
}
