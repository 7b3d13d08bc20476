package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validGoal() *Goal {
	return &Goal{
		ID:       "g1",
		OwnerID:  1,
		Name:     "Read Book",
		Target:   20,
		Deadline: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		Priority: 50,
	}
}

func TestGoalValidate(t *testing.T) {
	require.NoError(t, validGoal().Validate())
}

func TestGoalValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Goal)
	}{
		{"empty name", func(g *Goal) { g.Name = "" }},
		{"negative target", func(g *Goal) { g.Target = -1 }},
		{"completed above target", func(g *Goal) { g.Completed = 21 }},
		{"negative completed", func(g *Goal) { g.Completed = -1 }},
		{"priority too high", func(g *Goal) { g.Priority = 101 }},
		{"negative priority", func(g *Goal) { g.Priority = -5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := validGoal()
			tt.mutate(g)
			err := g.Validate()
			require.Error(t, err)
			assert.True(t, IsValidation(err), "expected a validation error, got %v", err)
		})
	}
}

func TestGoalStepUp_Saturates(t *testing.T) {
	g := validGoal()
	g.Completed = 19
	assert.Equal(t, 20, g.StepUp())

	g.Completed = 20
	assert.Equal(t, 20, g.StepUp(), "increment at target must not overshoot")
}

func TestGoalStepDown_Saturates(t *testing.T) {
	g := validGoal()
	g.Completed = 1
	assert.Equal(t, 0, g.StepDown())

	g.Completed = 0
	assert.Equal(t, 0, g.StepDown(), "decrement at zero must not undershoot")
}

func TestGoalDone_ZeroTarget(t *testing.T) {
	g := validGoal()
	g.Target = 0
	assert.True(t, g.Done(), "a zero-target goal is complete from the start")
}

func TestGoalRemaining(t *testing.T) {
	g := validGoal()
	g.Completed = 7
	assert.Equal(t, 13, g.Remaining())
}

func TestSessionResetFlow_KeepsPendingDelete(t *testing.T) {
	s := NewSession()
	s.State = StateAwaitingCount
	s.Draft.Name = "x"
	s.ActiveGoalID = "g1"
	s.CountPromptID = 9
	s.PendingDelete = &MessageRange{From: 3, To: 8}

	s.ResetFlow()

	assert.Equal(t, StateDefault, s.State)
	assert.Equal(t, GoalDraft{}, s.Draft)
	assert.Empty(t, s.ActiveGoalID)
	assert.Zero(t, s.CountPromptID)
	require.NotNil(t, s.PendingDelete, "cleanup range is owned by the tracker, not the flow")
	assert.Equal(t, int64(3), s.PendingDelete.From)
}
