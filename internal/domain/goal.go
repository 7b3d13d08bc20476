package domain

import (
	"fmt"
	"time"
)

// DateLayout is the canonical date format used for deadlines, both in user
// input and in storage.
const DateLayout = "2006-01-02"

type Goal struct {
	ID        string
	OwnerID   int64
	Name      string
	Target    int
	Completed int
	Deadline  time.Time
	Priority  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the creation invariants. It is called once before a goal
// is persisted; no edit flow exists for these fields afterwards.
func (g *Goal) Validate() error {
	if g.Name == "" {
		return &ValidationError{Msg: "goal name is required"}
	}
	if g.Target < 0 {
		return &ValidationError{Msg: fmt.Sprintf("goal target must be non-negative, got %d", g.Target)}
	}
	if g.Completed < 0 || g.Completed > g.Target {
		return &ValidationError{Msg: fmt.Sprintf("completed count %d outside [0, %d]", g.Completed, g.Target)}
	}
	if g.Priority < 0 || g.Priority > 100 {
		return &ValidationError{Msg: fmt.Sprintf("priority %d outside [0, 100]", g.Priority)}
	}
	return nil
}

// Remaining returns how many units are still to be completed.
func (g *Goal) Remaining() int {
	return g.Target - g.Completed
}

// Done reports whether the goal is fully completed. A zero-target goal is
// done from the moment it is created.
func (g *Goal) Done() bool {
	return g.Completed >= g.Target
}

// StepUp returns the completed count after one increment, saturating at the
// target.
func (g *Goal) StepUp() int {
	if g.Completed < g.Target {
		return g.Completed + 1
	}
	return g.Target
}

// StepDown returns the completed count after one decrement, saturating at
// zero.
func (g *Goal) StepDown() int {
	if g.Completed > 0 {
		return g.Completed - 1
	}
	return 0
}
