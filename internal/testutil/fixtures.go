package testutil

import (
	"time"

	"github.com/alexanderramin/stride/internal/domain"
	"github.com/google/uuid"
)

// Goal options
type GoalOption func(*domain.Goal)

func WithOwner(id int64) GoalOption {
	return func(g *domain.Goal) {
		g.OwnerID = id
	}
}

func WithTarget(n int) GoalOption {
	return func(g *domain.Goal) {
		g.Target = n
	}
}

func WithCompleted(n int) GoalOption {
	return func(g *domain.Goal) {
		g.Completed = n
	}
}

func WithDeadline(d time.Time) GoalOption {
	return func(g *domain.Goal) {
		g.Deadline = d
	}
}

func WithPriority(p int) GoalOption {
	return func(g *domain.Goal) {
		g.Priority = p
	}
}

// NewTestGoal builds a goal with sensible defaults: owner 1, target 10,
// nothing completed, deadline in a month, priority 50.
func NewTestGoal(name string, opts ...GoalOption) *domain.Goal {
	now := time.Now().UTC()
	g := &domain.Goal{
		ID:        uuid.New().String(),
		OwnerID:   1,
		Name:      name,
		Target:    10,
		Completed: 0,
		Deadline:  now.AddDate(0, 1, 0),
		Priority:  50,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}
