package repository

import (
	"context"

	"github.com/alexanderramin/stride/internal/domain"
)

// GoalRepo is the persistent store of goals consumed by the dialog engine.
//
// The three mutation methods are conditional: they report whether a row
// actually changed, and the bound invariant 0 <= n_completed <= n_full is
// enforced inside the statement itself so concurrent taps on the same goal
// cannot produce a lost update or an out-of-range count.
type GoalRepo interface {
	Create(ctx context.Context, g *domain.Goal) error
	GetByID(ctx context.Context, id string) (*domain.Goal, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Goal, error)
	IncrementCompleted(ctx context.Context, id string) (bool, error)
	DecrementCompleted(ctx context.Context, id string) (bool, error)
	SetCompleted(ctx context.Context, id string, value int) (bool, error)
	Delete(ctx context.Context, id string) error
}
