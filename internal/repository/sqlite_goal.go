package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/stride/internal/domain"
)

// SQLiteGoalRepo implements GoalRepo using a SQLite database.
type SQLiteGoalRepo struct {
	db *sql.DB
}

// NewSQLiteGoalRepo creates a new SQLiteGoalRepo.
func NewSQLiteGoalRepo(db *sql.DB) *SQLiteGoalRepo {
	return &SQLiteGoalRepo{db: db}
}

func (r *SQLiteGoalRepo) Create(ctx context.Context, g *domain.Goal) error {
	query := `INSERT INTO goals (id, owner_id, name, n_full, n_completed, deadline, priority, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		g.ID,
		g.OwnerID,
		g.Name,
		g.Target,
		g.Completed,
		g.Deadline.Format(domain.DateLayout),
		g.Priority,
		g.CreatedAt.Format(time.RFC3339),
		g.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("%w: inserting goal: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

func (r *SQLiteGoalRepo) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	query := `SELECT id, owner_id, name, n_full, n_completed, deadline, priority, created_at, updated_at
		FROM goals WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return scanGoal(row.Scan)
}

func (r *SQLiteGoalRepo) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Goal, error) {
	query := `SELECT id, owner_id, name, n_full, n_completed, deadline, priority, created_at, updated_at
		FROM goals WHERE owner_id = ? ORDER BY priority DESC, created_at, id`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: listing goals: %v", domain.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	goals := []*domain.Goal{}
	for rows.Next() {
		g, err := scanGoal(rows.Scan)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating goals: %w", err)
	}
	return goals, nil
}

// IncrementCompleted raises n_completed by one unless it is already at
// n_full. The guard lives in the statement so the check and the write are
// one atomic step.
func (r *SQLiteGoalRepo) IncrementCompleted(ctx context.Context, id string) (bool, error) {
	query := `UPDATE goals SET n_completed = n_completed + 1, updated_at = ?
		WHERE id = ? AND n_completed < n_full`
	return r.conditionalUpdate(ctx, query, nowUTC(), id)
}

// DecrementCompleted lowers n_completed by one unless it is already zero.
func (r *SQLiteGoalRepo) DecrementCompleted(ctx context.Context, id string) (bool, error) {
	query := `UPDATE goals SET n_completed = n_completed - 1, updated_at = ?
		WHERE id = ? AND n_completed > 0`
	return r.conditionalUpdate(ctx, query, nowUTC(), id)
}

// SetCompleted writes an explicit count, refused in-statement when the value
// falls outside [0, n_full].
func (r *SQLiteGoalRepo) SetCompleted(ctx context.Context, id string, value int) (bool, error) {
	query := `UPDATE goals SET n_completed = ?, updated_at = ?
		WHERE id = ? AND ? >= 0 AND ? <= n_full`
	return r.conditionalUpdate(ctx, query, value, nowUTC(), id, value, value)
}

func (r *SQLiteGoalRepo) Delete(ctx context.Context, id string) error {
	// Deleting a nonexistent id is a no-op, not an error.
	query := `DELETE FROM goals WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("%w: deleting goal: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

func (r *SQLiteGoalRepo) conditionalUpdate(ctx context.Context, query string, args ...interface{}) (bool, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: updating goal: %v", domain.ErrStoreUnavailable, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reading rows affected: %w", err)
	}
	return n > 0, nil
}

// scanGoal scans a goal from either *sql.Row or *sql.Rows via their shared
// Scan signature.
func scanGoal(scan func(dest ...interface{}) error) (*domain.Goal, error) {
	var g domain.Goal
	var deadlineStr, createdAtStr, updatedAtStr string

	err := scan(
		&g.ID, &g.OwnerID, &g.Name,
		&g.Target, &g.Completed,
		&deadlineStr, &g.Priority,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning goal: %w", err)
	}

	var parseErr error
	g.Deadline, parseErr = time.Parse(domain.DateLayout, deadlineStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing deadline: %w", parseErr)
	}
	g.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	g.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	return &g, nil
}
