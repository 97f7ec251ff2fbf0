// Package store provides abstractions and implementations for data persistence.
package store

import (
	"context"
	"database/sql"

	"github.com/taskboard/taskboard-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// List retrieves every task, ordered by creation time ascending.
	// An empty board yields an empty slice, not an error; the boundary
	// decides how to render that case.
	List(ctx context.Context) ([]domain.Task, error)

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// Create persists a new task. The store assigns ID and CreatedAt and
	// writes them back onto the given task.
	// Tasks must be valid according to domain validation rules.
	Create(ctx context.Context, task *domain.Task) error

	// Update persists the mutable fields (title, description, status) of
	// an existing task. Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task from the store by its ID. The removal is
	// terminal; there is no soft-delete.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new TaskStore instance that uses the provided
	// transaction. The transaction should be created and managed by the
	// caller, typically via RunInTransaction.
	WithTx(tx *sql.Tx) TaskStore
}
