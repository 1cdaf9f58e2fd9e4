package store

import (
	"context"

	"github.com/phrazzld/tasks-api/internal/domain"
)

// TaskStore defines the interface for task persistence.
// Every method issues exactly one statement against the backing store.
type TaskStore interface {
	// Create inserts the task and returns it with the store-assigned ID.
	// Returns validation errors from the domain Task if data is invalid.
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)

	// List returns every stored task ordered by ID.
	// Returns an empty, non-nil slice when there are none.
	List(ctx context.Context) ([]*domain.Task, error)

	// Update overwrites text and imageUrl of the task with task.ID.
	// Returns ErrTaskNotFound if no row matched.
	Update(ctx context.Context, task *domain.Task) (*domain.Task, error)

	// Delete removes the task with the given ID.
	// Returns ErrTaskNotFound if no row matched.
	Delete(ctx context.Context, id int64) error

	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error
}
