package sqlstore

import (
	"context"
	"log/slog"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/platform/sqlpool"
	"github.com/phrazzld/tasks-api/internal/store"
)

const componentName = "task_store"

// Statements against tasks_. imageUrl is aliased on read because column
// name case is folded differently by each backend.
const (
	insertTaskQuery = `INSERT INTO tasks_ (text, imageUrl) VALUES (?, ?)`
	listTasksQuery  = `SELECT id, text, imageUrl AS image_url FROM tasks_ ORDER BY id`
	updateTaskQuery = `UPDATE tasks_ SET text = ?, imageUrl = ? WHERE id = ?`
	deleteTaskQuery = `DELETE FROM tasks_ WHERE id = ?`
)

// Executor is the subset of *sqlpool.Pool the store needs.
type Executor interface {
	Select(ctx context.Context, dest any, query string, args ...any) error
	Insert(ctx context.Context, query string, args ...any) (sqlpool.Written, error)
	Exec(ctx context.Context, query string, args ...any) (sqlpool.Written, error)
	Ping(ctx context.Context) error
}

// SQLTaskStore implements store.TaskStore over a bounded connection pool.
type SQLTaskStore struct {
	db     Executor
	logger *slog.Logger
}

// NewSQLTaskStore creates a TaskStore backed by db.
// If logger is nil, a default logger will be used.
func NewSQLTaskStore(db Executor, logger *slog.Logger) *SQLTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SQLTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", componentName)),
	}
}

var _ store.TaskStore = (*SQLTaskStore)(nil)

// Create implements store.TaskStore.Create.
// Returns validation errors from the domain Task if data is invalid.
func (s *SQLTaskStore) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	log := logger.ForComponent(ctx, s.logger, componentName)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create", slog.String("error", err.Error()))
		return nil, err
	}

	res, err := s.db.Insert(ctx, insertTaskQuery, task.Text, task.ImageURL)
	if err != nil {
		log.Error("failed to create task", slog.String("error", err.Error()))
		return nil, err
	}

	log.Info("task created", slog.Int64("task_id", res.InsertedID))
	return &domain.Task{ID: res.InsertedID, Text: task.Text, ImageURL: task.ImageURL}, nil
}

// List implements store.TaskStore.List.
func (s *SQLTaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	log := logger.ForComponent(ctx, s.logger, componentName)

	tasks := []*domain.Task{}
	if err := s.db.Select(ctx, &tasks, listTasksQuery); err != nil {
		log.Error("failed to list tasks", slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("tasks listed", slog.Int("count", len(tasks)))
	return tasks, nil
}

// Update implements store.TaskStore.Update.
// The stored row is not re-read: on success the input is echoed back.
// Returns store.ErrTaskNotFound if no row has task.ID.
func (s *SQLTaskStore) Update(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	log := logger.ForComponent(ctx, s.logger, componentName).With(slog.Int64("task_id", task.ID))

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during update", slog.String("error", err.Error()))
		return nil, err
	}

	res, err := s.db.Exec(ctx, updateTaskQuery, task.Text, task.ImageURL, task.ID)
	if err != nil {
		log.Error("failed to update task", slog.String("error", err.Error()))
		return nil, err
	}
	if res.AffectedRows == 0 {
		log.Debug("task to update not found")
		return nil, store.ErrTaskNotFound
	}

	log.Info("task updated")
	return &domain.Task{ID: task.ID, Text: task.Text, ImageURL: task.ImageURL}, nil
}

// Delete implements store.TaskStore.Delete.
// Returns store.ErrTaskNotFound if no row has id.
func (s *SQLTaskStore) Delete(ctx context.Context, id int64) error {
	log := logger.ForComponent(ctx, s.logger, componentName).With(slog.Int64("task_id", id))

	res, err := s.db.Exec(ctx, deleteTaskQuery, id)
	if err != nil {
		log.Error("failed to delete task", slog.String("error", err.Error()))
		return err
	}
	if res.AffectedRows == 0 {
		log.Debug("task to delete not found")
		return store.ErrTaskNotFound
	}

	log.Info("task deleted")
	return nil
}

// Ping implements store.TaskStore.Ping.
func (s *SQLTaskStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}
