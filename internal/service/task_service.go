package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taskboard/taskboard-api/internal/domain"
	"github.com/taskboard/taskboard-api/internal/platform/logger"
	"github.com/taskboard/taskboard-api/internal/store"
)

// CreateTaskInput is the payload shape for creating a task. Pointer fields
// distinguish absent from empty.
type CreateTaskInput struct {
	Title       string
	Description *string
	Status      *string
}

// UpdateTaskInput is the payload shape for updating a task. Every field is
// optional; omitted fields retain their prior value.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *string
}

// TaskService provides the task lifecycle operations. Each operation
// returns either a result or a tagged error: *ValidationError for
// malformed input, store.ErrTaskNotFound for a missing id, and anything
// else is a persistence failure surfaced to the boundary untouched.
type TaskService interface {
	// List retrieves every task. An empty board yields an empty slice and
	// no error; the HTTP boundary decides how to render that case.
	List(ctx context.Context) ([]domain.Task, error)

	// GetByID retrieves a single task by id.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// Create normalizes the status field if present, validates the
	// payload, and persists a new record with a server-generated id and
	// creation timestamp. Status defaults to Pending when absent.
	Create(ctx context.Context, in CreateTaskInput) (*domain.Task, error)

	// Update looks the task up by id first (a missing id short-circuits
	// before validation), then normalizes, validates, and merges only the
	// provided fields onto the existing record before persisting.
	Update(ctx context.Context, id int64, in UpdateTaskInput) (*domain.Task, error)

	// Delete removes a task. The removal is terminal; repeated deletes
	// after the first report store.ErrTaskNotFound.
	Delete(ctx context.Context, id int64) error
}

// TxRunner executes fn within a database transaction. Production code uses
// NewTxRunner over the connection pool; tests substitute a runner that
// invokes fn directly.
type TxRunner func(ctx context.Context, fn store.TxFn) error

// NewTxRunner binds store.RunInTransaction to the given pool.
func NewTxRunner(db *sql.DB) TxRunner {
	return func(ctx context.Context, fn store.TxFn) error {
		return store.RunInTransaction(ctx, db, fn)
	}
}

// Verify interface compliance at compile time
var _ TaskService = (*taskServiceImpl)(nil)

// taskServiceImpl implements the TaskService interface.
type taskServiceImpl struct {
	taskStore store.TaskStore
	runTx     TxRunner
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService implementation.
func NewTaskService(taskStore store.TaskStore, runTx TxRunner, logger *slog.Logger) TaskService {
	if taskStore == nil {
		panic("taskStore cannot be nil")
	}
	if runTx == nil {
		panic("runTx cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		taskStore: taskStore,
		runTx:     runTx,
		logger:    logger.With(slog.String("component", "task_service")),
	}
}

// List implements TaskService.List.
func (s *taskServiceImpl) List(ctx context.Context) ([]domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	tasks, err := s.taskStore.List(ctx)
	if err != nil {
		log.Error("failed to list tasks", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	log.Debug("listed tasks", slog.Int("count", len(tasks)))
	return tasks, nil
}

// GetByID implements TaskService.GetByID.
func (s *taskServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("task not found", slog.Int64("task_id", id))
			return nil, err
		}
		log.Error("failed to get task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return task, nil
}

// Create implements TaskService.Create.
func (s *taskServiceImpl) Create(ctx context.Context, in CreateTaskInput) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if violations := ValidateCreate(in); len(violations) > 0 {
		log.Debug("create payload rejected",
			slog.Int("violations", len(violations)))
		return nil, &ValidationError{Messages: violations}
	}

	var status domain.TaskStatus
	if in.Status != nil && *in.Status != "" {
		status = domain.NormalizeStatus(*in.Status)
	}

	var description string
	if in.Description != nil {
		description = *in.Description
	}

	task, err := domain.NewTask(in.Title, description, status)
	if err != nil {
		// Validation above mirrors the domain invariants, so this only
		// trips if the two drift apart.
		return nil, &ValidationError{Messages: []string{err.Error()}}
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		log.Error("failed to persist new task", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// Update implements TaskService.Update.
// The lookup and write run in a single transaction. No row lock is taken,
// so concurrent updates to the same id race at last-write-wins granularity.
func (s *taskServiceImpl) Update(ctx context.Context, id int64, in UpdateTaskInput) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var updated *domain.Task
	err := s.runTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		taskStore := s.taskStore
		if tx != nil {
			taskStore = taskStore.WithTx(tx)
		}

		// Existence is checked before validation: an invalid payload
		// against a missing id reports not-found, matching what existing
		// clients expect.
		task, err := taskStore.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if violations := ValidateUpdate(in); len(violations) > 0 {
			log.Debug("update payload rejected",
				slog.Int64("task_id", id),
				slog.Int("violations", len(violations)))
			return &ValidationError{Messages: violations}
		}

		if in.Title != nil {
			task.Title = *in.Title
		}
		if in.Description != nil {
			task.Description = *in.Description
		}
		if in.Status != nil && *in.Status != "" {
			task.Status = domain.NormalizeStatus(*in.Status)
		}

		if err := taskStore.Update(ctx, task); err != nil {
			return err
		}

		updated = task
		return nil
	})

	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("task not found for update", slog.Int64("task_id", id))
			return nil, err
		}
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			return nil, vErr
		}
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return updated, nil
}

// Delete implements TaskService.Delete.
// The store reports not-found from the delete itself, which collapses the
// lookup and removal into one statement with the same observable outcome.
func (s *taskServiceImpl) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.taskStore.Delete(ctx, id); err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("task not found for delete", slog.Int64("task_id", id))
			return err
		}
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}
