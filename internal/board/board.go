package board

import (
	"context"
	"log/slog"

	"github.com/taskboard/taskboard-api/internal/domain"
)

// Board ties the remote client and the derived view together. Mutations
// never touch the view directly: every successful mutation triggers a full
// re-fetch, so the view is only as fresh as the last Refresh.
type Board struct {
	client *Client
	view   *View
	logger *slog.Logger
}

// NewBoard creates a Board over the given client. pageSize falls back to
// DefaultPageSize when not positive.
func NewBoard(client *Client, pageSize int, logger *slog.Logger) *Board {
	if client == nil {
		panic("client cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Board{
		client: client,
		view:   NewView(pageSize),
		logger: logger.With(slog.String("component", "board")),
	}
}

// View exposes the derived view for rendering and page navigation.
func (b *Board) View() *View {
	return b.view
}

// Refresh re-fetches the full task list and replaces the view's tasks.
// On failure the previous view state is left untouched.
func (b *Board) Refresh(ctx context.Context) error {
	tasks, err := b.client.ListTasks(ctx)
	if err != nil {
		b.logger.Warn("refresh failed", slog.String("error", err.Error()))
		return err
	}

	b.view.SetTasks(tasks)
	return nil
}

// StatusDrop handles a task being dropped onto a status column. Dropping a
// task onto its own column is a no-op. Otherwise only the status field is
// sent to the server, and the list is re-fetched on success; there is no
// optimistic local mutation to roll back.
func (b *Board) StatusDrop(ctx context.Context, task domain.Task, newStatus domain.TaskStatus) error {
	if newStatus == task.Status {
		return nil
	}

	status := string(newStatus)
	if _, err := b.client.UpdateTask(ctx, task.ID, TaskPatch{Status: &status}); err != nil {
		b.logger.Warn("status drop failed",
			slog.Int64("task_id", task.ID),
			slog.String("new_status", status),
			slog.String("error", err.Error()))
		return err
	}

	return b.Refresh(ctx)
}

// CreateTask creates a task and re-fetches the list on success.
func (b *Board) CreateTask(ctx context.Context, title, description string) error {
	if _, err := b.client.CreateTask(ctx, title, description); err != nil {
		return err
	}
	return b.Refresh(ctx)
}

// EditTask updates a task's title and description and re-fetches the list
// on success.
func (b *Board) EditTask(ctx context.Context, id int64, title, description string) error {
	patch := TaskPatch{Title: &title, Description: &description}
	if _, err := b.client.UpdateTask(ctx, id, patch); err != nil {
		return err
	}
	return b.Refresh(ctx)
}

// DeleteTask deletes a task and re-fetches the list on success.
func (b *Board) DeleteTask(ctx context.Context, id int64) error {
	if err := b.client.DeleteTask(ctx, id); err != nil {
		return err
	}
	return b.Refresh(ctx)
}
