package domain

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// Title length bounds enforced for every persisted task.
const (
	TitleMinLength = 3
	TitleMaxLength = 100
)

// Task represents a unit of work on the board. ID and CreatedAt are
// assigned by the store on insert and are never client-settable.
type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// NewTask creates a Task ready for persistence. Status defaults to Pending
// when empty. Returns an error if validation fails.
func NewTask(title, description string, status TaskStatus) (*Task, error) {
	if status == "" {
		status = TaskStatusPending
	}

	task := &Task{
		Title:       title,
		Description: description,
		Status:      status,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks the Task invariants: title length within bounds and a
// canonical status. Returns the first violated invariant.
func (t *Task) Validate() error {
	length := utf8.RuneCountInString(t.Title)
	if length < TitleMinLength {
		return ErrTitleTooShort
	}
	if length > TitleMaxLength {
		return ErrTitleTooLong
	}

	if !t.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrStatusInvalid, t.Status)
	}

	return nil
}
