package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestNewTask(t *testing.T) {
	t.Parallel()

	task, err := NewTask("Buy milk", "2%", TaskStatusInProgress)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task.Title != "Buy milk" {
		t.Errorf("Expected title %q, got %q", "Buy milk", task.Title)
	}
	if task.Description != "2%" {
		t.Errorf("Expected description %q, got %q", "2%", task.Description)
	}
	if task.Status != TaskStatusInProgress {
		t.Errorf("Expected status %q, got %q", TaskStatusInProgress, task.Status)
	}
	if task.ID != 0 {
		t.Errorf("Expected zero ID before persistence, got %d", task.ID)
	}
	if !task.CreatedAt.IsZero() {
		t.Error("Expected zero CreatedAt before persistence")
	}
}

func TestNewTaskDefaultsStatusToPending(t *testing.T) {
	t.Parallel()

	task, err := NewTask("Buy milk", "", "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if task.Status != TaskStatusPending {
		t.Errorf("Expected status %q, got %q", TaskStatusPending, task.Status)
	}
}

func TestTaskValidate(t *testing.T) {
	t.Parallel()

	validTask := Task{Title: "Buy milk", Status: TaskStatusPending}

	if err := validTask.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	// Title below the minimum length
	invalidTask := validTask
	invalidTask.Title = "ab"
	if err := invalidTask.Validate(); !errors.Is(err, ErrTitleTooShort) {
		t.Errorf("Expected error %v, got %v", ErrTitleTooShort, err)
	}

	// Title above the maximum length
	invalidTask = validTask
	invalidTask.Title = strings.Repeat("a", TitleMaxLength+1)
	if err := invalidTask.Validate(); !errors.Is(err, ErrTitleTooLong) {
		t.Errorf("Expected error %v, got %v", ErrTitleTooLong, err)
	}

	// Title lengths exactly at the bounds are valid
	boundaryTask := validTask
	boundaryTask.Title = strings.Repeat("a", TitleMinLength)
	if err := boundaryTask.Validate(); err != nil {
		t.Errorf("Expected no error at minimum length, got %v", err)
	}
	boundaryTask.Title = strings.Repeat("a", TitleMaxLength)
	if err := boundaryTask.Validate(); err != nil {
		t.Errorf("Expected no error at maximum length, got %v", err)
	}

	// Length is measured in characters, not bytes
	boundaryTask.Title = strings.Repeat("é", TitleMaxLength)
	if err := boundaryTask.Validate(); err != nil {
		t.Errorf("Expected no error for multibyte title at maximum length, got %v", err)
	}

	// Non-canonical status
	invalidTask = validTask
	invalidTask.Status = "Done"
	if err := invalidTask.Validate(); !errors.Is(err, ErrStatusInvalid) {
		t.Errorf("Expected error %v, got %v", ErrStatusInvalid, err)
	}

	// Un-normalized synonym must not slip through validation
	invalidTask = validTask
	invalidTask.Status = "Pendente"
	if err := invalidTask.Validate(); !errors.Is(err, ErrStatusInvalid) {
		t.Errorf("Expected error %v, got %v", ErrStatusInvalid, err)
	}
}
