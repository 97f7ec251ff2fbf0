// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Task-specific validation errors.
var (
	// ErrTitleTooShort is returned when a task title is below the minimum length.
	ErrTitleTooShort = fmt.Errorf("title must be at least %d characters long", TitleMinLength)

	// ErrTitleTooLong is returned when a task title exceeds the maximum length.
	ErrTitleTooLong = fmt.Errorf("title must be at most %d characters long", TitleMaxLength)

	// ErrStatusInvalid is returned when a status is not a canonical member
	// after normalization.
	ErrStatusInvalid = errors.New("invalid task status")
)
