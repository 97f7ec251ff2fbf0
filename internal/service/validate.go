package service

import (
	"fmt"
	"unicode/utf8"

	"github.com/taskboard/taskboard-api/internal/domain"
)

// Validation messages surfaced to clients. Field checks are explicit
// sequential functions rather than struct tags so each payload shape
// enumerates every violation it finds, in field order.
var (
	msgTitleRequired = "title is required"
	msgTitleTooShort = fmt.Sprintf(
		"title must be at least %d characters long", domain.TitleMinLength)
	msgTitleTooLong = fmt.Sprintf(
		"title must be at most %d characters long", domain.TitleMaxLength)
	msgStatusInvalid = fmt.Sprintf(
		"status must be one of %s, %s, %s",
		domain.TaskStatusPending, domain.TaskStatusInProgress, domain.TaskStatusCompleted)
)

// titleViolations checks the title length bounds.
func titleViolations(title string) []string {
	length := utf8.RuneCountInString(title)
	if length < domain.TitleMinLength {
		return []string{msgTitleTooShort}
	}
	if length > domain.TitleMaxLength {
		return []string{msgTitleTooLong}
	}
	return nil
}

// statusViolations normalizes the raw status and checks strict membership.
// Known synonyms have already been folded to a canonical member by
// domain.NormalizeStatus, so anything failing IsValid here is genuinely
// unrecognized input.
func statusViolations(raw string) []string {
	if !domain.NormalizeStatus(raw).IsValid() {
		return []string{msgStatusInvalid}
	}
	return nil
}

// ValidateCreate returns the full list of violations for a create payload.
// Rules: title required with length 3-100; description optional; status
// optional, but if present it must normalize to a canonical value.
func ValidateCreate(in CreateTaskInput) []string {
	var violations []string

	if in.Title == "" {
		violations = append(violations, msgTitleRequired)
	} else {
		violations = append(violations, titleViolations(in.Title)...)
	}

	if in.Status != nil && *in.Status != "" {
		violations = append(violations, statusViolations(*in.Status)...)
	}

	return violations
}

// ValidateUpdate returns the full list of violations for an update payload.
// Every field is optional; fields that are present follow the same
// per-field rules as create.
func ValidateUpdate(in UpdateTaskInput) []string {
	var violations []string

	if in.Title != nil {
		violations = append(violations, titleViolations(*in.Title)...)
	}

	if in.Status != nil && *in.Status != "" {
		violations = append(violations, statusViolations(*in.Status)...)
	}

	return violations
}
