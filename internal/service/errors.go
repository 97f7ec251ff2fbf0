// Package service contains the task lifecycle service, which orchestrates
// validation, status normalization, and persistence for task operations.
package service

import "strings"

// ValidationError reports the complete, ordered list of constraint
// violations for a create or update payload. Every discovered violation is
// enumerated, not just the first; validation failure never partially
// applies.
type ValidationError struct {
	Messages []string
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}
