package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestValidateCreate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      CreateTaskInput
		violations []string
	}{
		{
			name:  "valid minimal payload",
			input: CreateTaskInput{Title: "Buy milk"},
		},
		{
			name: "valid payload with synonym status",
			input: CreateTaskInput{
				Title:  "Buy milk",
				Status: strPtr("Pendente"),
			},
		},
		{
			name:       "missing title",
			input:      CreateTaskInput{},
			violations: []string{msgTitleRequired},
		},
		{
			name:       "title too short",
			input:      CreateTaskInput{Title: "ab"},
			violations: []string{msgTitleTooShort},
		},
		{
			name:       "title too long",
			input:      CreateTaskInput{Title: strings.Repeat("a", 101)},
			violations: []string{msgTitleTooLong},
		},
		{
			name: "unknown status",
			input: CreateTaskInput{
				Title:  "Buy milk",
				Status: strPtr("Done"),
			},
			violations: []string{msgStatusInvalid},
		},
		{
			name: "every violation is enumerated",
			input: CreateTaskInput{
				Title:  "ab",
				Status: strPtr("Done"),
			},
			violations: []string{msgTitleTooShort, msgStatusInvalid},
		},
		{
			name: "empty status string is treated as absent",
			input: CreateTaskInput{
				Title:  "Buy milk",
				Status: strPtr(""),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.violations, ValidateCreate(tt.input))
		})
	}
}

func TestValidateUpdate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      UpdateTaskInput
		violations []string
	}{
		{
			name:  "empty patch is valid",
			input: UpdateTaskInput{},
		},
		{
			name:  "present fields follow create rules",
			input: UpdateTaskInput{Title: strPtr("New title")},
		},
		{
			name:       "present title must meet length bounds",
			input:      UpdateTaskInput{Title: strPtr("ab")},
			violations: []string{msgTitleTooShort},
		},
		{
			name:       "present empty title is too short, not absent",
			input:      UpdateTaskInput{Title: strPtr("")},
			violations: []string{msgTitleTooShort},
		},
		{
			name:       "present status must normalize to a canonical member",
			input:      UpdateTaskInput{Status: strPtr("Done")},
			violations: []string{msgStatusInvalid},
		},
		{
			name: "all violations reported together",
			input: UpdateTaskInput{
				Title:  strPtr(strings.Repeat("a", 101)),
				Status: strPtr("nope"),
			},
			violations: []string{msgTitleTooLong, msgStatusInvalid},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.violations, ValidateUpdate(tt.input))
		})
	}
}
