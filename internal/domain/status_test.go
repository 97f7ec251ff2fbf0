package domain

import "testing"

func TestNormalizeStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want TaskStatus
	}{
		// Canonical spellings, any case
		{"Pending", TaskStatusPending},
		{"pending", TaskStatusPending},
		{"PENDING", TaskStatusPending},
		{"InProgress", TaskStatusInProgress},
		{"inprogress", TaskStatusInProgress},
		{"in progress", TaskStatusInProgress},
		{"Completed", TaskStatusCompleted},

		// Portuguese synonyms accepted by the original clients
		{"Pendente", TaskStatusPending},
		{"pendente", TaskStatusPending},
		{"Em Andamento", TaskStatusInProgress},
		{"em andamento", TaskStatusInProgress},
		{"Em Progresso", TaskStatusInProgress},
		{"Concluido", TaskStatusCompleted},
		{"Concluído", TaskStatusCompleted},
		{"CONCLUÍDO", TaskStatusCompleted},
		{"concluida", TaskStatusCompleted},
		{"Concluída", TaskStatusCompleted},
		{"Finalizado", TaskStatusCompleted},
		{"Finalizada", TaskStatusCompleted},
		{"Completo", TaskStatusCompleted},
		{"Completa", TaskStatusCompleted},

		// Surrounding whitespace is tolerated
		{"  Pendente  ", TaskStatusPending},
	}

	for _, tt := range tests {
		if got := NormalizeStatus(tt.raw); got != tt.want {
			t.Errorf("NormalizeStatus(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeStatusPassesThroughUnknownInput(t *testing.T) {
	t.Parallel()

	// Unrecognized input is not rejected here; the strict membership
	// check downstream is the actual gate.
	for _, raw := range []string{"Done", "archived", "", "42"} {
		if got := NormalizeStatus(raw); got != TaskStatus(raw) {
			t.Errorf("NormalizeStatus(%q) = %q, want passthrough", raw, got)
		}
	}
}

func TestTaskStatusIsValid(t *testing.T) {
	t.Parallel()

	for _, status := range AllStatuses() {
		if !status.IsValid() {
			t.Errorf("expected %q to be valid", status)
		}
	}

	for _, status := range []TaskStatus{"", "Done", "pending", "Pendente"} {
		if status.IsValid() {
			t.Errorf("expected %q to be invalid", status)
		}
	}
}
