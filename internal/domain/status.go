package domain

import "strings"

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

// Canonical task statuses, in board column order.
const (
	TaskStatusPending    TaskStatus = "Pending"
	TaskStatusInProgress TaskStatus = "InProgress"
	TaskStatusCompleted  TaskStatus = "Completed"
)

// statusSynonyms maps folded spellings, including the Portuguese forms
// accepted by the original clients, to canonical statuses. Keys must be
// lowercase; accented and unaccented variants are both listed so lookup
// stays a plain map access.
var statusSynonyms = map[string]TaskStatus{
	"pending":      TaskStatusPending,
	"pendente":     TaskStatusPending,
	"inprogress":   TaskStatusInProgress,
	"in progress":  TaskStatusInProgress,
	"em andamento": TaskStatusInProgress,
	"em progresso": TaskStatusInProgress,
	"completed":    TaskStatusCompleted,
	"concluido":    TaskStatusCompleted,
	"concluído":    TaskStatusCompleted,
	"concluida":    TaskStatusCompleted,
	"concluída":    TaskStatusCompleted,
	"finalizado":   TaskStatusCompleted,
	"finalizada":   TaskStatusCompleted,
	"completo":     TaskStatusCompleted,
	"completa":     TaskStatusCompleted,
}

// NormalizeStatus maps known spellings and localized synonyms of a status
// to its canonical value. Matching is case-insensitive. Unrecognized input
// is returned unchanged rather than rejected; membership is enforced
// separately by IsValid, so a truly invalid status surfaces as a clear
// validation error instead of being silently defaulted.
func NormalizeStatus(raw string) TaskStatus {
	if canonical, ok := statusSynonyms[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return canonical
	}
	return TaskStatus(raw)
}

// IsValid reports whether the status is one of the canonical members.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// AllStatuses returns the canonical statuses in board column order.
func AllStatuses() []TaskStatus {
	return []TaskStatus{TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted}
}
