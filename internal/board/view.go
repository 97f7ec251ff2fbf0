// Package board implements the client-side view of the task board: a
// flat task list partitioned into per-status buckets, each independently
// paginated, filtered by a live search term, and reconciled against the
// server after every mutation.
package board

import (
	"strings"

	"github.com/taskboard/taskboard-api/internal/domain"
)

// DefaultPageSize is the number of tasks shown per bucket page.
const DefaultPageSize = 2

// Filter returns the tasks whose title contains the term, matched
// case-insensitively. An empty term yields the input unchanged.
func Filter(tasks []domain.Task, term string) []domain.Task {
	if term == "" {
		return tasks
	}

	needle := strings.ToLower(term)
	filtered := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if strings.Contains(strings.ToLower(task.Title), needle) {
			filtered = append(filtered, task)
		}
	}
	return filtered
}

// Paginate returns the 1-indexed page slice of the given tasks. Pages past
// the end yield an empty slice.
func Paginate(tasks []domain.Task, page, pageSize int) []domain.Task {
	if page < 1 || pageSize < 1 {
		return nil
	}

	start := (page - 1) * pageSize
	if start >= len(tasks) {
		return nil
	}

	end := start + pageSize
	if end > len(tasks) {
		end = len(tasks)
	}
	return tasks[start:end]
}

// totalPages returns ceil(n / pageSize).
func totalPages(n, pageSize int) int {
	if n <= 0 || pageSize < 1 {
		return 0
	}
	return (n + pageSize - 1) / pageSize
}

// Bucket is the visible portion of one status column.
type Bucket struct {
	Status     domain.TaskStatus
	Tasks      []domain.Task
	Page       int
	TotalPages int
}

// View derives the per-status buckets from a task list. Each status keeps
// its own page cursor; changing the search term deliberately leaves the
// cursors where they are, matching the original client's behavior.
type View struct {
	pageSize int
	term     string
	tasks    []domain.Task
	pages    map[domain.TaskStatus]int
}

// NewView creates a View with the given page size, falling back to
// DefaultPageSize when the size is not positive.
func NewView(pageSize int) *View {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	pages := make(map[domain.TaskStatus]int, len(domain.AllStatuses()))
	for _, status := range domain.AllStatuses() {
		pages[status] = 1
	}

	return &View{
		pageSize: pageSize,
		pages:    pages,
	}
}

// SetTasks replaces the underlying task list, typically after a re-fetch.
// Page cursors are left untouched.
func (v *View) SetTasks(tasks []domain.Task) {
	v.tasks = tasks
}

// SetFilter updates the live search term. Page cursors are not reset.
func (v *View) SetFilter(term string) {
	v.term = term
}

// Term returns the current search term.
func (v *View) Term() string {
	return v.term
}

// Page returns the current 1-indexed page for the given status.
func (v *View) Page(status domain.TaskStatus) int {
	if page, ok := v.pages[status]; ok {
		return page
	}
	return 1
}

// TotalPages returns the page count for the given status bucket under the
// current filter.
func (v *View) TotalPages(status domain.TaskStatus) int {
	return totalPages(len(v.bucketTasks(status)), v.pageSize)
}

// SetPage moves the cursor for one status bucket. Requests outside
// [1, TotalPages] are no-ops; the cursor stays where it was.
func (v *View) SetPage(status domain.TaskStatus, page int) {
	if page < 1 || page > v.TotalPages(status) {
		return
	}
	v.pages[status] = page
}

// NextPage advances the cursor for one status bucket, clamped at the last
// page.
func (v *View) NextPage(status domain.TaskStatus) {
	v.SetPage(status, v.Page(status)+1)
}

// PrevPage moves the cursor for one status bucket back, clamped at the
// first page.
func (v *View) PrevPage(status domain.TaskStatus) {
	v.SetPage(status, v.Page(status)-1)
}

// Bucket returns the visible slice of one status column under the current
// filter and cursor.
func (v *View) Bucket(status domain.TaskStatus) Bucket {
	tasks := v.bucketTasks(status)
	page := v.Page(status)

	return Bucket{
		Status:     status,
		Tasks:      Paginate(tasks, page, v.pageSize),
		Page:       page,
		TotalPages: totalPages(len(tasks), v.pageSize),
	}
}

// Buckets returns every status column in board order.
func (v *View) Buckets() []Bucket {
	statuses := domain.AllStatuses()
	buckets := make([]Bucket, 0, len(statuses))
	for _, status := range statuses {
		buckets = append(buckets, v.Bucket(status))
	}
	return buckets
}

func (v *View) bucketTasks(status domain.TaskStatus) []domain.Task {
	var tasks []domain.Task
	for _, task := range Filter(v.tasks, v.term) {
		if task.Status == status {
			tasks = append(tasks, task)
		}
	}
	return tasks
}
