package board

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskboard/taskboard-api/internal/domain"
)

func makeTasks(status domain.TaskStatus, titles ...string) []domain.Task {
	tasks := make([]domain.Task, 0, len(titles))
	for i, title := range titles {
		tasks = append(tasks, domain.Task{
			ID:     int64(i + 1),
			Title:  title,
			Status: status,
		})
	}
	return tasks
}

func TestFilter(t *testing.T) {
	t.Parallel()

	tasks := makeTasks(domain.TaskStatusPending,
		"Buy milk", "buy bread", "Walk the dog", "BUY cheese")

	// Case-insensitive substring match on title
	filtered := Filter(tasks, "buy")
	require.Len(t, filtered, 3)
	assert.Equal(t, "Buy milk", filtered[0].Title)
	assert.Equal(t, "buy bread", filtered[1].Title)
	assert.Equal(t, "BUY cheese", filtered[2].Title)

	// Empty term is the identity
	assert.Equal(t, tasks, Filter(tasks, ""))

	// No match yields an empty slice
	assert.Empty(t, Filter(tasks, "zzz"))
}

func TestPaginate(t *testing.T) {
	t.Parallel()

	tasks := makeTasks(domain.TaskStatusPending, "a1", "a2", "a3", "a4", "a5")

	assert.Len(t, Paginate(tasks, 1, 2), 2)
	assert.Len(t, Paginate(tasks, 2, 2), 2)

	// The last page holds the remainder
	last := Paginate(tasks, 3, 2)
	require.Len(t, last, 1)
	assert.Equal(t, "a5", last[0].Title)

	// Pages past the end are empty
	assert.Empty(t, Paginate(tasks, 4, 2))
	assert.Empty(t, Paginate(tasks, 0, 2))
}

func TestViewPageClamping(t *testing.T) {
	t.Parallel()

	view := NewView(2)
	view.SetTasks(makeTasks(domain.TaskStatusPending, "a1", "a2", "a3", "a4", "a5"))

	// 5 items at 2 per page is 3 pages
	assert.Equal(t, 3, view.TotalPages(domain.TaskStatusPending))

	view.SetPage(domain.TaskStatusPending, 3)
	bucket := view.Bucket(domain.TaskStatusPending)
	assert.Equal(t, 3, bucket.Page)
	require.Len(t, bucket.Tasks, 1)
	assert.Equal(t, "a5", bucket.Tasks[0].Title)

	// Moving past the last page is a no-op; the cursor stays at 3
	view.SetPage(domain.TaskStatusPending, 4)
	assert.Equal(t, 3, view.Page(domain.TaskStatusPending))
	view.NextPage(domain.TaskStatusPending)
	assert.Equal(t, 3, view.Page(domain.TaskStatusPending))

	// Moving before the first page is also a no-op
	view.SetPage(domain.TaskStatusPending, 1)
	view.PrevPage(domain.TaskStatusPending)
	assert.Equal(t, 1, view.Page(domain.TaskStatusPending))
}

func TestViewBucketsAreIndependentlyPaginated(t *testing.T) {
	t.Parallel()

	var tasks []domain.Task
	for i := 0; i < 4; i++ {
		tasks = append(tasks, domain.Task{
			ID: int64(i + 1), Title: fmt.Sprintf("pending %d", i), Status: domain.TaskStatusPending,
		})
	}
	for i := 0; i < 3; i++ {
		tasks = append(tasks, domain.Task{
			ID: int64(i + 10), Title: fmt.Sprintf("done %d", i), Status: domain.TaskStatusCompleted,
		})
	}

	view := NewView(2)
	view.SetTasks(tasks)

	view.NextPage(domain.TaskStatusPending)
	assert.Equal(t, 2, view.Page(domain.TaskStatusPending))
	assert.Equal(t, 1, view.Page(domain.TaskStatusCompleted))
	assert.Equal(t, 1, view.Page(domain.TaskStatusInProgress))

	buckets := view.Buckets()
	require.Len(t, buckets, 3)
	assert.Equal(t, domain.TaskStatusPending, buckets[0].Status)
	assert.Len(t, buckets[0].Tasks, 2)
	assert.Empty(t, buckets[1].Tasks)
	assert.Len(t, buckets[2].Tasks, 2)
}

func TestViewFilterDoesNotResetCursors(t *testing.T) {
	t.Parallel()

	view := NewView(2)
	view.SetTasks(makeTasks(domain.TaskStatusPending, "a1", "a2", "a3", "a4", "a5"))
	view.SetPage(domain.TaskStatusPending, 3)

	// Changing the term leaves the cursor where it was, even when the
	// filtered bucket no longer reaches that page.
	view.SetFilter("a1")
	assert.Equal(t, 3, view.Page(domain.TaskStatusPending))
	assert.Empty(t, view.Bucket(domain.TaskStatusPending).Tasks)

	view.SetFilter("")
	bucket := view.Bucket(domain.TaskStatusPending)
	require.Len(t, bucket.Tasks, 1)
	assert.Equal(t, "a5", bucket.Tasks[0].Title)
}

func TestViewFilterAppliesBeforePartition(t *testing.T) {
	t.Parallel()

	view := NewView(2)
	view.SetTasks([]domain.Task{
		{ID: 1, Title: "Buy milk", Status: domain.TaskStatusPending},
		{ID: 2, Title: "Buy bread", Status: domain.TaskStatusCompleted},
		{ID: 3, Title: "Walk the dog", Status: domain.TaskStatusPending},
	})
	view.SetFilter("buy")

	pending := view.Bucket(domain.TaskStatusPending)
	require.Len(t, pending.Tasks, 1)
	assert.Equal(t, "Buy milk", pending.Tasks[0].Title)

	completed := view.Bucket(domain.TaskStatusCompleted)
	require.Len(t, completed.Tasks, 1)
	assert.Equal(t, "Buy bread", completed.Tasks[0].Title)
}
