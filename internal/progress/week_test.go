package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rowanhs/trackline/internal/task"
)

func TestWeekAhead(t *testing.T) {
	today := task.NewDate(2025, time.March, 10)

	dueToday := mustTask(t, task.Draft{Title: "today", DueDate: today})
	dueDay3 := mustTask(t, task.Draft{Title: "day3", DueDate: today.AddDays(3)})
	dueDay6 := mustTask(t, task.Draft{Title: "day6", DueDate: today.AddDays(6)})
	overdue := mustTask(t, task.Draft{Title: "overdue", DueDate: today.AddDays(-1)})
	nextWeek := mustTask(t, task.Draft{Title: "next", DueDate: today.AddDays(7)})
	doneToday := mustTask(t, task.Draft{Title: "done", DueDate: today, Completed: true})
	undated := mustTask(t, task.Draft{Title: "undated"})

	buckets := WeekAhead([]task.Task{
		dueToday, dueDay3, dueDay6, overdue, nextWeek, doneToday, undated,
	}, today)

	assert.Len(t, buckets[0], 1)
	assert.Equal(t, "today", buckets[0][0].Title)
	assert.Len(t, buckets[3], 1)
	assert.Equal(t, "day3", buckets[3][0].Title)
	assert.Len(t, buckets[6], 1)
	assert.Equal(t, "day6", buckets[6][0].Title)

	for _, i := range []int{1, 2, 4, 5} {
		assert.Empty(t, buckets[i])
	}
}

func TestWeekAhead_PreservesInputOrderWithinBucket(t *testing.T) {
	today := task.NewDate(2025, time.March, 10)
	first := mustTask(t, task.Draft{Title: "first", DueDate: today})
	second := mustTask(t, task.Draft{Title: "second", DueDate: today})

	buckets := WeekAhead([]task.Task{first, second}, today)
	assert.Equal(t, []string{"first", "second"}, []string{buckets[0][0].Title, buckets[0][1].Title})
}
