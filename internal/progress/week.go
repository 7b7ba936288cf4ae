package progress

import "github.com/rowanhs/trackline/internal/task"

// WeekDays is the width of the weekly view window.
const WeekDays = 7

// WeekAhead buckets incomplete tasks due in [today, today+6] by days until
// due: index 0 is today, index 6 the last day of the window. Completed
// tasks, undated tasks, and tasks outside the window are excluded. Bucket
// order follows input order.
func WeekAhead(tasks []task.Task, today task.Date) [WeekDays][]task.Task {
	var buckets [WeekDays][]task.Task
	for _, t := range tasks {
		if t.Completed || t.DueDate.IsZero() {
			continue
		}
		days := t.DueDate.DaysUntil(today)
		if days < 0 || days >= WeekDays {
			continue
		}
		buckets[days] = append(buckets[days], t)
	}
	return buckets
}
