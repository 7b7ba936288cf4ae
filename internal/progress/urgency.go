package progress

import "github.com/rowanhs/trackline/internal/task"

// Urgency classifies how pressing a task's deadline is relative to a given
// day. Completed tasks and tasks without a deadline carry no urgency.
type Urgency string

const (
	UrgencyNone     Urgency = "none"
	UrgencyOverdue  Urgency = "overdue"
	UrgencyToday    Urgency = "today"
	UrgencyTomorrow Urgency = "tomorrow"
	UrgencySoon     Urgency = "soon"
	UrgencyLater    Urgency = "later"
)

// soonHorizonDays is the last day (inclusive) that still counts as "soon".
const soonHorizonDays = 7

// Classify buckets a task's deadline relative to today:
//
//	overdue   due before today
//	today     due today
//	tomorrow  due tomorrow
//	soon      due within the next 7 days (day 2 through day 7)
//	later     due after that
//	none      no deadline, or the task is already completed
//
// The result depends only on the arguments.
func Classify(t task.Task, today task.Date) Urgency {
	if t.Completed || t.DueDate.IsZero() {
		return UrgencyNone
	}
	switch days := t.DueDate.DaysUntil(today); {
	case days < 0:
		return UrgencyOverdue
	case days == 0:
		return UrgencyToday
	case days == 1:
		return UrgencyTomorrow
	case days <= soonHorizonDays:
		return UrgencySoon
	default:
		return UrgencyLater
	}
}

// Badge renders an urgency as the short marker shown next to a task.
func (u Urgency) Badge() string {
	switch u {
	case UrgencyOverdue:
		return "⏰ overdue"
	case UrgencyToday:
		return "🔥 today"
	case UrgencyTomorrow:
		return "⚠ tomorrow"
	case UrgencySoon:
		return "⏳ soon"
	case UrgencyLater:
		return "• later"
	default:
		return ""
	}
}
