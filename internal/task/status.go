package task

// Status tracks how far along a task is. It is user-facing state that
// coexists with the Completed flag; the two are reconciled on every
// construction and edit so that Completed is true exactly when Status is
// StatusDone.
type Status string

const (
	StatusNotStarted Status = "Not started"
	StatusInProgress Status = "In progress"
	StatusBlocked    Status = "Blocked"
	StatusDone       Status = "Done"
)

// statusOrder fixes the sort rank of each status. Declaration order matches
// the progression a task moves through.
var statusOrder = []Status{StatusNotStarted, StatusInProgress, StatusBlocked, StatusDone}

// Valid reports whether s is one of the four known statuses.
func (s Status) Valid() bool {
	for _, known := range statusOrder {
		if s == known {
			return true
		}
	}
	return false
}

// Rank returns the sort position of the status. Unknown statuses rank first.
func (s Status) Rank() int {
	for i, known := range statusOrder {
		if s == known {
			return i
		}
	}
	return 0
}

// Statuses returns all valid statuses in rank order.
func Statuses() []Status {
	out := make([]Status, len(statusOrder))
	copy(out, statusOrder)
	return out
}
