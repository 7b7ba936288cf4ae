// Package notify scans the task list for deadlines that deserve a nudge.
//
// A Scanner is session-scoped: each task is reported at most once per
// scanner, so a long-running session does not repeat the same reminder on
// every refresh. Scanning never mutates tasks.
package notify

import (
	"sort"

	"github.com/rowanhs/trackline/internal/task"
)

// DefaultHorizonDays is how far ahead a deadline counts as "due soon".
const DefaultHorizonDays = 3

// Beeper emits an audible cue when a scan finds something. The terminal
// bell implementation lives in the presentation layer; tests plug in a
// recorder.
type Beeper interface {
	Beep()
}

// Report lists the tasks a single scan flagged, split by severity.
// Both slices are ordered by due date, earliest first.
type Report struct {
	Overdue []task.Task
	DueSoon []task.Task
}

// Empty reports whether the scan flagged nothing.
func (r Report) Empty() bool {
	return len(r.Overdue) == 0 && len(r.DueSoon) == 0
}

// Scanner finds open tasks with pressing deadlines.
type Scanner struct {
	// Horizon is the look-ahead window in days; 0 means DefaultHorizonDays.
	Horizon int
	// Beeper, when set, is rung once per scan that flags anything new.
	Beeper Beeper

	seen map[string]struct{}
}

// NewScanner returns a scanner with the given look-ahead window.
func NewScanner(horizonDays int, b Beeper) *Scanner {
	return &Scanner{Horizon: horizonDays, Beeper: b}
}

// Scan flags open tasks that are overdue or due within the horizon as of
// today. Tasks already flagged by this scanner are skipped; completed and
// undated tasks never trigger.
func (s *Scanner) Scan(tasks []task.Task, today task.Date) Report {
	horizon := s.Horizon
	if horizon <= 0 {
		horizon = DefaultHorizonDays
	}
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}

	var rep Report
	for _, t := range tasks {
		if t.Completed || t.DueDate.IsZero() {
			continue
		}
		if _, done := s.seen[t.ID]; done {
			continue
		}
		days := t.DueDate.DaysUntil(today)
		switch {
		case days < 0:
			rep.Overdue = append(rep.Overdue, t)
		case days <= horizon:
			rep.DueSoon = append(rep.DueSoon, t)
		default:
			continue
		}
		s.seen[t.ID] = struct{}{}
	}

	byDue := func(ts []task.Task) {
		sort.SliceStable(ts, func(i, j int) bool {
			return ts[i].DueDate.Before(ts[j].DueDate)
		})
	}
	byDue(rep.Overdue)
	byDue(rep.DueSoon)

	if !rep.Empty() && s.Beeper != nil {
		s.Beeper.Beep()
	}
	return rep
}

// Reset forgets which tasks were already flagged, so the next Scan reports
// everything again.
func (s *Scanner) Reset() {
	s.seen = nil
}
