package task

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

// Task is one tracked assignment. ID and CreatedAt are assigned at creation
// and never change; everything else is editable through Apply.
type Task struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Weight         float64   `json:"weight"`
	EstimatedHours float64   `json:"estimated_hours"`
	DueDate        Date      `json:"due_date"`
	Tags           []string  `json:"tags,omitempty"`
	Status         Status    `json:"status"`
	Completed      bool      `json:"completed"`
	CreatedAt      time.Time `json:"created_at"`
}

// Draft holds the user-settable fields for a new task.
// Zero-value conveniences: Weight 0 means "default weight 1", Status ""
// derives from Completed.
type Draft struct {
	Title          string
	Weight         float64
	EstimatedHours float64
	DueDate        Date
	Tags           []string
	Status         Status
	Completed      bool
}

// Change is a partial edit: nil fields are left untouched.
// There is deliberately no way to express a change to ID or CreatedAt.
type Change struct {
	Title          *string
	Weight         *float64
	EstimatedHours *float64
	DueDate        *Date // pointing at the zero Date clears the deadline
	Tags           *[]string
	Status         *Status
	Completed      *bool
}

// New validates a draft and mints a task with a fresh ID and the given
// creation instant. The instant is passed in rather than read from a clock
// so callers (and tests) control it.
func New(d Draft, now time.Time) (Task, error) {
	if d.Weight == 0 {
		d.Weight = 1
	}
	t := Task{
		ID:             uuid.NewString(),
		Title:          normalizeTitle(d.Title),
		Weight:         d.Weight,
		EstimatedHours: d.EstimatedHours,
		DueDate:        d.DueDate,
		Tags:           NormalizeTags(d.Tags),
		Status:         d.Status,
		Completed:      d.Completed,
		CreatedAt:      now.UTC(),
	}
	if t.Status == "" {
		t.Status = StatusNotStarted
	}
	// A draft may set either side of the done state; make them agree.
	if t.Completed {
		t.Status = StatusDone
	} else if t.Status == StatusDone {
		t.Completed = true
	}
	if err := t.validate(); err != nil {
		return Task{}, err
	}
	return t, nil
}

// Apply returns a copy of the task with the change applied and re-validated.
// The receiver is never mutated; on error the original value stands.
func (t Task) Apply(c Change) (Task, error) {
	statusChanged := false
	completedChanged := false

	if c.Title != nil {
		t.Title = normalizeTitle(*c.Title)
	}
	if c.Weight != nil {
		t.Weight = *c.Weight
	}
	if c.EstimatedHours != nil {
		t.EstimatedHours = *c.EstimatedHours
	}
	if c.DueDate != nil {
		t.DueDate = *c.DueDate
	}
	if c.Tags != nil {
		t.Tags = NormalizeTags(*c.Tags)
	}
	if c.Status != nil && *c.Status != t.Status {
		t.Status = *c.Status
		statusChanged = true
	}
	if c.Completed != nil && *c.Completed != t.Completed {
		t.Completed = *c.Completed
		completedChanged = true
	}

	// Completed wins when both moved in one edit.
	switch {
	case completedChanged:
		if t.Completed {
			t.Status = StatusDone
		} else if t.Status == StatusDone {
			t.Status = StatusNotStarted
		}
	case statusChanged:
		t.Completed = t.Status == StatusDone
	}

	if err := t.validate(); err != nil {
		return Task{}, err
	}
	return t, nil
}

// HasTag reports whether the task carries the given tag.
func (t Task) HasTag(tag string) bool {
	for _, have := range t.Tags {
		if have == tag {
			return true
		}
	}
	return false
}

// validate enforces the record invariants.
func (t Task) validate() error {
	if t.Title == "" {
		return newValidationError("title", "must not be empty")
	}
	if t.Weight <= 0 {
		return newValidationError("weight", "must be greater than 0, got %v", t.Weight)
	}
	if t.EstimatedHours < 0 {
		return newValidationError("estimated_hours", "must not be negative, got %v", t.EstimatedHours)
	}
	if !t.Status.Valid() {
		return newValidationError("status", "unknown status %q", string(t.Status))
	}
	if t.Completed != (t.Status == StatusDone) {
		return newValidationError("status", "completed flag disagrees with status %q", string(t.Status))
	}
	return nil
}

func normalizeTitle(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
