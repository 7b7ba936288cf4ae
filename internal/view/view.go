// Package view derives display orderings of a task collection. It never
// mutates its input: every call copies the slice before filtering and
// sorting, so the same inputs always produce the same output.
package view

import (
	"sort"
	"strings"

	"github.com/rowanhs/trackline/internal/task"
)

// SortKey selects the primary ordering of the view.
type SortKey string

const (
	SortByDue     SortKey = "due"
	SortByTitle   SortKey = "title"
	SortByWeight  SortKey = "weight"
	SortByHours   SortKey = "hours"
	SortByDone    SortKey = "done"
	SortByStatus  SortKey = "status"
	SortByCreated SortKey = "created"
)

// SortKeys returns all valid sort keys.
func SortKeys() []SortKey {
	return []SortKey{SortByDue, SortByTitle, SortByWeight, SortByHours, SortByDone, SortByStatus, SortByCreated}
}

// Valid reports whether k is a known sort key.
func (k SortKey) Valid() bool {
	for _, known := range SortKeys() {
		if k == known {
			return true
		}
	}
	return false
}

// Apply returns the tag-filtered, sorted view of the collection.
//
// An empty tagFilter admits every task; otherwise only tasks carrying the
// tag appear. The sort is stable, so ties keep the input (creation) order.
// Under SortByDue, tasks without a due date sort after dated ones in both
// directions. An unknown key falls back to SortByDue.
func Apply(tasks []task.Task, tagFilter string, key SortKey, ascending bool) []task.Task {
	out := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if tagFilter == "" || t.HasTag(tagFilter) {
			out = append(out, t)
		}
	}

	dueOrder := key == SortByDue || !key.Valid()
	cmp := comparator(key)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if dueOrder {
			// Undated tasks stay at the end in both directions.
			az, bz := a.DueDate.IsZero(), b.DueDate.IsZero()
			if az != bz {
				return bz
			}
		}
		c := cmp(a, b)
		if !ascending {
			c = -c
		}
		return c < 0
	})
	return out
}

// Tags returns the sorted unique tag inventory of the collection, suitable
// for populating a filter chooser.
func Tags(tasks []task.Task) []string {
	var all []string
	for _, t := range tasks {
		all = append(all, t.Tags...)
	}
	return task.NormalizeTags(all)
}

// comparator returns a three-way compare for the given key.
func comparator(key SortKey) func(a, b task.Task) int {
	switch key {
	case SortByTitle:
		return func(a, b task.Task) int {
			return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		}
	case SortByWeight:
		return func(a, b task.Task) int { return compareFloat(a.Weight, b.Weight) }
	case SortByHours:
		return func(a, b task.Task) int { return compareFloat(a.EstimatedHours, b.EstimatedHours) }
	case SortByDone:
		return func(a, b task.Task) int { return compareBool(a.Completed, b.Completed) }
	case SortByStatus:
		return func(a, b task.Task) int { return a.Status.Rank() - b.Status.Rank() }
	case SortByCreated:
		return func(a, b task.Task) int { return a.CreatedAt.Compare(b.CreatedAt) }
	default: // SortByDue
		return compareDue
	}
}

// compareDue orders by due date ascending. Undated tasks compare equal here;
// Apply pins them to the end before direction is applied.
func compareDue(a, b task.Task) int {
	switch {
	case a.DueDate.IsZero() || b.DueDate.IsZero():
		return 0
	case a.DueDate.Before(b.DueDate):
		return -1
	case b.DueDate.Before(a.DueDate):
		return 1
	default:
		return 0
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareBool(a, b bool) int {
	switch {
	case !a && b:
		return -1
	case a && !b:
		return 1
	default:
		return 0
	}
}
