package state

import (
	"strings"

	"github.com/rowanhs/trackline/internal/task"
)

// Add appends a task to the collection, enforcing id uniqueness.
func (s *AppState) Add(t task.Task) error {
	for _, have := range s.Tasks {
		if have.ID == t.ID {
			return newDuplicateError(t.ID)
		}
	}
	s.Tasks = append(s.Tasks, t)
	return nil
}

// Find resolves a full id or unique prefix to the matching task.
func (s *AppState) Find(idOrPrefix string) (task.Task, error) {
	i, err := s.indexOf(idOrPrefix)
	if err != nil {
		return task.Task{}, err
	}
	return s.Tasks[i], nil
}

// Update applies a change to the task matching idOrPrefix, in place.
// Validation failures leave the collection untouched.
func (s *AppState) Update(idOrPrefix string, c task.Change) (task.Task, error) {
	i, err := s.indexOf(idOrPrefix)
	if err != nil {
		return task.Task{}, err
	}
	updated, err := s.Tasks[i].Apply(c)
	if err != nil {
		return task.Task{}, err
	}
	s.Tasks[i] = updated
	return updated, nil
}

// Remove deletes the task matching idOrPrefix. Order of the remaining
// tasks is preserved.
func (s *AppState) Remove(idOrPrefix string) (task.Task, error) {
	i, err := s.indexOf(idOrPrefix)
	if err != nil {
		return task.Task{}, err
	}
	removed := s.Tasks[i]
	s.Tasks = append(s.Tasks[:i], s.Tasks[i+1:]...)
	return removed, nil
}

// Clear deletes every task. Settings and goal are untouched.
func (s *AppState) Clear() {
	s.Tasks = nil
}

// indexOf finds the single task whose id equals or starts with idOrPrefix.
// An exact match wins even when it is also a prefix of other ids.
func (s *AppState) indexOf(idOrPrefix string) (int, error) {
	if idOrPrefix == "" {
		return 0, newNotFoundError(idOrPrefix)
	}
	matches := 0
	last := -1
	for i, t := range s.Tasks {
		if t.ID == idOrPrefix {
			return i, nil
		}
		if strings.HasPrefix(t.ID, idOrPrefix) {
			matches++
			last = i
		}
	}
	switch matches {
	case 0:
		return 0, newNotFoundError(idOrPrefix)
	case 1:
		return last, nil
	default:
		return 0, newAmbiguousError(idOrPrefix, matches)
	}
}
