package progress

import "github.com/rowanhs/trackline/internal/task"

// Summary is the one-line digest shown under the progress bar: the ratio,
// the done/total pair in the mode's unit, hour totals, and the nearest
// deadline across the collection.
type Summary struct {
	Mode           Mode      `json:"mode"`
	Ratio          float64   `json:"ratio"`
	Done           float64   `json:"done"`
	Total          float64   `json:"total"`
	Unit           string    `json:"unit"`
	TotalHours     float64   `json:"total_hours"`
	RemainingHours float64   `json:"remaining_hours"`
	NearestDue     task.Date `json:"nearest_due"`
}

// Summarize computes the digest for a collection under the given mode.
func Summarize(tasks []task.Task, mode Mode) Summary {
	s := Summary{Mode: mode, Ratio: Compute(tasks, mode)}

	for _, t := range tasks {
		s.TotalHours += t.EstimatedHours
		if !t.Completed {
			s.RemainingHours += t.EstimatedHours
		}
		if !t.DueDate.IsZero() && (s.NearestDue.IsZero() || t.DueDate.Before(s.NearestDue)) {
			s.NearestDue = t.DueDate
		}
	}

	switch mode {
	case ModeWeight:
		s.Unit = "weight"
		for _, t := range tasks {
			s.Total += t.Weight
			if t.Completed {
				s.Done += t.Weight
			}
		}
	case ModeHours:
		s.Unit = "hrs"
		for _, t := range tasks {
			s.Total += t.EstimatedHours
			if t.Completed {
				s.Done += t.EstimatedHours
			}
		}
		if s.Total == 0 {
			// Mirror Compute's fallback so Done/Total agree with Ratio.
			s.Unit = "items"
			for _, t := range tasks {
				s.Total++
				if t.Completed {
					s.Done++
				}
			}
		}
	default:
		s.Unit = "items"
		for _, t := range tasks {
			s.Total++
			if t.Completed {
				s.Done++
			}
		}
	}

	return s
}
