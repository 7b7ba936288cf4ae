package progress

import (
	"math"

	"github.com/rowanhs/trackline/internal/task"
)

// Compute returns the completion ratio of the collection in [0, 1].
//
// An empty collection is a valid state and yields 0, never an error or a
// division by zero. In ModeHours, a collection whose total estimated hours
// is zero falls back to the ModeCount formula.
func Compute(tasks []task.Task, mode Mode) float64 {
	switch mode {
	case ModeWeight:
		var done, total float64
		for _, t := range tasks {
			total += t.Weight
			if t.Completed {
				done += t.Weight
			}
		}
		return ratio(done, total)
	case ModeHours:
		var done, total float64
		for _, t := range tasks {
			total += t.EstimatedHours
			if t.Completed {
				done += t.EstimatedHours
			}
		}
		if total == 0 {
			// All-zero estimates would divide by zero; count is the
			// defined fallback.
			return Compute(tasks, ModeCount)
		}
		return ratio(done, total)
	default: // ModeCount
		var done float64
		for _, t := range tasks {
			if t.Completed {
				done++
			}
		}
		return ratio(done, float64(len(tasks)))
	}
}

// Percent converts a ratio to a display percentage, rounded to one decimal,
// half away from zero.
func Percent(r float64) float64 {
	return math.Round(r*1000) / 10
}

func ratio(done, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return done / total
}
