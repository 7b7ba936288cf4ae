package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowanhs/trackline/internal/task"
)

var testNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func mustTask(t *testing.T, d task.Draft) task.Task {
	t.Helper()
	tk, err := task.New(d, testNow)
	require.NoError(t, err)
	return tk
}

func TestCompute_EmptyCollection(t *testing.T) {
	for _, mode := range Modes() {
		t.Run(string(mode), func(t *testing.T) {
			assert.Equal(t, 0.0, Compute(nil, mode))
		})
	}
}

func TestCompute_Count(t *testing.T) {
	tasks := []task.Task{
		mustTask(t, task.Draft{Title: "a", Completed: true}),
		mustTask(t, task.Draft{Title: "b"}),
		mustTask(t, task.Draft{Title: "c"}),
		mustTask(t, task.Draft{Title: "d", Completed: true}),
	}
	assert.Equal(t, 0.5, Compute(tasks, ModeCount))
}

func TestCompute_Weight(t *testing.T) {
	// Weights 2 (done) and 1 (open) => 2/3.
	tasks := []task.Task{
		mustTask(t, task.Draft{Title: "a", Weight: 2, Completed: true}),
		mustTask(t, task.Draft{Title: "b", Weight: 1}),
	}
	assert.InDelta(t, 2.0/3.0, Compute(tasks, ModeWeight), 1e-12)
}

func TestCompute_Hours(t *testing.T) {
	tasks := []task.Task{
		mustTask(t, task.Draft{Title: "a", EstimatedHours: 6, Completed: true}),
		mustTask(t, task.Draft{Title: "b", EstimatedHours: 2}),
	}
	assert.Equal(t, 0.75, Compute(tasks, ModeHours))
}

func TestCompute_HoursFallsBackToCount(t *testing.T) {
	// All-zero estimates: hours mode must use the count formula instead of
	// dividing by zero.
	tasks := []task.Task{
		mustTask(t, task.Draft{Title: "a", Completed: true}),
		mustTask(t, task.Draft{Title: "b"}),
		mustTask(t, task.Draft{Title: "c"}),
	}
	assert.InDelta(t, 1.0/3.0, Compute(tasks, ModeHours), 1e-12)
}

func TestCompute_RangeInvariant(t *testing.T) {
	tasks := []task.Task{
		mustTask(t, task.Draft{Title: "a", Weight: 9.5, EstimatedHours: 0.25, Completed: true}),
		mustTask(t, task.Draft{Title: "b", Weight: 0.1, EstimatedHours: 40}),
		mustTask(t, task.Draft{Title: "c", Weight: 3, Completed: true}),
	}
	for _, mode := range Modes() {
		r := Compute(tasks, mode)
		assert.GreaterOrEqual(t, r, 0.0, "mode %s", mode)
		assert.LessOrEqual(t, r, 1.0, "mode %s", mode)
	}
}

func TestPercent_Rounding(t *testing.T) {
	assert.Equal(t, 66.7, Percent(2.0/3.0))
	assert.Equal(t, 50.0, Percent(0.5))
	assert.Equal(t, 0.0, Percent(0))
	assert.Equal(t, 100.0, Percent(1))
	assert.Equal(t, 33.3, Percent(1.0/3.0))
}

func TestParseMode(t *testing.T) {
	for _, mode := range Modes() {
		got, err := ParseMode(string(mode))
		require.NoError(t, err)
		assert.Equal(t, mode, got)
	}

	_, err := ParseMode("Weighted")
	assert.Error(t, err)
	_, err = ParseMode("")
	assert.Error(t, err)
}
