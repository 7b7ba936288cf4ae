package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rowanhs/trackline/internal/task"
)

func TestClassify(t *testing.T) {
	today := task.NewDate(2025, time.March, 10)

	tests := []struct {
		name string
		due  task.Date
		want Urgency
	}{
		{"yesterday", today.AddDays(-1), UrgencyOverdue},
		{"long past", today.AddDays(-100), UrgencyOverdue},
		{"today", today, UrgencyToday},
		{"tomorrow", today.AddDays(1), UrgencyTomorrow},
		{"day 2", today.AddDays(2), UrgencySoon},
		{"day 5", today.AddDays(5), UrgencySoon},
		{"day 7 inclusive", today.AddDays(7), UrgencySoon},
		{"day 8", today.AddDays(8), UrgencyLater},
		{"day 30", today.AddDays(30), UrgencyLater},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := mustTask(t, task.Draft{Title: "t", DueDate: tt.due})
			assert.Equal(t, tt.want, Classify(tk, today))
		})
	}
}

func TestClassify_NoDeadline(t *testing.T) {
	today := task.NewDate(2025, time.March, 10)
	tk := mustTask(t, task.Draft{Title: "t"})
	assert.Equal(t, UrgencyNone, Classify(tk, today))
}

func TestClassify_CompletedCarriesNoUrgency(t *testing.T) {
	today := task.NewDate(2025, time.March, 10)
	tk := mustTask(t, task.Draft{Title: "t", DueDate: today.AddDays(-5), Completed: true})
	assert.Equal(t, UrgencyNone, Classify(tk, today))
}

func TestClassify_Deterministic(t *testing.T) {
	today := task.NewDate(2025, time.March, 10)
	tk := mustTask(t, task.Draft{Title: "t", DueDate: today.AddDays(3)})

	first := Classify(tk, today)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(tk, today))
	}
}

func TestUrgency_Badge(t *testing.T) {
	assert.Equal(t, "🔥 today", UrgencyToday.Badge())
	assert.Equal(t, "", UrgencyNone.Badge())
}
