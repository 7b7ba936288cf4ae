package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowanhs/trackline/internal/progress"
	"github.com/rowanhs/trackline/internal/task"
	"github.com/rowanhs/trackline/internal/view"
)

var testNow = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

func mustTask(t *testing.T, title string) task.Task {
	t.Helper()
	tk, err := task.New(task.Draft{Title: title}, testNow)
	require.NoError(t, err)
	return tk
}

func TestDefault(t *testing.T) {
	st := Default()
	assert.Empty(t, st.Tasks)
	assert.Equal(t, progress.ModeWeight, st.Settings.ProgressMode)
	assert.Equal(t, view.SortByDue, st.Settings.SortKey)
	assert.True(t, st.Settings.SortAscending)
	assert.True(t, st.Settings.Autosave)
	assert.True(t, st.Settings.NotifyEnabled)
	assert.Equal(t, 3, st.Settings.NotifyDays)
}

func TestAdd_RejectsDuplicateID(t *testing.T) {
	st := Default()
	tk := mustTask(t, "a")
	require.NoError(t, st.Add(tk))

	err := st.Add(tk)
	require.Error(t, err)
	var se *Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, ErrCodeDuplicateID, se.Code)
}

func TestFind_ByPrefix(t *testing.T) {
	st := Default()
	tk := mustTask(t, "a")
	require.NoError(t, st.Add(tk))

	got, err := st.Find(tk.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, tk.ID, got.ID)
}

func TestFind_NotFound(t *testing.T) {
	st := Default()
	require.NoError(t, st.Add(mustTask(t, "a")))

	_, err := st.Find("zzzzzzzz")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	_, err = st.Find("")
	assert.True(t, IsNotFound(err))
}

func TestFind_AmbiguousPrefix(t *testing.T) {
	st := Default()
	a := mustTask(t, "a")
	b := mustTask(t, "b")
	a.ID = "aaaa-1111"
	b.ID = "aaaa-2222"
	require.NoError(t, st.Add(a))
	require.NoError(t, st.Add(b))

	_, err := st.Find("aaaa")
	require.Error(t, err)
	assert.True(t, IsAmbiguous(err))
}

func TestFind_ExactMatchBeatsPrefix(t *testing.T) {
	st := Default()
	a := mustTask(t, "a")
	b := mustTask(t, "b")
	a.ID = "abc"
	b.ID = "abcdef"
	require.NoError(t, st.Add(a))
	require.NoError(t, st.Add(b))

	got, err := st.Find("abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", got.ID)
}

func TestUpdate(t *testing.T) {
	st := Default()
	tk := mustTask(t, "before")
	require.NoError(t, st.Add(tk))

	title := "after"
	got, err := st.Update(tk.ID, task.Change{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "after", got.Title)
	assert.Equal(t, "after", st.Tasks[0].Title)
}

func TestUpdate_InvalidChangeLeavesCollection(t *testing.T) {
	st := Default()
	tk := mustTask(t, "keep")
	require.NoError(t, st.Add(tk))

	empty := "   "
	_, err := st.Update(tk.ID, task.Change{Title: &empty})
	require.Error(t, err)
	assert.True(t, task.IsValidationError(err))
	assert.Equal(t, "keep", st.Tasks[0].Title)
}

func TestRemove_PreservesOrder(t *testing.T) {
	st := Default()
	a, b, c := mustTask(t, "a"), mustTask(t, "b"), mustTask(t, "c")
	for _, tk := range []task.Task{a, b, c} {
		require.NoError(t, st.Add(tk))
	}

	removed, err := st.Remove(b.ID)
	require.NoError(t, err)
	assert.Equal(t, "b", removed.Title)
	require.Len(t, st.Tasks, 2)
	assert.Equal(t, "a", st.Tasks[0].Title)
	assert.Equal(t, "c", st.Tasks[1].Title)
}

func TestClear(t *testing.T) {
	st := Default()
	require.NoError(t, st.Add(mustTask(t, "a")))
	st.Goal = Goal{Text: "ship it"}

	st.Clear()
	assert.Empty(t, st.Tasks)
	assert.Equal(t, "ship it", st.Goal.Text, "clear only removes tasks")
}
