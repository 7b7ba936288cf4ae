package store

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowanhs/trackline/internal/task"
)

var importNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func TestExportCSV_Golden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, fixtureTasks()))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "tasks_export", buf.Bytes())
}

func TestExportImport_RoundTrip(t *testing.T) {
	want := fixtureTasks()

	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, want))

	got, rowErrs, err := ImportCSV(&buf, importNow)
	require.NoError(t, err)
	require.Empty(t, rowErrs)
	require.Len(t, got, len(want))

	// Ids are regenerated on import; everything else must survive.
	for i := range want {
		assert.NotEmpty(t, got[i].ID)
		assert.NotEqual(t, want[i].ID, got[i].ID)
		got[i].ID = want[i].ID
	}
	assert.Equal(t, want, got)
}

func TestImportCSV_ColumnOrderIsFree(t *testing.T) {
	in := strings.Join([]string{
		"status,title,weight",
		"Blocked,Fix the gate,2",
		"",
	}, "\n")

	got, rowErrs, err := ImportCSV(strings.NewReader(in), importNow)
	require.NoError(t, err)
	require.Empty(t, rowErrs)
	require.Len(t, got, 1)
	assert.Equal(t, "Fix the gate", got[0].Title)
	assert.Equal(t, task.StatusBlocked, got[0].Status)
	assert.Equal(t, 2.0, got[0].Weight)
	assert.Equal(t, importNow, got[0].CreatedAt)
}

func TestImportCSV_DefaultsForMissingColumns(t *testing.T) {
	in := "title\nJust a title\n"

	got, rowErrs, err := ImportCSV(strings.NewReader(in), importNow)
	require.NoError(t, err)
	require.Empty(t, rowErrs)
	require.Len(t, got, 1)
	assert.Equal(t, 1.0, got[0].Weight)
	assert.Equal(t, task.StatusNotStarted, got[0].Status)
	assert.False(t, got[0].Completed)
	assert.True(t, got[0].DueDate.IsZero())
}

func TestImportCSV_MissingTitleColumn(t *testing.T) {
	in := "name,weight\nWrong header,1\n"

	_, _, err := ImportCSV(strings.NewReader(in), importNow)
	require.Error(t, err)
	assert.True(t, IsBadFormat(err))
}

func TestImportCSV_EmptyInput(t *testing.T) {
	_, _, err := ImportCSV(strings.NewReader(""), importNow)
	require.Error(t, err)
	assert.True(t, IsBadFormat(err))
}

func TestImportCSV_BadRowsSkippedAndReported(t *testing.T) {
	in := strings.Join([]string{
		"title,weight,due_date",
		"Good one,2,2025-04-01",
		",1,",                // empty title
		"Bad weight,zero,",   // unparsable weight
		"Bad date,1,04/2025", // unparsable date
		"Also good,3,",
		"",
	}, "\n")

	got, rowErrs, err := ImportCSV(strings.NewReader(in), importNow)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "Good one", got[0].Title)
	assert.Equal(t, "Also good", got[1].Title)

	require.Len(t, rowErrs, 3)
	assert.Equal(t, 3, rowErrs[0].Line)
	assert.Equal(t, 4, rowErrs[1].Line)
	assert.Equal(t, 5, rowErrs[2].Line)
	for _, re := range rowErrs {
		assert.Error(t, re.Err)
	}
}

func TestImportCSV_CompletedWinsOverStatus(t *testing.T) {
	in := "title,completed,status\nDone anyway,yes,In progress\n"

	got, rowErrs, err := ImportCSV(strings.NewReader(in), importNow)
	require.NoError(t, err)
	require.Empty(t, rowErrs)
	require.Len(t, got, 1)
	assert.True(t, got[0].Completed)
	assert.Equal(t, task.StatusDone, got[0].Status)
}

func TestImportCSV_BoolSpellings(t *testing.T) {
	in := strings.Join([]string{
		"title,completed",
		"a,1",
		"b,TRUE",
		"c,no",
		"d,maybe",
		"",
	}, "\n")

	got, rowErrs, err := ImportCSV(strings.NewReader(in), importNow)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.True(t, got[0].Completed)
	assert.True(t, got[1].Completed)
	assert.False(t, got[2].Completed)
	require.Len(t, rowErrs, 1)
	assert.Equal(t, 5, rowErrs[0].Line)
}

func TestImportCSV_TagSeparators(t *testing.T) {
	in := "title,tags\nTagged,\"school; math,urgent\"\n"

	got, rowErrs, err := ImportCSV(strings.NewReader(in), importNow)
	require.NoError(t, err)
	require.Empty(t, rowErrs)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"math", "school", "urgent"}, got[0].Tags)
}

func TestExportImportCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.csv")
	require.NoError(t, ExportCSVFile(path, fixtureTasks()))

	got, rowErrs, err := ImportCSVFile(path, importNow)
	require.NoError(t, err)
	require.Empty(t, rowErrs)
	assert.Len(t, got, 2)
}

func TestImportCSVFile_Missing(t *testing.T) {
	_, _, err := ImportCSVFile(filepath.Join(t.TempDir(), "nope.csv"), importNow)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}
