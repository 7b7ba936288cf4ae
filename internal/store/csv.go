package store

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rowanhs/trackline/internal/task"
)

// csvHeader is the fixed, documented column order of the CSV format.
// The task id is deliberately absent: ids are regenerated on import.
var csvHeader = []string{
	"title", "completed", "weight", "estimated_hours",
	"due_date", "status", "tags", "created_at",
}

// RowError reports one CSV row that failed validation and was skipped.
type RowError struct {
	Line int
	Err  error
}

// Error implements the error interface.
func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Line, e.Err)
}

// Unwrap exposes the underlying cause.
func (e RowError) Unwrap() error {
	return e.Err
}

// MarshalJSON renders the row error with its message flattened, since the
// wrapped error itself has no JSON shape.
func (e RowError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Line    int    `json:"line"`
		Message string `json:"message"`
	}{Line: e.Line, Message: e.Err.Error()})
}

// ExportCSV writes the task list as CSV in the fixed column order.
// Output is deterministic: the same tasks always produce the same bytes,
// and the result round-trips through ImportCSV modulo regenerated ids.
func ExportCSV(w io.Writer, tasks []task.Task) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, t := range tasks {
		rec := []string{
			t.Title,
			strconv.FormatBool(t.Completed),
			formatFloat(t.Weight),
			formatFloat(t.EstimatedHours),
			t.DueDate.String(),
			string(t.Status),
			task.JoinTags(t.Tags),
			t.CreatedAt.Format(time.RFC3339Nano),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportCSVFile writes the task list to a file, atomically like Save.
func ExportCSVFile(path string, tasks []task.Task) error {
	var buf bytes.Buffer
	if err := ExportCSV(&buf, tasks); err != nil {
		return wrapError(ErrCodeWriteFailed, path, "encode CSV", err)
	}
	if err := writeFileAtomic(path, buf.Bytes()); err != nil {
		return wrapError(ErrCodeWriteFailed, path, "write CSV", err)
	}
	return nil
}

// ImportCSV parses tasks from CSV.
//
// The header row is required and must include a "title" column; anything
// else is BAD_FORMAT. Column order is free and unknown columns are ignored.
// Each row goes through the task record validation rules; a row that fails
// is skipped and reported in the returned RowError list, never fatal to the
// import. Rows without a created_at get the supplied instant.
func ImportCSV(r io.Reader, now time.Time) ([]task.Task, []RowError, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // rows are validated individually

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil, newError(ErrCodeBadFormat, "", "empty CSV: missing header row")
	}
	if err != nil {
		return nil, nil, wrapError(ErrCodeBadFormat, "", "read CSV header", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := col["title"]; !ok {
		return nil, nil, newError(ErrCodeBadFormat, "", "CSV must include a title column")
	}

	var (
		tasks   []task.Task
		rowErrs []RowError
	)
	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			rowErrs = append(rowErrs, RowError{Line: line, Err: err})
			continue
		}
		t, err := taskFromRecord(rec, col, now)
		if err != nil {
			rowErrs = append(rowErrs, RowError{Line: line, Err: err})
			continue
		}
		tasks = append(tasks, t)
	}
	return tasks, rowErrs, nil
}

// ImportCSVFile parses tasks from a CSV file.
func ImportCSVFile(path string, now time.Time) ([]task.Task, []RowError, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil, newError(ErrCodeNotFound, path, "no such file")
	}
	if err != nil {
		return nil, nil, wrapError(ErrCodeBadFormat, path, "open CSV", err)
	}
	defer f.Close()
	return ImportCSV(f, now)
}

// taskFromRecord builds a task from one CSV row using the header index.
func taskFromRecord(rec []string, col map[string]int, now time.Time) (task.Task, error) {
	get := func(name string) string {
		i, ok := col[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	d := task.Draft{Title: get("title")}

	if v := get("completed"); v != "" {
		b, err := parseBool(v)
		if err != nil {
			return task.Task{}, err
		}
		d.Completed = b
	}
	if v := get("weight"); v != "" {
		w, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return task.Task{}, fmt.Errorf("invalid weight %q", v)
		}
		d.Weight = w
	}
	if v := get("estimated_hours"); v != "" {
		h, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return task.Task{}, fmt.Errorf("invalid estimated_hours %q", v)
		}
		d.EstimatedHours = h
	}
	due, err := task.ParseDate(get("due_date"))
	if err != nil {
		return task.Task{}, err
	}
	d.DueDate = due
	if v := get("status"); v != "" {
		d.Status = task.Status(v)
	}
	d.Tags = task.SplitTags(get("tags"))

	createdAt := now
	if v := get("created_at"); v != "" {
		createdAt, err = time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return task.Task{}, fmt.Errorf("invalid created_at %q", v)
		}
	}

	// Some exporters mark done via status only; let completed win when both
	// are present and disagree.
	if d.Completed {
		d.Status = task.StatusDone
	}

	return task.New(d, createdAt)
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "1", "true", "yes", "y":
		return true, nil
	case "0", "false", "no", "n":
		return false, nil
	default:
		return false, fmt.Errorf("invalid completed value %q", s)
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
