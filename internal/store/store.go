package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rowanhs/trackline/internal/progress"
	"github.com/rowanhs/trackline/internal/state"
	"github.com/rowanhs/trackline/internal/task"
	"github.com/rowanhs/trackline/internal/view"
)

// DocumentVersion is the current state document format version.
const DocumentVersion = 1

// document is the on-disk envelope around AppState.
type document struct {
	Version  int            `json:"version"`
	Settings state.Settings `json:"settings"`
	Goal     state.Goal     `json:"goal"`
	Tasks    []task.Task    `json:"tasks"`
}

// Save writes the full state to path. The write is atomic from the caller's
// perspective: the document is assembled in memory, written to a temp file
// in the same directory, and renamed over the target, so a failure at any
// point leaves the prior file untouched.
func Save(path string, st state.AppState) error {
	doc := document{
		Version:  DocumentVersion,
		Settings: st.Settings,
		Goal:     st.Goal,
		Tasks:    st.Tasks,
	}
	if doc.Tasks == nil {
		doc.Tasks = []task.Task{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return wrapError(ErrCodeWriteFailed, path, "encode state document", err)
	}

	if err := writeFileAtomic(path, buf.Bytes()); err != nil {
		return wrapError(ErrCodeWriteFailed, path, "write state document", err)
	}
	return nil
}

// Load reads the state document at path.
//
// A missing file returns a NOT_FOUND error: the caller substitutes the
// default empty state. Anything between "file exists" and "valid AppState"
// returns CORRUPT_DATA with a diagnostic; the caller must surface it rather
// than quietly start from scratch.
func Load(path string) (state.AppState, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return state.AppState{}, newError(ErrCodeNotFound, path, "no state file")
	}
	if err != nil {
		return state.AppState{}, wrapError(ErrCodeCorruptData, path, "read state file", err)
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return state.AppState{}, wrapError(ErrCodeCorruptData, path, "decode state document", err)
	}
	if doc.Version != DocumentVersion {
		return state.AppState{}, newError(ErrCodeCorruptData, path, "unsupported document version %d", doc.Version)
	}
	if err := validateDocument(raw); err != nil {
		return state.AppState{}, wrapError(ErrCodeCorruptData, path, "state document fails schema", err)
	}

	seen := make(map[string]struct{}, len(doc.Tasks))
	for _, t := range doc.Tasks {
		if _, dup := seen[t.ID]; dup {
			return state.AppState{}, newError(ErrCodeCorruptData, path, "duplicate task id %s", t.ID)
		}
		seen[t.ID] = struct{}{}
	}

	return state.AppState{
		Tasks:    doc.Tasks,
		Goal:     doc.Goal,
		Settings: normalizeSettings(doc.Settings),
	}, nil
}

// normalizeSettings fills enum-valued settings a sparse or older document
// may omit. Boolean and numeric settings keep their decoded values.
func normalizeSettings(s state.Settings) state.Settings {
	if s.ProgressMode == "" {
		s.ProgressMode = progress.ModeWeight
	}
	if s.SortKey == "" {
		s.SortKey = view.SortByDue
	}
	return s
}

// writeFileAtomic writes data to path via a temp file and rename.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".trackline-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
