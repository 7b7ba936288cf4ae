package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/rowanhs/trackline/internal/config"
	"github.com/rowanhs/trackline/internal/state"
	"github.com/rowanhs/trackline/internal/store"
	"github.com/rowanhs/trackline/internal/task"
)

// Session is one load-mutate-save cycle over the state document. Commands
// open a session, apply their change, and save; read-only commands skip
// the save.
type Session struct {
	Path   string
	Config config.Config
	State  state.AppState

	// Fresh is true when no state file existed yet.
	Fresh bool
}

// newFormatter builds the output formatter for a command invocation.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}
}

// openSession loads config and state. A missing state file yields the
// default empty state; a corrupt one is an error the user must see.
func openSession(opts *RootOptions) (*Session, error) {
	cfgPath := opts.Config
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	path := opts.File
	if path == "" {
		path = cfg.StateFile
	}

	st, err := store.Load(path)
	if store.IsNotFound(err) {
		slog.Debug("no state file, starting fresh", "path", path)
		st = state.Default()
		st.Settings.ProgressMode = cfg.DefaultMode
		st.Settings.NotifyDays = cfg.NotifyDays
		return &Session{Path: path, Config: cfg, State: st, Fresh: true}, nil
	}
	if err != nil {
		return nil, err
	}
	slog.Debug("state loaded", "path", path, "tasks", len(st.Tasks))
	return &Session{Path: path, Config: cfg, State: st}, nil
}

// Save writes the session state back to its document.
func (s *Session) Save() error {
	return store.Save(s.Path, s.State)
}

// today returns the current civil date, the reference point for all
// urgency and reminder calculations.
func today() task.Date {
	return task.DateOf(time.Now())
}

// outputSessionError renders a session open failure and picks the exit
// code: corrupt or unreadable state is a command-level error.
func outputSessionError(formatter *OutputFormatter, err error) error {
	var storeErr *store.Error
	if errors.As(err, &storeErr) {
		_ = formatter.Error(string(storeErr.Code), storeErr.Message, nil)
		return WrapExitError(ExitCommandError, string(storeErr.Code), err)
	}
	_ = formatter.Error("CONFIG_ERROR", err.Error(), nil)
	return WrapExitError(ExitCommandError, "config error", err)
}

// outputSaveError renders a failed state write.
func outputSaveError(formatter *OutputFormatter, err error) error {
	var storeErr *store.Error
	if errors.As(err, &storeErr) {
		_ = formatter.Error(string(storeErr.Code), storeErr.Message, nil)
	} else {
		_ = formatter.Error("WRITE_FAILED", err.Error(), nil)
	}
	return WrapExitError(ExitCommandError, "save failed", err)
}

// outputStateError renders a task lookup or mutation failure (not found,
// ambiguous prefix, validation). These are domain failures, exit code 1.
func outputStateError(formatter *OutputFormatter, err error) error {
	var stErr *state.Error
	if errors.As(err, &stErr) {
		_ = formatter.Error(string(stErr.Code), stErr.Message, stErr.ID)
		return WrapExitError(ExitFailure, string(stErr.Code), err)
	}
	var valErr *task.ValidationError
	if errors.As(err, &valErr) {
		_ = formatter.Error("INVALID_FIELD", valErr.Error(), valErr.Field)
		return WrapExitError(ExitFailure, "invalid field", err)
	}
	_ = formatter.Error("ERROR", err.Error(), nil)
	return WrapExitError(ExitFailure, "command failed", err)
}

// describeTask is the one-line text rendering shared by add/edit/done.
func describeTask(t task.Task) string {
	line := t.Title
	if !t.DueDate.IsZero() {
		line += fmt.Sprintf(" (due %s)", t.DueDate)
	}
	return fmt.Sprintf("%s  [%s] %s", shortID(t.ID), t.Status, line)
}

// shortID truncates a task id for display; lookups accept the prefix.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
