package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rowanhs/trackline/internal/progress"
	"github.com/rowanhs/trackline/internal/view"
)

// NewModeCommand creates the mode command.
func NewModeCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mode [count|weight|hours]",
		Short: "Show or set the progress mode",
		Long: `Show the saved progress mode, or set it when an argument is given.

Example:
  trackline mode
  trackline mode hours`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMode(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runMode(opts *RootOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	sess, err := openSession(opts)
	if err != nil {
		return outputSessionError(formatter, err)
	}

	if len(args) == 1 {
		mode, err := progress.ParseMode(args[0])
		if err != nil {
			_ = formatter.Error("INVALID_FIELD", err.Error(), "mode")
			return WrapExitError(ExitFailure, "invalid mode", err)
		}
		sess.State.Settings.ProgressMode = mode
		if err := sess.Save(); err != nil {
			return outputSaveError(formatter, err)
		}
	}

	if formatter.Format == "json" {
		return formatter.Success(map[string]progress.Mode{"mode": sess.State.Settings.ProgressMode})
	}
	return formatter.Success(string(sess.State.Settings.ProgressMode))
}

// NewFilterCommand creates the filter command.
func NewFilterCommand(rootOpts *RootOptions) *cobra.Command {
	var clear bool

	cmd := &cobra.Command{
		Use:   "filter [tag]",
		Short: "Show or set the saved tag filter",
		Long: `Show the saved tag filter, set it to a tag, or drop it with --clear.

The filter applies to list and progress until changed.

Example:
  trackline filter school
  trackline filter --clear`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFilter(rootOpts, args, clear, cmd)
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "remove the filter")

	return cmd
}

func runFilter(opts *RootOptions, args []string, clear bool, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	sess, err := openSession(opts)
	if err != nil {
		return outputSessionError(formatter, err)
	}

	changed := false
	switch {
	case clear:
		sess.State.Settings.FilterTag = ""
		changed = true
	case len(args) == 1:
		sess.State.Settings.FilterTag = args[0]
		changed = true
	}
	if changed {
		if err := sess.Save(); err != nil {
			return outputSaveError(formatter, err)
		}
	}

	if formatter.Format == "json" {
		return formatter.Success(map[string]string{"filter": sess.State.Settings.FilterTag})
	}
	if sess.State.Settings.FilterTag == "" {
		return formatter.Success("no filter")
	}
	return formatter.Success(sess.State.Settings.FilterTag)
}

// NewSortCommand creates the sort command.
func NewSortCommand(rootOpts *RootOptions) *cobra.Command {
	var desc bool

	cmd := &cobra.Command{
		Use:   "sort [key]",
		Short: "Show or set the saved sort order",
		Long: `Show the saved sort order, or set the key and direction.

Keys: due, title, weight, hours, done, status, created.

Example:
  trackline sort weight --desc
  trackline sort due`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(rootOpts, args, desc, cmd)
		},
	}

	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending")

	return cmd
}

func runSort(opts *RootOptions, args []string, desc bool, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	sess, err := openSession(opts)
	if err != nil {
		return outputSessionError(formatter, err)
	}

	if len(args) == 1 {
		key := view.SortKey(args[0])
		if !key.Valid() {
			_ = formatter.Error("INVALID_FIELD", fmt.Sprintf("unknown sort key %q", args[0]), "sort")
			return NewExitError(ExitFailure, "unknown sort key")
		}
		sess.State.Settings.SortKey = key
		sess.State.Settings.SortAscending = !desc
		if err := sess.Save(); err != nil {
			return outputSaveError(formatter, err)
		}
	}

	if formatter.Format == "json" {
		return formatter.Success(map[string]any{
			"key":       sess.State.Settings.SortKey,
			"ascending": sess.State.Settings.SortAscending,
		})
	}
	direction := "ascending"
	if !sess.State.Settings.SortAscending {
		direction = "descending"
	}
	return formatter.Success(fmt.Sprintf("%s %s", sess.State.Settings.SortKey, direction))
}
