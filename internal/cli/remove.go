package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRemoveCommand creates the rm command.
func NewRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <id>...",
		Aliases: []string{"remove"},
		Short:   "Delete tasks",
		Long: `Delete one or more tasks by id or unique id prefix.

Example:
  trackline rm 3f2a`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runRemove(opts *RootOptions, ids []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	sess, err := openSession(opts)
	if err != nil {
		return outputSessionError(formatter, err)
	}

	var titles []string
	for _, id := range ids {
		removed, err := sess.State.Remove(id)
		if err != nil {
			return outputStateError(formatter, err)
		}
		titles = append(titles, removed.Title)
	}

	if err := sess.Save(); err != nil {
		return outputSaveError(formatter, err)
	}

	if formatter.Format == "json" {
		return formatter.Success(map[string]any{"removed": len(titles), "titles": titles})
	}
	for _, title := range titles {
		fmt.Fprintf(formatter.Writer, "removed %s\n", title)
	}
	return nil
}

// ClearOptions holds flags for the clear command.
type ClearOptions struct {
	*RootOptions
	Yes bool
}

// NewClearCommand creates the clear command.
func NewClearCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ClearOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all tasks",
		Long: `Delete every task. Settings and the goal are kept.

Requires --yes; there is no undo.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClear(opts, cmd)
		},
	}

	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "confirm deletion")

	return cmd
}

func runClear(opts *ClearOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	if !opts.Yes {
		_ = formatter.Error("CONFIRM_REQUIRED", "pass --yes to delete all tasks", nil)
		return NewExitError(ExitCommandError, "confirmation required")
	}

	sess, err := openSession(opts.RootOptions)
	if err != nil {
		return outputSessionError(formatter, err)
	}

	n := len(sess.State.Tasks)
	sess.State.Clear()

	if err := sess.Save(); err != nil {
		return outputSaveError(formatter, err)
	}

	if formatter.Format == "json" {
		return formatter.Success(map[string]int{"removed": n})
	}
	return formatter.Success(fmt.Sprintf("removed %d task(s)", n))
}
