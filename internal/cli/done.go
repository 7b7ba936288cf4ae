package cli

import (
	"github.com/spf13/cobra"

	"github.com/rowanhs/trackline/internal/task"
)

// DoneOptions holds flags for the done command.
type DoneOptions struct {
	*RootOptions
	Undo bool
}

// NewDoneCommand creates the done command.
func NewDoneCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DoneOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "done <id>...",
		Short: "Mark tasks completed",
		Long: `Mark one or more tasks completed, or reopen them with --undo.

Completion also sets the status to "Done"; reopening moves it back to
"Not started".

Example:
  trackline done 3f2a 9c1b
  trackline done 3f2a --undo`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDone(opts, args, cmd)
		},
	}

	cmd.Flags().BoolVarP(&opts.Undo, "undo", "u", false, "reopen instead of completing")

	return cmd
}

func runDone(opts *DoneOptions, ids []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	sess, err := openSession(opts.RootOptions)
	if err != nil {
		return outputSessionError(formatter, err)
	}

	completed := !opts.Undo
	var updated []task.Task
	for _, id := range ids {
		t, err := sess.State.Update(id, task.Change{Completed: &completed})
		if err != nil {
			return outputStateError(formatter, err)
		}
		updated = append(updated, t)
	}

	if err := sess.Save(); err != nil {
		return outputSaveError(formatter, err)
	}

	if formatter.Format == "json" {
		return formatter.Success(updated)
	}
	verb := "completed "
	if opts.Undo {
		verb = "reopened "
	}
	for _, t := range updated {
		if err := formatter.Success(verb + describeTask(t)); err != nil {
			return err
		}
	}
	return nil
}
