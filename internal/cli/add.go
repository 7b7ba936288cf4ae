package cli

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rowanhs/trackline/internal/task"
)

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	Weight    float64
	Hours     float64
	Due       string
	Tags      string
	Status    string
	Completed bool
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Long: `Add a task to the tracker.

The title is required; everything else defaults sensibly (weight 1, no
deadline, status "Not started"). Tags take commas or semicolons as
separators.

Example:
  trackline add "Write report" --weight 2 --due 2025-04-01 --tags school,math
  trackline add "Quick fix" --hours 0.5`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(opts, strings.Join(args, " "), cmd)
		},
	}

	cmd.Flags().Float64VarP(&opts.Weight, "weight", "w", 0, "relative weight (default 1)")
	cmd.Flags().Float64Var(&opts.Hours, "hours", 0, "estimated hours")
	cmd.Flags().StringVarP(&opts.Due, "due", "d", "", "due date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&opts.Tags, "tags", "t", "", "tags, comma or semicolon separated")
	cmd.Flags().StringVarP(&opts.Status, "status", "s", "", `initial status ("Not started", "In progress", "Blocked", "Done")`)
	cmd.Flags().BoolVar(&opts.Completed, "done", false, "create already completed")

	return cmd
}

func runAdd(opts *AddOptions, title string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	sess, err := openSession(opts.RootOptions)
	if err != nil {
		return outputSessionError(formatter, err)
	}

	due, err := task.ParseDate(opts.Due)
	if err != nil {
		_ = formatter.Error("INVALID_FIELD", err.Error(), "due_date")
		return WrapExitError(ExitFailure, "invalid due date", err)
	}

	t, err := task.New(task.Draft{
		Title:          title,
		Weight:         opts.Weight,
		EstimatedHours: opts.Hours,
		DueDate:        due,
		Tags:           task.SplitTags(opts.Tags),
		Status:         task.Status(opts.Status),
		Completed:      opts.Completed,
	}, time.Now())
	if err != nil {
		return outputStateError(formatter, err)
	}

	if err := sess.State.Add(t); err != nil {
		return outputStateError(formatter, err)
	}
	if err := sess.Save(); err != nil {
		return outputSaveError(formatter, err)
	}

	if formatter.Format == "json" {
		return formatter.Success(t)
	}
	return formatter.Success("added " + describeTask(t))
}
