package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rowanhs/trackline/internal/progress"
	"github.com/rowanhs/trackline/internal/view"
)

// ProgressOptions holds flags for the progress command.
type ProgressOptions struct {
	*RootOptions
	Mode string
	Tag  string
	All  bool
}

// barWidth is the character width of the text progress bar.
const barWidth = 30

// NewProgressCommand creates the progress command.
func NewProgressCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ProgressOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show overall progress",
		Long: `Show the progress summary for the current view.

The saved tag filter applies unless overridden; progress is computed
over exactly the tasks shown, in the saved or given mode (count, weight
or hours). Hours mode falls back to count when no task has an estimate.

Example:
  trackline progress
  trackline progress --mode hours --tag school`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProgress(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Mode, "mode", "m", "", "progress mode (count|weight|hours)")
	cmd.Flags().StringVarP(&opts.Tag, "tag", "t", "", "only tasks carrying this tag")
	cmd.Flags().BoolVarP(&opts.All, "all", "a", false, "ignore the saved tag filter")

	return cmd
}

func runProgress(opts *ProgressOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	sess, err := openSession(opts.RootOptions)
	if err != nil {
		return outputSessionError(formatter, err)
	}

	mode := sess.State.Settings.ProgressMode
	if opts.Mode != "" {
		mode, err = progress.ParseMode(opts.Mode)
		if err != nil {
			_ = formatter.Error("INVALID_FIELD", err.Error(), "mode")
			return WrapExitError(ExitFailure, "invalid mode", err)
		}
	}

	tag := sess.State.Settings.FilterTag
	if opts.All {
		tag = ""
	}
	if opts.Tag != "" {
		tag = opts.Tag
	}

	tasks := view.Apply(sess.State.Tasks, tag, sess.State.Settings.SortKey, sess.State.Settings.SortAscending)
	summary := progress.Summarize(tasks, mode)

	if formatter.Format == "json" {
		return formatter.Success(summary)
	}

	if goal := sess.State.Goal.Text; goal != "" {
		fmt.Fprintf(formatter.Writer, "Goal: %s\n", goal)
	}
	fmt.Fprintf(formatter.Writer, "%s %.1f%%\n", renderBar(summary.Ratio), progress.Percent(summary.Ratio))
	fmt.Fprintf(formatter.Writer, "%g/%g %s done", summary.Done, summary.Total, summary.Unit)
	if summary.RemainingHours > 0 {
		fmt.Fprintf(formatter.Writer, ", %g hrs remaining", summary.RemainingHours)
	}
	fmt.Fprintln(formatter.Writer)
	if !summary.NearestDue.IsZero() {
		fmt.Fprintf(formatter.Writer, "next deadline %s\n", summary.NearestDue)
	}
	return nil
}

// renderBar draws a fixed-width progress bar like [=====-----].
func renderBar(ratio float64) string {
	filled := int(ratio*barWidth + 0.5)
	if filled > barWidth {
		filled = barWidth
	}
	return "[" + strings.Repeat("=", filled) + strings.Repeat("-", barWidth-filled) + "]"
}
