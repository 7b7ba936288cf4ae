package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rowanhs/trackline/internal/notify"
	"github.com/rowanhs/trackline/internal/progress"
)

// RemindOptions holds flags for the remind command.
type RemindOptions struct {
	*RootOptions
	Days int
}

// bellBeeper rings the terminal bell on the given writer.
type bellBeeper struct {
	w io.Writer
}

func (b bellBeeper) Beep() {
	fmt.Fprint(b.w, "\a")
}

// NewRemindCommand creates the remind command.
func NewRemindCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RemindOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Show overdue and upcoming deadlines",
		Long: `Show open tasks that are overdue or due within the reminder window.

The window defaults to the notify_days setting. Exits 1 when anything
is overdue, so the command works as a shell-prompt or cron check.

Example:
  trackline remind
  trackline remind --days 7`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemind(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Days, "days", 0, "look-ahead window in days (default from settings)")

	return cmd
}

func runRemind(opts *RemindOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	sess, err := openSession(opts.RootOptions)
	if err != nil {
		return outputSessionError(formatter, err)
	}

	if !sess.State.Settings.NotifyEnabled && opts.Days == 0 {
		if formatter.Format == "json" {
			return formatter.Success(notify.Report{})
		}
		fmt.Fprintln(formatter.Writer, "reminders disabled")
		return nil
	}

	horizon := sess.State.Settings.NotifyDays
	if opts.Days > 0 {
		horizon = opts.Days
	}

	var beeper notify.Beeper
	if sess.Config.Beep {
		beeper = bellBeeper{w: cmd.ErrOrStderr()}
	}
	scanner := notify.NewScanner(horizon, beeper)
	report := scanner.Scan(sess.State.Tasks, today())

	if formatter.Format == "json" {
		if err := formatter.Success(report); err != nil {
			return err
		}
	} else {
		printReport(formatter, report)
	}

	if len(report.Overdue) > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d task(s) overdue", len(report.Overdue)))
	}
	return nil
}

func printReport(formatter *OutputFormatter, report notify.Report) {
	if report.Empty() {
		fmt.Fprintln(formatter.Writer, "nothing due")
		return
	}
	for _, t := range report.Overdue {
		fmt.Fprintf(formatter.Writer, "%s  %s  %s (was due %s)\n",
			progress.UrgencyOverdue.Badge(), shortID(t.ID), t.Title, t.DueDate)
	}
	for _, t := range report.DueSoon {
		fmt.Fprintf(formatter.Writer, "due %s  %s  %s\n", t.DueDate, shortID(t.ID), t.Title)
	}
}
