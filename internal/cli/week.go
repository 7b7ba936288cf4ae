package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rowanhs/trackline/internal/progress"
	"github.com/rowanhs/trackline/internal/task"
)

// WeekDay is one day of the weekly view in JSON output.
type WeekDay struct {
	Date  task.Date   `json:"date"`
	Tasks []task.Task `json:"tasks"`
}

// NewWeekCommand creates the week command.
func NewWeekCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show the next seven days",
		Long: `Show incomplete tasks due in the next seven days, bucketed by day.

Example:
  trackline week`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWeek(rootOpts, cmd)
		},
	}

	return cmd
}

func runWeek(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	sess, err := openSession(opts)
	if err != nil {
		return outputSessionError(formatter, err)
	}

	now := today()
	buckets := progress.WeekAhead(sess.State.Tasks, now)

	if formatter.Format == "json" {
		days := make([]WeekDay, progress.WeekDays)
		for i := range buckets {
			days[i] = WeekDay{Date: now.AddDays(i), Tasks: buckets[i]}
			if days[i].Tasks == nil {
				days[i].Tasks = []task.Task{}
			}
		}
		return formatter.Success(days)
	}

	for i, bucket := range buckets {
		day := now.AddDays(i)
		label := day.Time().Format("Mon 2006-01-02")
		switch i {
		case 0:
			label += " (today)"
		case 1:
			label += " (tomorrow)"
		}
		fmt.Fprintln(formatter.Writer, label)
		if len(bucket) == 0 {
			fmt.Fprintln(formatter.Writer, "  -")
			continue
		}
		for _, t := range bucket {
			fmt.Fprintf(formatter.Writer, "  %s  %s\n", shortID(t.ID), t.Title)
		}
	}
	return nil
}
