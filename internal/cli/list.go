package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rowanhs/trackline/internal/progress"
	"github.com/rowanhs/trackline/internal/task"
	"github.com/rowanhs/trackline/internal/view"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Tag  string
	Sort string
	Desc bool
	All  bool
}

// ListedTask is the JSON row shape of the list output: the task plus its
// urgency relative to today.
type ListedTask struct {
	task.Task
	Urgency progress.Urgency `json:"urgency"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks with their urgency badges.

Without flags the saved view settings apply (tag filter, sort key and
direction). Flags override them for this invocation only.

Example:
  trackline list
  trackline list --tag school --sort weight --desc`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Tag, "tag", "t", "", "only tasks carrying this tag")
	cmd.Flags().StringVarP(&opts.Sort, "sort", "s", "", "sort key (due|title|weight|hours|done|status|created)")
	cmd.Flags().BoolVar(&opts.Desc, "desc", false, "sort descending")
	cmd.Flags().BoolVarP(&opts.All, "all", "a", false, "ignore the saved tag filter")

	return cmd
}

func runList(opts *ListOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	sess, err := openSession(opts.RootOptions)
	if err != nil {
		return outputSessionError(formatter, err)
	}

	settings := sess.State.Settings
	tag := settings.FilterTag
	if opts.All {
		tag = ""
	}
	if opts.Tag != "" {
		tag = opts.Tag
	}
	key := settings.SortKey
	ascending := settings.SortAscending
	if opts.Sort != "" {
		key = view.SortKey(opts.Sort)
		if !key.Valid() {
			_ = formatter.Error("INVALID_FIELD", fmt.Sprintf("unknown sort key %q", opts.Sort), "sort")
			return NewExitError(ExitFailure, "unknown sort key")
		}
		ascending = true
	}
	if opts.Desc {
		ascending = false
	}

	tasks := view.Apply(sess.State.Tasks, tag, key, ascending)
	now := today()

	if formatter.Format == "json" {
		rows := make([]ListedTask, 0, len(tasks))
		for _, t := range tasks {
			rows = append(rows, ListedTask{Task: t, Urgency: progress.Classify(t, now)})
		}
		return formatter.Success(rows)
	}

	if len(tasks) == 0 {
		fmt.Fprintln(formatter.Writer, "no tasks")
		return nil
	}
	for _, t := range tasks {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		line := fmt.Sprintf("[%s] %s  %s", mark, shortID(t.ID), t.Title)
		if !t.DueDate.IsZero() {
			line += fmt.Sprintf("  (due %s)", t.DueDate)
		}
		if badge := progress.Classify(t, now).Badge(); badge != "" {
			line += "  " + badge
		}
		if len(t.Tags) > 0 {
			line += "  #" + task.JoinTags(t.Tags)
		}
		fmt.Fprintln(formatter.Writer, line)
	}
	return nil
}
