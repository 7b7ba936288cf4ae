package cli

import (
	"github.com/spf13/cobra"

	"github.com/rowanhs/trackline/internal/task"
)

// EditOptions holds flags for the edit command. Only flags the user set
// become part of the change; everything else stays as it is.
type EditOptions struct {
	*RootOptions
	Title  string
	Weight float64
	Hours  float64
	Due    string
	Tags   string
	Status string
}

// NewEditCommand creates the edit command.
func NewEditCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EditOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task",
		Long: `Edit fields of an existing task.

The id may be a unique prefix. Only the flags given change; pass an
empty --due to clear the deadline or an empty --tags to drop all tags.

Example:
  trackline edit 3f2a --title "Write final report" --weight 3
  trackline edit 3f2a --due ""`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "new title")
	cmd.Flags().Float64VarP(&opts.Weight, "weight", "w", 0, "new weight")
	cmd.Flags().Float64Var(&opts.Hours, "hours", 0, "new estimated hours")
	cmd.Flags().StringVarP(&opts.Due, "due", "d", "", "new due date (YYYY-MM-DD), empty clears")
	cmd.Flags().StringVarP(&opts.Tags, "tags", "t", "", "replacement tag list, empty clears")
	cmd.Flags().StringVarP(&opts.Status, "status", "s", "", "new status")

	return cmd
}

func runEdit(opts *EditOptions, id string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	sess, err := openSession(opts.RootOptions)
	if err != nil {
		return outputSessionError(formatter, err)
	}

	change, err := changeFromFlags(opts, cmd)
	if err != nil {
		_ = formatter.Error("INVALID_FIELD", err.Error(), nil)
		return WrapExitError(ExitFailure, "invalid field", err)
	}

	updated, err := sess.State.Update(id, change)
	if err != nil {
		return outputStateError(formatter, err)
	}
	if err := sess.Save(); err != nil {
		return outputSaveError(formatter, err)
	}

	if formatter.Format == "json" {
		return formatter.Success(updated)
	}
	return formatter.Success("updated " + describeTask(updated))
}

// changeFromFlags builds a partial change from exactly the flags the user
// set, so an untouched flag never overwrites a field with its zero value.
func changeFromFlags(opts *EditOptions, cmd *cobra.Command) (task.Change, error) {
	var c task.Change
	flags := cmd.Flags()

	if flags.Changed("title") {
		c.Title = &opts.Title
	}
	if flags.Changed("weight") {
		c.Weight = &opts.Weight
	}
	if flags.Changed("hours") {
		c.EstimatedHours = &opts.Hours
	}
	if flags.Changed("due") {
		due, err := task.ParseDate(opts.Due)
		if err != nil {
			return task.Change{}, err
		}
		c.DueDate = &due
	}
	if flags.Changed("tags") {
		tags := task.SplitTags(opts.Tags)
		c.Tags = &tags
	}
	if flags.Changed("status") {
		status := task.Status(opts.Status)
		c.Status = &status
	}
	return c, nil
}
