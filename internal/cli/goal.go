package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// GoalOptions holds flags for the goal command.
type GoalOptions struct {
	*RootOptions
	Image string
	Clear bool
}

// NewGoalCommand creates the goal command.
func NewGoalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GoalOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "goal [text]",
		Short: "Show or set the goal banner",
		Long: `Show the goal banner, or replace it when text is given.

The goal is a motivational line displayed above the task list, with an
optional image path for graphical frontends.

Example:
  trackline goal
  trackline goal "Finish the semester strong" --image ~/banner.png
  trackline goal --clear`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGoal(opts, strings.Join(args, " "), cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Image, "image", "", "goal image path")
	cmd.Flags().BoolVar(&opts.Clear, "clear", false, "remove the goal")

	return cmd
}

func runGoal(opts *GoalOptions, text string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	sess, err := openSession(opts.RootOptions)
	if err != nil {
		return outputSessionError(formatter, err)
	}

	changed := false
	switch {
	case opts.Clear:
		sess.State.Goal.Text = ""
		sess.State.Goal.ImagePath = ""
		changed = true
	case text != "" || cmd.Flags().Changed("image"):
		if text != "" {
			sess.State.Goal.Text = text
		}
		if cmd.Flags().Changed("image") {
			sess.State.Goal.ImagePath = opts.Image
		}
		changed = true
	}

	if changed {
		if err := sess.Save(); err != nil {
			return outputSaveError(formatter, err)
		}
	}

	if formatter.Format == "json" {
		return formatter.Success(sess.State.Goal)
	}
	if sess.State.Goal.Text == "" {
		fmt.Fprintln(formatter.Writer, "no goal set")
		return nil
	}
	fmt.Fprintf(formatter.Writer, "Goal: %s\n", sess.State.Goal.Text)
	if sess.State.Goal.ImagePath != "" {
		fmt.Fprintf(formatter.Writer, "Image: %s\n", sess.State.Goal.ImagePath)
	}
	return nil
}
