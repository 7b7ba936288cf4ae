package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rowanhs/trackline/internal/view"
)

// NewTagsCommand creates the tags command.
func NewTagsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List all tags in use",
		Long: `List the unique tags across all tasks, sorted.

Example:
  trackline tags`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTags(rootOpts, cmd)
		},
	}

	return cmd
}

func runTags(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	sess, err := openSession(opts)
	if err != nil {
		return outputSessionError(formatter, err)
	}

	tags := view.Tags(sess.State.Tasks)

	if formatter.Format == "json" {
		if tags == nil {
			tags = []string{}
		}
		return formatter.Success(tags)
	}
	if len(tags) == 0 {
		fmt.Fprintln(formatter.Writer, "no tags")
		return nil
	}
	for _, tag := range tags {
		fmt.Fprintln(formatter.Writer, tag)
	}
	return nil
}
