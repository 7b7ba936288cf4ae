package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rowanhs/trackline/internal/store"
	"github.com/rowanhs/trackline/internal/task"
)

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
	Output string
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export tasks as CSV",
		Long: `Export all tasks as CSV, to stdout or a file.

Task ids are not exported; a later import mints fresh ones.

Example:
  trackline export
  trackline export -o tasks.csv`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func runExport(opts *ExportOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	sess, err := openSession(opts.RootOptions)
	if err != nil {
		return outputSessionError(formatter, err)
	}

	if opts.Output == "" {
		if err := store.ExportCSV(cmd.OutOrStdout(), sess.State.Tasks); err != nil {
			return outputSaveError(formatter, err)
		}
		return nil
	}

	if err := store.ExportCSVFile(opts.Output, sess.State.Tasks); err != nil {
		return outputSaveError(formatter, err)
	}
	if formatter.Format == "json" {
		return formatter.Success(map[string]any{"path": opts.Output, "tasks": len(sess.State.Tasks)})
	}
	return formatter.Success(fmt.Sprintf("exported %d task(s) to %s", len(sess.State.Tasks), opts.Output))
}

// ImportOptions holds flags for the import command.
type ImportOptions struct {
	*RootOptions
	Replace bool
}

// ImportResult summarizes an import for JSON output.
type ImportResult struct {
	Imported int              `json:"imported"`
	Skipped  []store.RowError `json:"skipped,omitempty"`
	Tasks    []task.Task      `json:"tasks"`
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ImportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import tasks from CSV",
		Long: `Import tasks from a CSV file.

The header must include a title column; column order is free and
unknown columns are ignored. Rows that fail validation are skipped and
reported, the rest are imported. By default imported tasks are appended;
--replace drops the existing tasks first.

Example:
  trackline import tasks.csv
  trackline import tasks.csv --replace`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Replace, "replace", false, "replace existing tasks instead of appending")

	return cmd
}

func runImport(opts *ImportOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	sess, err := openSession(opts.RootOptions)
	if err != nil {
		return outputSessionError(formatter, err)
	}

	imported, rowErrs, err := store.ImportCSVFile(path, time.Now())
	if err != nil {
		var storeErr *store.Error
		if errors.As(err, &storeErr) {
			_ = formatter.Error(string(storeErr.Code), storeErr.Message, nil)
			return WrapExitError(ExitCommandError, string(storeErr.Code), err)
		}
		_ = formatter.Error("BAD_FORMAT", err.Error(), nil)
		return WrapExitError(ExitCommandError, "import failed", err)
	}

	if opts.Replace {
		sess.State.Clear()
	}
	for _, t := range imported {
		if err := sess.State.Add(t); err != nil {
			return outputStateError(formatter, err)
		}
	}

	if err := sess.Save(); err != nil {
		return outputSaveError(formatter, err)
	}

	if formatter.Format == "json" {
		return formatter.Success(ImportResult{Imported: len(imported), Skipped: rowErrs, Tasks: imported})
	}
	fmt.Fprintf(formatter.Writer, "imported %d task(s)", len(imported))
	if len(rowErrs) > 0 {
		fmt.Fprintf(formatter.Writer, ", skipped %d row(s)", len(rowErrs))
	}
	fmt.Fprintln(formatter.Writer)
	for _, re := range rowErrs {
		fmt.Fprintf(formatter.Writer, "  line %d: %v\n", re.Line, re.Err)
	}
	return nil
}
