package main

import (
	"fmt"
	"os"

	"github.com/rowanhs/trackline/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		// Commands render their own error output; anything reaching here
		// without an ExitError is a usage problem cobra reported.
		code := cli.GetExitCode(err)
		if _, ok := err.(*cli.ExitError); !ok {
			fmt.Fprintln(os.Stderr, "Error:", err)
			code = cli.ExitCommandError
		}
		os.Exit(code)
	}
}
