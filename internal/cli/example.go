package cli

import (
	"fmt"
	"io"
	"strings"

	"quizjson/internal/source"
)

// runExample builds the handler for the example command.
func runExample(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		if len(args) > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(args, " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		fmt.Fprint(stdout, source.Example)
		return ExitOK
	}
}
