package cli

import (
	"flag"
	"fmt"
	"io"

	"quizjson/internal/export"
)

// runCheck builds the handler for the check command.
func runCheck(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		repair := flags.Bool("repair", false, "Repair malformed JSON before checking")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if !requireArgs(cmd, flags, 1, stderr) {
			return ExitUsage
		}

		doc, err := export.LoadDocument(flags.Arg(0), *repair)
		if err != nil {
			fmt.Fprintf(stderr, "Check failed:\n%v\n", err)
			return ExitError
		}
		if doc.Repaired {
			fmt.Fprintln(stderr, "Repaired malformed JSON before checking")
		}
		if err := export.ValidateSchema(doc.JSON); err != nil {
			fmt.Fprintf(stderr, "Check failed:\n%v\n", err)
			return ExitError
		}
		if err := export.CheckEntries(doc.Entries); err != nil {
			fmt.Fprintf(stderr, "Check failed:\n%v\n", err)
			return ExitError
		}

		first := doc.Entries[0].Law
		last := doc.Entries[len(doc.Entries)-1].Law
		fmt.Fprintf(stdout, "Export OK: %d questions, laws %d-%d\n", len(doc.Entries), first, last)
		return ExitOK
	}
}
