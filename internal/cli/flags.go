package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// parseFlags parses args into flags. When ok is false the command should
// return code.
func parseFlags(cmd *Command, flags *flag.FlagSet, args []string, stdout, stderr io.Writer) (code int, ok bool) {
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printCommandUsage(cmd, stdout)
			return ExitOK, false
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	return ExitOK, true
}

// requireArgs checks the number of positional arguments.
func requireArgs(cmd *Command, flags *flag.FlagSet, want int, stderr io.Writer) bool {
	if flags.NArg() == want {
		return true
	}
	if flags.NArg() > want {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args()[want:], " "))
	} else {
		fmt.Fprintln(stderr, "missing input file (use - for stdin)")
	}
	printCommandUsage(cmd, stderr)
	return false
}

// flagsSet returns the names of flags given on the command line.
func flagsSet(flags *flag.FlagSet) map[string]bool {
	set := map[string]bool{}
	flags.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}
