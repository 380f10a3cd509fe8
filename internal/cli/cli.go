package cli

import (
	"fmt"
	"io"
	"os"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, stdout, stderr io.Writer) int
}

// inputReader is the stdin used for "-" sources and init prompts. Tests
// replace it.
var inputReader io.Reader = os.Stdin

func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}
	if isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}

	cmd := findCommand(args[0])
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}

	return cmd.Run(args[1:], stdout, stderr)
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  quizjson <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-9s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nUse \"quizjson <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

func command(name, summary string, usage []string, runner func(cmd *Command) func(args []string, stdout, stderr io.Writer) int) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)
	return cmd
}

var commands = []*Command{
	command("convert", "Convert quiz text to a law_<N>_tests.json export", []string{
		"quizjson convert [--law <n>] [--out <dir> | --stdout] [--copy] [--config <path>] <file|->",
	}, runConvert),
	command("preview", "Show the questions found in quiz text", []string{
		"quizjson preview [--limit <n>] [--no-color] [--config <path>] <file|->",
	}, runPreview),
	command("check", "Validate an existing export file", []string{
		"quizjson check [--repair] <export.json|export.yml>",
	}, runCheck),
	command("watch", "Re-convert a quiz file whenever it changes", []string{
		"quizjson watch [--law <n>] [--out <dir>] [--ui auto|live|plain] [--no-color] [--config <path>] <file>",
	}, runWatch),
	command("edit", "Edit quiz text with a live preview", []string{
		"quizjson edit [--law <n>] [--out <dir>] [--file <path>] [--no-color] [--config <path>]",
	}, runEdit),
	command("example", "Print an example quiz", []string{
		"quizjson example",
	}, runExample),
	command("init", "Scaffold .quizjson/config.yml", []string{
		"quizjson init [--config <path>]",
	}, runInit),
	command("validate", "Validate .quizjson/config.yml", []string{
		"quizjson validate [--config <path>]",
	}, runValidate),
}
