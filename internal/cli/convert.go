package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"quizjson/internal/export"
	"quizjson/internal/quiz"
	"quizjson/internal/source"
)

// clipboardCopier is the clipboard used by --copy. Tests replace it.
var clipboardCopier export.Copier = export.NewClipboard()

// runConvert builds the handler for the convert command.
func runConvert(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		shared := addSharedFlags(flags, "config", "law", "out")
		toStdout := flags.Bool("stdout", false, "Write JSON to stdout instead of a file")
		copyJSON := flags.Bool("copy", false, "Also copy the JSON to the clipboard")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if !requireArgs(cmd, flags, 1, stderr) {
			return ExitUsage
		}
		if *toStdout && flagsSet(flags)["out"] {
			fmt.Fprintln(stderr, "--out and --stdout cannot be combined")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		resolved, err := loadSettings(flags, shared)
		if err != nil {
			fmt.Fprintf(stderr, "Convert failed: %v\n", err)
			return ExitError
		}
		text, err := source.Open(flags.Arg(0), inputReader)
		if err != nil {
			fmt.Fprintf(stderr, "Convert failed: %v\n", err)
			return ExitError
		}

		conv, err := export.Convert(text, resolved.lawBase)
		printDiagnostics(stderr, conv.Diagnostics)
		if err != nil {
			if errors.Is(err, export.ErrNoQuestions) {
				fmt.Fprintln(stderr, "No questions to convert. Check the format.")
				return ExitError
			}
			fmt.Fprintf(stderr, "Convert failed: %v\n", err)
			return ExitError
		}

		payload, err := export.Marshal(conv.Entries)
		if err != nil {
			fmt.Fprintf(stderr, "Convert failed: %v\n", err)
			return ExitError
		}
		if *toStdout {
			if _, err := stdout.Write(payload); err != nil {
				fmt.Fprintf(stderr, "Convert failed: %v\n", err)
				return ExitError
			}
		} else {
			path, err := export.WriteFile(resolved.outputDir, conv.Base, conv.Entries)
			if err != nil {
				fmt.Fprintf(stderr, "Convert failed: %v\n", err)
				return ExitError
			}
			fmt.Fprintf(stdout, "Wrote %s (%d questions)\n", path, len(conv.Entries))
		}

		if *copyJSON {
			if err := clipboardCopier.Copy(string(payload)); err != nil {
				fmt.Fprintf(stderr, "Copy failed: %v\n", err)
				return ExitError
			}
			fmt.Fprintf(stderr, "Copied %d questions to clipboard\n", len(conv.Entries))
		}
		return ExitOK
	}
}

// printDiagnostics reports blocks dropped by strict parsing.
func printDiagnostics(w io.Writer, diagnostics []quiz.Diagnostic) {
	for _, diagnostic := range diagnostics {
		fmt.Fprintf(w, "skipped %s\n", diagnostic.String())
	}
}
