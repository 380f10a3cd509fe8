package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"quizjson/internal/logging"
	"quizjson/internal/source"
	"quizjson/internal/ui/editor"
)

// runEditor starts the editor program. Tests replace it.
var runEditor = editor.Run

// runEdit builds the handler for the edit command.
func runEdit(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		shared := addSharedFlags(flags, "config", "law", "out", "no-color")
		file := flags.String("file", "", "Quiz file to load into the editor")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if !requireArgs(cmd, flags, 0, stderr) {
			return ExitUsage
		}
		if !isTerminal(stdout) {
			fmt.Fprintln(stderr, "Edit failed: edit needs an interactive terminal; use convert or preview instead")
			return ExitError
		}

		resolved, err := loadSettings(flags, shared)
		if err != nil {
			fmt.Fprintf(stderr, "Edit failed: %v\n", err)
			return ExitError
		}
		text := ""
		if path := strings.TrimSpace(*file); path != "" {
			text, err = source.ReadFile(path)
			if err != nil {
				fmt.Fprintf(stderr, "Edit failed: %v\n", err)
				return ExitError
			}
		}
		// The editor owns the screen, so logs only go to QUIZJSON_LOG_FILE.
		logger, closeLog, err := logging.FromEnv(nil)
		if err != nil {
			fmt.Fprintf(stderr, "Edit failed: %v\n", err)
			return ExitError
		}
		defer closeLog()

		ctx, stop := signalContext()
		defer stop()

		opts := editor.Options{
			LawBase:   resolved.lawBase,
			OutputDir: resolved.outputDir,
			NoColor:   resolved.noColor,
			Delay:     resolved.cfg.Debounce(),
			Text:      text,
			Copier:    clipboardCopier,
			Logger:    logger,
		}
		if err := runEditor(ctx, opts, inputReader, stdout); err != nil {
			fmt.Fprintf(stderr, "Edit failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
