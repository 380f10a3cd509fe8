package cli

import (
	"flag"
	"fmt"
	"io"

	"quizjson/internal/preview"
	"quizjson/internal/quiz"
	"quizjson/internal/source"
)

// runPreview builds the handler for the preview command.
func runPreview(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		shared := addSharedFlags(flags, "config", "no-color")
		limit := flags.Int("limit", 0, "Questions shown in full (default from config, else 3)")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if !requireArgs(cmd, flags, 1, stderr) {
			return ExitUsage
		}
		if *limit < 0 {
			fmt.Fprintln(stderr, "--limit must not be negative")
			return ExitUsage
		}

		resolved, err := loadSettings(flags, shared)
		if err != nil {
			fmt.Fprintf(stderr, "Preview failed: %v\n", err)
			return ExitError
		}
		text, err := source.Open(flags.Arg(0), inputReader)
		if err != nil {
			fmt.Fprintf(stderr, "Preview failed: %v\n", err)
			return ExitError
		}

		opts := preview.Options{
			Limit:   resolved.cfg.PreviewLimit,
			NoColor: resolveNoColor(resolved.noColor, stdout),
		}
		if *limit > 0 {
			opts.Limit = *limit
		}
		result := quiz.Parse(text, quiz.Lenient)
		if err := preview.Render(stdout, result.Records, opts); err != nil {
			fmt.Fprintf(stderr, "Preview failed: %v\n", err)
			return ExitError
		}
		if !result.Empty() {
			fmt.Fprintf(stdout, "\n%s\n", preview.StatsFor(result))
		}
		return ExitOK
	}
}
