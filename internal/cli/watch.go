package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"quizjson/internal/export"
	"quizjson/internal/logging"
	"quizjson/internal/preview"
	"quizjson/internal/quiz"
	"quizjson/internal/watch"
)

// clearScreen moves the cursor home and clears the terminal.
const clearScreen = "\033[H\033[2J"

// signalContext returns the context long-running commands stop on. Tests
// replace it.
var signalContext = func() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// runWatch builds the handler for the watch command.
func runWatch(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		shared := addSharedFlags(flags, "config", "law", "out", "no-color")
		uiMode := flags.String("ui", "auto", "Output mode: auto|live|plain")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if !requireArgs(cmd, flags, 1, stderr) {
			return ExitUsage
		}
		path := flags.Arg(0)
		if path == "-" {
			fmt.Fprintln(stderr, "watch needs a file, not stdin")
			return ExitUsage
		}

		decision, err := resolveUIMode(*uiMode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "Watch failed: %v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		resolved, err := loadSettings(flags, shared)
		if err != nil {
			fmt.Fprintf(stderr, "Watch failed: %v\n", err)
			return ExitError
		}
		logger, closeLog, err := logging.FromEnv(stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Watch failed: %v\n", err)
			return ExitError
		}
		defer closeLog()

		ctx, stop := signalContext()
		defer stop()

		printer := &watchPrinter{
			out:     stdout,
			live:    decision.useLive,
			lawBase: resolved.lawBase,
			outDir:  resolved.outputDir,
			preview: preview.Options{
				Limit:   resolved.cfg.PreviewLimit,
				NoColor: resolveNoColor(resolved.noColor, stdout),
			},
		}
		opts := watch.Options{Delay: resolved.cfg.Debounce(), Logger: logger}
		if err := watch.Run(ctx, path, opts, printer.update); err != nil {
			fmt.Fprintf(stderr, "Watch failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

// watchPrinter renders a preview and rewrites the export for each change.
type watchPrinter struct {
	mu      sync.Mutex
	out     io.Writer
	live    bool
	lawBase int
	outDir  string
	preview preview.Options
}

// update handles one settled change of the watched file.
func (p *watchPrinter) update(ctx context.Context, text string) {
	result := quiz.Parse(text, quiz.Lenient)
	conv, convErr := export.Convert(text, p.lawBase)

	p.mu.Lock()
	defer p.mu.Unlock()
	if ctx.Err() != nil {
		return
	}
	if p.live {
		fmt.Fprint(p.out, clearScreen)
	} else {
		fmt.Fprintln(p.out, "---")
	}
	fmt.Fprint(p.out, preview.Format(result.Records, p.preview))
	printDiagnostics(p.out, conv.Diagnostics)

	if errors.Is(convErr, export.ErrNoQuestions) {
		fmt.Fprintln(p.out, "No questions to convert. Check the format.")
		return
	}
	path, err := export.WriteFile(p.outDir, conv.Base, conv.Entries)
	if err != nil {
		fmt.Fprintf(p.out, "Write failed: %v\n", err)
		return
	}
	fmt.Fprintf(p.out, "Wrote %s (%d questions)\n", path, len(conv.Entries))
}
