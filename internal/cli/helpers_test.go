package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

const scenarioA = "Q1?\nA\nB\nC\nD\nE\n"

// runCLI runs the CLI in a fresh working directory with stdin set to input.
func runCLI(t *testing.T, input string, args ...string) (int, string, string) {
	t.Helper()
	original := inputReader
	inputReader = strings.NewReader(input)
	t.Cleanup(func() { inputReader = original })

	var out, errOut bytes.Buffer
	code := Run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

// inTempDir switches the working directory to a fresh temp dir and clears
// environment overrides.
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	for _, key := range []string{"QUIZJSON_LAW_NUMBER", "QUIZJSON_OUTPUT_DIR", "QUIZJSON_NO_COLOR", "QUIZJSON_LOG_FILE", "QUIZJSON_LOG_LEVEL"} {
		t.Setenv(key, "")
	}
	return dir
}

// fakeTerminal makes every writer look like a TTY for the test.
func fakeTerminal(t *testing.T, tty bool) {
	t.Helper()
	original := isTerminal
	isTerminal = func(io.Writer) bool { return tty }
	t.Cleanup(func() { isTerminal = original })
}

type fakeCopier struct {
	text string
	err  error
}

func (c *fakeCopier) Copy(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}
