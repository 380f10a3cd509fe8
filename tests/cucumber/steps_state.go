//go:build cucumber
// +build cucumber

package cucumber

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/cucumber/godog"
)

// featureState holds scenario state for cucumber CLI tests.
type featureState struct {
	workDir     string
	previousWD  string
	previousEnv map[string]*string
	stdout      bytes.Buffer
	stderr      bytes.Buffer
	exitCode    int
}

// InitializeScenario wires cucumber steps to the feature state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^an empty working directory$`, state.anEmptyWorkingDirectory)
	ctx.Step(`^a quiz file "([^"]+)" containing:$`, state.aFileContaining)
	ctx.Step(`^an empty quiz file "([^"]+)"$`, state.anEmptyFile)
	ctx.Step(`^a config file containing:$`, state.aConfigFileContaining)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^the exit code is (\d+)$`, state.theExitCodeIs)
	ctx.Step(`^stdout contains "([^"]*)"$`, state.stdoutContains)
	ctx.Step(`^stderr contains "([^"]*)"$`, state.stderrContains)
	ctx.Step(`^the output lists these commands:$`, state.theOutputListsCommands)
	ctx.Step(`^the file "([^"]+)" contains JSON:$`, state.theFileContainsJSON)
	ctx.Step(`^the file "([^"]+)" does not exist$`, state.theFileDoesNotExist)
}

// reset clears buffers and resets state before each scenario.
func (s *featureState) reset() {
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
	s.workDir = ""
	s.previousWD = ""
	s.previousEnv = map[string]*string{}
}

// cleanup restores environment and removes temporary files.
func (s *featureState) cleanup() {
	if s.previousWD != "" {
		_ = os.Chdir(s.previousWD)
	}
	for key, value := range s.previousEnv {
		if value == nil {
			_ = os.Unsetenv(key)
			continue
		}
		_ = os.Setenv(key, *value)
	}
	if s.workDir != "" {
		_ = os.RemoveAll(s.workDir)
	}
}

// unsetEnv records and removes an environment variable for the scenario.
func (s *featureState) unsetEnv(key string) error {
	if _, exists := s.previousEnv[key]; !exists {
		if current, ok := os.LookupEnv(key); ok {
			copy := current
			s.previousEnv[key] = &copy
		} else {
			s.previousEnv[key] = nil
		}
	}
	if err := os.Unsetenv(key); err != nil {
		return fmt.Errorf("unset env %s: %w", key, err)
	}
	return nil
}
