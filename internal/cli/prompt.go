package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// prompter asks init's questions on out and reads answers line by line.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// ask prints label with its default and returns the trimmed answer. done is
// true once the input is exhausted.
func (p *prompter) ask(label, hint string) (answer string, done bool, err error) {
	if hint != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", label, hint)
	} else {
		fmt.Fprintf(p.out, "%s: ", label)
	}
	line, err := p.in.ReadString('\n')
	switch {
	case errors.Is(err, io.EOF):
		done = true
	case err != nil:
		return "", false, err
	}
	return strings.TrimSpace(line), done, nil
}

// text returns the answer, or fallback for an empty one.
func (p *prompter) text(label, fallback string) (string, error) {
	for {
		answer, done, err := p.ask(label, fallback)
		if err != nil {
			return "", err
		}
		switch {
		case answer != "":
			return answer, nil
		case fallback != "":
			return fallback, nil
		case done:
			return "", fmt.Errorf("missing input for %s", label)
		}
	}
}

// lawNumber repeats the question until a positive whole number is given.
func (p *prompter) lawNumber(label, fallback string) (string, error) {
	for {
		value, err := p.text(label, fallback)
		if err != nil {
			return "", err
		}
		if n, convErr := strconv.Atoi(value); convErr == nil && n >= 1 {
			return strconv.Itoa(n), nil
		}
		fmt.Fprintf(p.out, "%q is not a positive whole number.\n", value)
		if _, peekErr := p.in.Peek(1); peekErr != nil {
			return "", fmt.Errorf("invalid %s %q", strings.ToLower(label), value)
		}
	}
}

// confirm asks a yes/no question; an empty answer takes the default.
func (p *prompter) confirm(label string, fallback bool) (bool, error) {
	hint := "y/N"
	if fallback {
		hint = "Y/n"
	}
	for {
		answer, done, err := p.ask(label, hint)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "":
			return fallback, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		if done {
			return false, fmt.Errorf("invalid response %q", answer)
		}
		fmt.Fprintln(p.out, "Please answer yes or no.")
	}
}
