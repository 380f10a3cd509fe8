// Package source obtains raw quiz text from files and streams.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format identifies how a source file is turned into quiz text.
type Format int

const (
	// FormatText is plain text, read verbatim.
	FormatText Format = iota
	// FormatHTML is an HTML page, converted to text first.
	FormatHTML
)

// Sentinel errors for source detection.
var (
	// ErrUnsupportedFormat marks recognised word-processor formats that are not extracted.
	ErrUnsupportedFormat = errors.New("unsupported document format; save the file as .txt or paste the text")

	// ErrUnknownFormat marks files whose extension is not a quiz source.
	ErrUnknownFormat = errors.New("unknown file type; expected .txt, .html, .doc or .docx")
)

// StdinPath is the path that selects standard input.
const StdinPath = "-"

// Detect returns the format for a path based on its extension.
func Detect(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".text", "":
		return FormatText, nil
	case ".html", ".htm":
		return FormatHTML, nil
	case ".doc", ".docx":
		return 0, fmt.Errorf("%s: %w", filepath.Base(path), ErrUnsupportedFormat)
	default:
		return 0, fmt.Errorf("%s: %w", filepath.Base(path), ErrUnknownFormat)
	}
}

// ReadFile returns the quiz text held in a file.
func ReadFile(path string) (string, error) {
	format, err := Detect(path)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read source: %w", err)
	}
	if format == FormatHTML {
		return htmlToText(string(data))
	}
	return string(data), nil
}

// Read returns all text from r.
func Read(r io.Reader) (string, error) {
	if r == nil {
		return "", errors.New("read source: reader is nil")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read source: %w", err)
	}
	return string(data), nil
}

// Open reads from stdin when path is StdinPath and from the file otherwise.
func Open(path string, stdin io.Reader) (string, error) {
	if path == StdinPath {
		return Read(stdin)
	}
	return ReadFile(path)
}
