package source

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quizjson/internal/quiz"
)

// TestDetect verifies extension-based format detection.
func TestDetect(t *testing.T) {
	cases := map[string]Format{
		"quiz.txt":  FormatText,
		"QUIZ.TXT":  FormatText,
		"quiz":      FormatText,
		"page.html": FormatHTML,
		"page.htm":  FormatHTML,
	}
	for path, want := range cases {
		got, err := Detect(path)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", path, err)
		}
		if got != want {
			t.Fatalf("%s: expected format %d, got %d", path, want, got)
		}
	}
}

// TestDetectUnsupported verifies word-processor files are rejected distinctly.
func TestDetectUnsupported(t *testing.T) {
	for _, path := range []string{"quiz.doc", "quiz.DOCX"} {
		_, err := Detect(path)
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Fatalf("%s: expected unsupported format error, got %v", path, err)
		}
	}
	_, err := Detect("quiz.pdf")
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected unknown format error, got %v", err)
	}
}

// TestReadFileText verifies text files are returned verbatim.
func TestReadFileText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz.txt")
	if err := os.WriteFile(path, []byte("Q1?\r\nA\r\n"), 0o644); err != nil {
		t.Fatalf("write quiz: %v", err)
	}
	text, err := ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if text != "Q1?\r\nA\r\n" {
		t.Fatalf("unexpected text %q", text)
	}
}

// TestReadFileHTML verifies HTML paragraphs become separate lines.
func TestReadFileHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz.html")
	page := "<html><body><p>Q1?</p><p>A</p><p>B</p><p>C</p><p>D</p><p>E</p></body></html>"
	if err := os.WriteFile(path, []byte(page), 0o644); err != nil {
		t.Fatalf("write quiz: %v", err)
	}
	text, err := ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	result := quiz.Parse(text, quiz.Strict)
	if len(result.Records) != 1 || result.Records[0].CorrectAnswer != "A" {
		t.Fatalf("expected one parsed record, got %+v from %q", result.Records, text)
	}
}

// TestReadFileHTMLKeepsTextVerbatim verifies Markdown characters and entities reach the parser unchanged.
func TestReadFileHTMLKeepsTextVerbatim(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz.html")
	page := "<p>What is 2*3?</p><p>6</p><p>1. five</p><p>_x_</p><p>a &lt; b</p><p>[x] &amp; y</p>"
	if err := os.WriteFile(path, []byte(page), 0o644); err != nil {
		t.Fatalf("write quiz: %v", err)
	}
	text, err := ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	result := quiz.Parse(text, quiz.Strict)
	if len(result.Records) != 1 {
		t.Fatalf("expected one record, got %+v from %q", result.Records, text)
	}
	record := result.Records[0]
	if record.Question != "What is 2*3?" || record.CorrectAnswer != "6" {
		t.Fatalf("unexpected question or answer: %+v", record)
	}
	want := []string{"1. five", "_x_", "a < b", "[x] & y"}
	if strings.Join(record.IncorrectAnswers, "|") != strings.Join(want, "|") {
		t.Fatalf("expected incorrect answers %q, got %q", want, record.IncorrectAnswers)
	}
}

// TestReadFileMissing verifies missing files return an error.
func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

// TestOpenStdin verifies "-" reads from the provided reader.
func TestOpenStdin(t *testing.T) {
	text, err := Open(StdinPath, strings.NewReader("Q?\n"))
	if err != nil {
		t.Fatalf("open stdin: %v", err)
	}
	if text != "Q?\n" {
		t.Fatalf("unexpected text %q", text)
	}
	if _, err := Open(StdinPath, nil); err == nil {
		t.Fatalf("expected error for nil reader")
	}
}

// TestExampleParses verifies the bundled example is a complete quiz.
func TestExampleParses(t *testing.T) {
	result := quiz.Parse(Example, quiz.Strict)
	if len(result.Records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(result.Records))
	}
	if len(result.Diagnostics) != 0 {
		t.Fatalf("expected no diagnostics, got %v", result.Diagnostics)
	}
}
