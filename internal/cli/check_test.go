package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestCheckAcceptsConvertedExport verifies a fresh export passes check.
func TestCheckAcceptsConvertedExport(t *testing.T) {
	dir := inTempDir(t)
	if code, _, errOut := runCLI(t, scenarioA+strings.Replace(scenarioA, "Q1?", "Q2?", 1), "convert", "--law", "4", "-"); code != ExitOK {
		t.Fatalf("convert failed: %s", errOut)
	}
	code, out, errOut := runCLI(t, "", "check", filepath.Join(dir, "law_4_tests.json"))
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, errOut)
	}
	if !strings.Contains(out, "Export OK: 2 questions, laws 4-5") {
		t.Fatalf("unexpected output %q", out)
	}
}

// TestCheckReportsLawGaps verifies sequence problems are listed.
func TestCheckReportsLawGaps(t *testing.T) {
	dir := inTempDir(t)
	path := filepath.Join(dir, "bank.yml")
	payload := `- law: 1
  question: "Q1?"
  correctAnswer: "A"
  incorrectAnswers: ["B", "C", "D", "E"]
- law: 3
  question: "Q2?"
  correctAnswer: "A"
  incorrectAnswers: ["B", "C", "D", "E"]
`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write bank: %v", err)
	}
	code, _, errOut := runCLI(t, "", "check", path)
	if code != ExitError || !strings.Contains(errOut, "[1].law") {
		t.Fatalf("expected law gap issue, got %d %q", code, errOut)
	}
}

// TestCheckSchemaFailure verifies schema violations are reported.
func TestCheckSchemaFailure(t *testing.T) {
	dir := inTempDir(t)
	path := filepath.Join(dir, "law_1_tests.json")
	payload := `[{"law": 1, "question": "Q1?", "correctAnswer": "A", "incorrectAnswers": ["B", "C"]}]`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write export: %v", err)
	}
	code, _, errOut := runCLI(t, "", "check", path)
	if code != ExitError || !strings.Contains(errOut, "Check failed") {
		t.Fatalf("expected schema failure, got %d %q", code, errOut)
	}
}

// TestCheckRepair verifies --repair accepts trailing commas.
func TestCheckRepair(t *testing.T) {
	dir := inTempDir(t)
	path := filepath.Join(dir, "law_1_tests.json")
	payload := `[{"law": 1, "question": "Q1?", "correctAnswer": "A", "incorrectAnswers": ["B", "C", "D", "E",],},]`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write export: %v", err)
	}

	if code, _, _ := runCLI(t, "", "check", path); code != ExitError {
		t.Fatalf("expected malformed JSON to fail without --repair, got %d", code)
	}
	code, out, errOut := runCLI(t, "", "check", "--repair", path)
	if code != ExitOK {
		t.Fatalf("expected repaired export to pass, got %d %q", code, errOut)
	}
	if !strings.Contains(errOut, "Repaired") || !strings.Contains(out, "Export OK: 1 questions") {
		t.Fatalf("unexpected output %q %q", out, errOut)
	}
}
