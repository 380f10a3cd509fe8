package notify

import (
	"bytes"
	"testing"
	"time"

	"quizjson/internal/testutil"
)

// TestMessageExpires verifies a message disappears after its duration.
func TestMessageExpires(t *testing.T) {
	clock := testutil.NewFakeClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	msg := NewMessage(Info, "Saved", clock.Now())
	if !msg.Active(clock.Now()) {
		t.Fatalf("expected message to be active")
	}
	clock.Advance(DefaultDuration - time.Millisecond)
	if !msg.Active(clock.Now()) {
		t.Fatalf("expected message to be active before expiry")
	}
	clock.Advance(time.Millisecond)
	if msg.Active(clock.Now()) {
		t.Fatalf("expected message to expire")
	}
}

// TestEmptyMessageInactive verifies the zero message is never shown.
func TestEmptyMessageInactive(t *testing.T) {
	if (Message{}).Active(time.Now()) {
		t.Fatalf("expected zero message to be inactive")
	}
}

// TestWriterNotify verifies plain status lines.
func TestWriterNotify(t *testing.T) {
	var out bytes.Buffer
	NewWriter(&out, true).Notify(Warn, "No questions to convert")
	if out.String() != "No questions to convert\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}
