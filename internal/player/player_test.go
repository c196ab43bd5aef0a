package player

import (
	"testing"
	"time"

	"emberloom/internal/connio"
	"emberloom/internal/lang"
)

func TestFlushJoinsBufferedParagraphsAndClearsIt(t *testing.T) {
	conn := connio.NewMemConnection()
	p := New("max", "Max", lang.Gender("m"), conn)
	p.Tell("You look around.")
	p.Tell("A cat watches you.")
	p.Flush()

	if len(conn.Outputs) != 1 {
		t.Fatalf("want one flushed output, got %d", len(conn.Outputs))
	}
	want := "You look around.\n\nA cat watches you."
	if conn.Outputs[0] != want {
		t.Errorf("got %q, want %q", conn.Outputs[0], want)
	}
	conn.Outputs = nil
	p.Flush()
	if len(conn.Outputs) != 0 {
		t.Error("flush with nothing buffered should be a no-op")
	}
}

func TestMarkLocationKnownOnlySecondCallReportsKnown(t *testing.T) {
	p := New("max", "Max", lang.Gender("m"), connio.NewMemConnection())
	if p.MarkLocationKnown("hall") {
		t.Error("first visit should report as not previously known")
	}
	if !p.MarkLocationKnown("hall") {
		t.Error("second visit should report as already known")
	}
}

func TestIdleTimeoutForWizardIsLonger(t *testing.T) {
	p := New("max", "Max", lang.Gender("m"), connio.NewMemConnection())
	if p.IdleTimeoutFor() != IdleTimeout {
		t.Errorf("non-wizard should get the normal idle timeout")
	}
	p.Living.Privileges["wizard"] = true
	if p.IdleTimeoutFor() != WizardIdleTimeout {
		t.Errorf("wizard should get the extended idle timeout")
	}
}

func TestIdleForMeasuresSinceLastTouch(t *testing.T) {
	p := New("max", "Max", lang.Gender("m"), connio.NewMemConnection())
	now := time.Now()
	p.Touch(now)
	later := now.Add(5 * time.Minute)
	if p.IdleFor(later) != 5*time.Minute {
		t.Errorf("got %v", p.IdleFor(later))
	}
}
