package logger

import (
	"testing"
)

func TestInitializeJSON(t *testing.T) {
	if err := Initialize(true); err != nil {
		t.Fatalf("Initialize(true) error: %v", err)
	}
	if Logger == nil {
		t.Fatal("Logger is nil after Initialize")
	}
	if !JSONOutput {
		t.Error("JSONOutput = false, want true")
	}
	Cleanup()
}

func TestInitializeConsole(t *testing.T) {
	if err := Initialize(false); err != nil {
		t.Fatalf("Initialize(false) error: %v", err)
	}
	if JSONOutput {
		t.Error("JSONOutput = true, want false")
	}
	Cleanup()
}

func TestHelpersBeforeInitialize(t *testing.T) {
	// The package-level helpers must never panic, even with the no-op logger.
	Infow("info", "k", "v")
	Warnw("warn", "k", "v")
	Errorw("error", "k", "v")
	Debugw("debug", "k", "v")
	Infof("info %d", 1)
	Warnf("warn %d", 2)
	Errorf("error %d", 3)
}
