package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew_Levels(t *testing.T) {
	quiet, err := New(false)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if quiet.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("debug should be disabled by default")
	}

	verbose, err := New(true)
	if err != nil {
		t.Fatalf("new verbose: %v", err)
	}
	if !verbose.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("verbose should enable debug")
	}
}

func TestOrNop(t *testing.T) {
	if OrNop(nil) == nil {
		t.Fatalf("expected a logger")
	}
}
