package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		level   string
		debugOn bool
		infoOn  bool
	}{
		{"debug", true, true},
		{"info", false, true},
		{"error", false, false},
		{"bogus", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l, err := NewLogger(tt.level)
			if err != nil {
				t.Fatalf("NewLogger(%q): %v", tt.level, err)
			}
			defer func() { _ = l.Sync() }()
			if got := l.Core().Enabled(zapcore.DebugLevel); got != tt.debugOn {
				t.Fatalf("debug enabled = %v, want %v", got, tt.debugOn)
			}
			if got := l.Core().Enabled(zapcore.InfoLevel); got != tt.infoOn {
				t.Fatalf("info enabled = %v, want %v", got, tt.infoOn)
			}
		})
	}
}
