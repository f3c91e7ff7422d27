package logging

import "testing"

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level   string
		debugOn bool
	}{
		{"debug", true},
		{"DEBUG", true},
		{"info", false},
		{"", false},
		{"warn", false},
		{"warning", false},
		{"error", false},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			log, err := New(tt.level)
			if err != nil {
				t.Fatalf("New(%q) failed: %v", tt.level, err)
			}
			if got := log.V(1).Enabled(); got != tt.debugOn {
				t.Errorf("V(1).Enabled() = %v, want %v", got, tt.debugOn)
			}
		})
	}
}

func TestNewUnknownLevel(t *testing.T) {
	if _, err := New("loud"); err == nil {
		t.Error("expected an error for an unknown level")
	}
}
