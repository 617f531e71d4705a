package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/marchenry/bookworm-api/internal/config"
)

func TestSetupLevels(t *testing.T) {
	tests := []struct {
		level   string
		wantErr bool
	}{
		{"debug", false},
		{"info", false},
		{"WARN", false},
		{"error", false},
		{"", false},
		{"verbose", true},
	}

	for _, tt := range tests {
		log, err := Setup(config.ServerConfig{Port: 8080, LogLevel: tt.level})
		if tt.wantErr {
			if err == nil {
				t.Errorf("Setup(%q): expected error, got nil", tt.level)
			}
			continue
		}
		if err != nil {
			t.Errorf("Setup(%q): unexpected error %v", tt.level, err)
		}
		if log == nil {
			t.Errorf("Setup(%q): expected a logger", tt.level)
		}
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if FromContext(ctx) == nil {
		t.Fatal("Expected default logger for bare context")
	}

	custom := slog.Default().With("component", "test")
	ctx = WithLogger(ctx, custom)
	if FromContext(ctx) != custom {
		t.Error("Expected context-carried logger to be returned")
	}
}
