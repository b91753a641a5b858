package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		input string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			if got := parseLevel(tc.input); got != tc.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	t.Run("respects the configured level", func(t *testing.T) {
		logger := NewLogger(LogConfig{Level: "error", Format: "json", ServiceName: "test"})
		if logger.GetLevel() != zerolog.ErrorLevel {
			t.Errorf("GetLevel() = %v, want %v", logger.GetLevel(), zerolog.ErrorLevel)
		}
	})

	t.Run("bound logger emits through leveled chains", func(t *testing.T) {
		// zerolog's leveled methods take a pointer receiver, so the logger
		// must be bound to a variable before chaining (as in cmd/server).
		var buf bytes.Buffer
		logger := NewLogger(LogConfig{Level: "info", Format: "json", ServiceName: "test"}).Output(&buf)
		logger.Error().Str("stage", "startup").Msg("configuration failed")

		if !strings.Contains(buf.String(), "configuration failed") {
			t.Errorf("log output = %q, want startup failure entry", buf.String())
		}
		if !strings.Contains(buf.String(), `"stage":"startup"`) {
			t.Errorf("log output = %q, want stage field", buf.String())
		}
	})
}
