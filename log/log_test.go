package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger_LevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := Make(&buf,
		WithFormat(FormatJSON),
		WithPretty(false),
		WithLevel(LevelInfo),
	)

	logger.Debug("below threshold")
	logger.Info("at threshold")

	out := buf.String()

	if strings.Contains(out, "below threshold") {
		t.Error("expected debug message to be discarded at info level")
	}

	if !strings.Contains(out, "at threshold") {
		t.Errorf("expected info message in output, got %q", out)
	}
}

func TestLogger_TraceLevelName(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := Make(&buf,
		WithFormat(FormatJSON),
		WithPretty(false),
		WithLevel(LevelTrace),
	)

	logger.Trace("lowest level")

	var record map[string]any

	err := json.Unmarshal(buf.Bytes(), &record)
	if err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput: %q", err, buf.String())
	}

	if got := record["level"]; got != "TRACE" {
		t.Errorf("expected level TRACE, got %v", got)
	}
}

func TestLogger_Attributes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := Make(&buf,
		WithFormat(FormatJSON),
		WithPretty(false),
		WithTimeLayout("none"),
	)

	logger.Info("with attrs", slog.String("key", "value"), slog.Int("count", 3))

	var record map[string]any

	err := json.Unmarshal(buf.Bytes(), &record)
	if err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput: %q", err, buf.String())
	}

	if got := record["key"]; got != "value" {
		t.Errorf("expected key=value, got %v", got)
	}

	if got := record["count"]; got != float64(3) {
		t.Errorf("expected count=3, got %v", got)
	}

	if _, ok := record["time"]; ok {
		t.Error("expected timestamps to be disabled")
	}
}

func TestLogger_Wrap(t *testing.T) {
	t.Parallel()

	var first, second bytes.Buffer

	logger := Make(&first,
		WithFormat(FormatText),
		WithPretty(false),
		WithLevel(LevelWarn),
	)

	wrapped := logger.Wrap(WithOutput(&second), WithLevel(LevelDebug))

	if got := logger.Level(); got != LevelWarn {
		t.Errorf("expected original level warn, got %v", got)
	}

	if got := wrapped.Level(); got != LevelDebug {
		t.Errorf("expected wrapped level debug, got %v", got)
	}

	wrapped.Debug("redirected")

	if first.Len() != 0 {
		t.Errorf("expected no output on original writer, got %q", first.String())
	}

	if !strings.Contains(second.String(), "redirected") {
		t.Errorf("expected message on wrapped writer, got %q", second.String())
	}
}

func TestLogger_With(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := Make(&buf,
		WithFormat(FormatJSON),
		WithPretty(false),
	).With(slog.String("component", "test"))

	logger.Info("tagged")

	if !strings.Contains(buf.String(), `"component":"test"`) {
		t.Errorf("expected bound attribute in output, got %q", buf.String())
	}
}

func TestLogger_ZeroValue(t *testing.T) {
	t.Parallel()

	var logger Logger

	// Zero value loggers discard silently.
	logger.Info("into the void")
	logger.Error("still nothing")

	if got := logger.Level(); got != DefaultLevel {
		t.Errorf("expected default level, got %v", got)
	}

	if got := logger.Format(); got != DefaultFormat {
		t.Errorf("expected default format, got %v", got)
	}
}
