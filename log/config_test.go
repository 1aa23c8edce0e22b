package log

import (
	"slices"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Level
	}{
		{"trace", LevelTrace},
		{"TRACE", LevelTrace},
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"WARN", LevelWarn},
		{"bogus", DefaultLevel},
		{"", DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q): expected %v, got %v", tt.input, tt.want, got)
			}
		})
	}
}

func TestLevel_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level Level
		want  string
	}{
		{LevelTrace, "trace"},
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String(): expected %q, got %q", tt.level, tt.want, got)
		}
	}
}

func TestLevels(t *testing.T) {
	t.Parallel()

	want := []string{"trace", "debug", "info", "warn", "error"}

	got := slices.Collect(Levels())

	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Format
	}{
		{"json", FormatJSON},
		{"text", FormatText},
		{" JSON ", FormatJSON},
		{"Text", FormatText},
		{"yaml", DefaultFormat},
		{"", DefaultFormat},
	}

	for _, tt := range tests {
		if got := ParseFormat(tt.input); got != tt.want {
			t.Errorf("ParseFormat(%q): expected %v, got %v", tt.input, tt.want, got)
		}
	}
}

func TestMakeFormatTimeFunc(t *testing.T) {
	t.Parallel()

	stamp := time.Date(2026, 8, 23, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		layout string
		want   string
	}{
		{"named layout", "RFC3339", "2026-08-23T10:30:00Z"},
		{"named layout mixed case", "rfc3339", "2026-08-23T10:30:00Z"},
		{"named layout kitchen", "Kitchen", "10:30AM"},
		{"custom layout", "2006-01-02", "2026-08-23"},
		{"none disables timestamps", "none", ""},
		{"empty disables timestamps", "  ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			format := makeFormatTimeFunc(tt.layout)

			if got := format(stamp); got != tt.want {
				t.Errorf("layout %q: expected %q, got %q", tt.layout, tt.want, got)
			}
		})
	}
}
