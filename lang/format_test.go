package lang

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

const sampleSource = "def pi 3.14;\nx $(pi)\nbox { a 1.5, b 2.25 }\n"

func TestEncodeYAML(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, sampleSource)

	var buf bytes.Buffer

	err := doc.EncodeYAML(context.Background(), &buf, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "x: 3.14\nbox:\n  a: 1.5\n  b: 2.25\n"
	if got := buf.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

// TestEncodeYAML_BoolLikeKeyQuoted pins the serializer's handling of keys
// that YAML 1.1 would read as booleans: they come out quoted, which keeps
// the key a string without changing its value.
func TestEncodeYAML_BoolLikeKeyQuoted(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, "x 3.14\ny { a 1.5 }\n")

	var buf bytes.Buffer

	err := doc.EncodeYAML(context.Background(), &buf, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "x: 3.14\n\"y\":\n  a: 1.5\n"
	if got := buf.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestEncodeYAML_KeyOrder(t *testing.T) {
	t.Parallel()

	// Reverse-alphabetical keys expose any accidental sorting.
	doc := mustParse(t, "zz 1.5\nmm 2.5\naa 3.5\n")

	var buf bytes.Buffer

	err := doc.EncodeYAML(context.Background(), &buf, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "zz: 1.5\nmm: 2.5\naa: 3.5\n"
	if got := buf.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestEncodeYAML_Flow(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, sampleSource)

	var buf bytes.Buffer

	err := doc.EncodeYAML(context.Background(), &buf, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := strings.TrimRight(buf.String(), "\n")

	if strings.Contains(got, "\n") {
		t.Errorf("expected single-line flow output, got %q", got)
	}

	for _, frag := range []string{"x: 3.14", "a: 1.5", "b: 2.25"} {
		if !strings.Contains(got, frag) {
			t.Errorf("expected output to contain %q, got %q", frag, got)
		}
	}
}

func TestEncodeJSON(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, sampleSource)

	tests := []struct {
		name   string
		indent int
		want   string
	}{
		{
			name:   "compact",
			indent: 0,
			want:   `{"x":3.14,"box":{"a":1.5,"b":2.25}}` + "\n",
		},
		{
			name:   "indented",
			indent: 2,
			want: `{
  "x": 3.14,
  "box": {
    "a": 1.5,
    "b": 2.25
  }
}` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			err := doc.EncodeJSON(context.Background(), &buf, tt.indent)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got := buf.String(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestEncodeJSON_Empty(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, "")

	var buf bytes.Buffer

	err := doc.EncodeJSON(context.Background(), &buf, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := buf.String(); got != "{}\n" {
		t.Errorf("expected empty object, got %q", got)
	}
}

func TestEncodeDSL(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, sampleSource)

	tests := []struct {
		name   string
		indent int
		want   string
	}{
		{
			name:   "block",
			indent: 2,
			want:   "x 3.14\nbox {\n  a 1.5\n  b 2.25\n}\n",
		},
		{
			name:   "flow",
			indent: 0,
			want:   "x 3.14, box { a 1.5, b 2.25 }\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			err := doc.EncodeDSL(context.Background(), &buf, tt.indent)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got := buf.String(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

// TestEncodeDSL_RoundTrip verifies the native encoding re-parses to an equal
// document, including whole-valued numbers that must keep their fractional
// part to stay inside the literal grammar.
func TestEncodeDSL_RoundTrip(t *testing.T) {
	t.Parallel()

	sources := []string{
		sampleSource,
		"a 1.0\nb 2.0\n",
		"o { p { q 0.5 } }",
		"def k { n 4.25 };\nv $(k)\nw $(k)\n",
		"",
	}

	for _, source := range sources {
		for _, indent := range []int{0, 2, 4} {
			doc := mustParse(t, source)

			var buf bytes.Buffer

			err := doc.EncodeDSL(context.Background(), &buf, indent)
			if err != nil {
				t.Fatalf("source %q indent %d: encode failed: %v", source, indent, err)
			}

			again, err := ParseString(context.Background(), buf.String())
			if err != nil {
				t.Fatalf("source %q indent %d: re-parse failed: %v\noutput: %q",
					source, indent, err, buf.String())
			}

			if !doc.Equal(again) {
				t.Errorf("source %q indent %d: round trip changed document\noutput: %q",
					source, indent, buf.String())
			}
		}
	}
}

func TestFormatNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want string
	}{
		{1, "1.0"},
		{3.14, "3.14"},
		{0.5, "0.5"},
		{-2, "-2.0"},
		{0, "0.0"},
		{100.25, "100.25"},
	}

	for _, tt := range tests {
		if got := formatNumber(tt.in); got != tt.want {
			t.Errorf("formatNumber(%v): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
