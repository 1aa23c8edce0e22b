package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ardnew/dotkv/lang"
)

func TestEmit_Formats(t *testing.T) {
	t.Parallel()

	const source = "def pi 3.14;\nx $(pi)\nbox { a 1.5 }\n"

	tests := []struct {
		name   string
		format string
		indent int
		want   string
	}{
		{
			name:   "yaml block",
			format: "yaml",
			indent: 2,
			want:   "x: 3.14\nbox:\n  a: 1.5\n",
		},
		{
			name:   "json compact",
			format: "json",
			indent: 0,
			want:   `{"x":3.14,"box":{"a":1.5}}` + "\n",
		},
		{
			name:   "dsl block",
			format: "dsl",
			indent: 2,
			want:   "x 3.14\nbox {\n  a 1.5\n}\n",
		},
		{
			name:   "dsl flow",
			format: "dsl",
			indent: 0,
			want:   "x 3.14, box { a 1.5 }\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := Emit{Input: "-", Format: tt.format, Indent: tt.indent}

			var buf bytes.Buffer

			err := e.emit(context.Background(), strings.NewReader(source), &buf)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got := buf.String(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestEmit_ParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		source   string
		sentinel error
	}{
		{
			name:     "undefined constant",
			source:   "x $(missing)",
			sentinel: lang.ErrUndefinedConstant,
		},
		{
			name:     "unexpected token",
			source:   "def a 1.0",
			sentinel: lang.ErrUnexpectedToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := Emit{Input: "-", Format: "yaml", Indent: 2}

			var buf bytes.Buffer

			err := e.emit(context.Background(), strings.NewReader(tt.source), &buf)
			if !errors.Is(err, tt.sentinel) {
				t.Fatalf("expected %v, got %v", tt.sentinel, err)
			}

			if buf.Len() != 0 {
				t.Errorf("expected no partial output, got %q", buf.String())
			}
		})
	}
}

func TestEmit_MissingInputFile(t *testing.T) {
	t.Parallel()

	e := Emit{Input: "/nonexistent/path.kv", Format: "yaml", Indent: 2}

	err := e.Run(context.Background())
	if !errors.Is(err, lang.ErrReadInput) {
		t.Fatalf("expected %v, got %v", lang.ErrReadInput, err)
	}
}
