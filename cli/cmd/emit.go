package cmd

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/ardnew/dotkv/lang"
	"github.com/ardnew/dotkv/log"
)

// Emit translates a source file into a structured text document on stdout.
type Emit struct {
	Input  string `help:"Input source file or '-' for stdin" name:"input" required:"" short:"i"`
	Format string `default:"yaml" enum:"yaml,json,dsl" help:"Output format" short:"f"`
	Indent int    `default:"2" help:"Indent width for output (0 selects flow style)"`
}

// Run executes the emit command.
func (e *Emit) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	var file *os.File
	if e.Input == "-" {
		file = os.Stdin
	} else {
		var err error

		file, err = os.Open(e.Input)
		if err != nil {
			return lang.ErrReadInput.Wrap(err).
				With(slog.String("input", e.Input))
		}
		defer file.Close()
	}

	return e.emit(ctx, bufio.NewReader(file), os.Stdout)
}

// emit parses the source and writes the document in the selected format.
func (e *Emit) emit(ctx context.Context, r io.Reader, w io.Writer) error {
	doc, err := lang.ParseReader(ctx, r, lang.WithLogger(log.Default()))
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("command", "emit"))
	}

	log.DebugContext(ctx, "document parsed",
		slog.String("input", e.Input),
		slog.Int("key_count", doc.Root().Len()),
	)

	switch e.Format {
	case "json":
		return doc.EncodeJSON(ctx, w, e.Indent)
	case "dsl":
		return doc.EncodeDSL(ctx, w, e.Indent)
	default:
		return doc.EncodeYAML(ctx, w, e.Indent)
	}
}
