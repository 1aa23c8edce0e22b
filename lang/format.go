package lang

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// EncodeYAML writes the document as YAML to the writer.
//
// Keys appear in insertion order at every nesting level. With indent 0 the
// document is written in flow style on a single line.
func (d *Document) EncodeYAML(ctx context.Context, w io.Writer, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	data, err := yaml.MarshalContext(ctx, d.root.mapSlice(), opts...)
	if err != nil {
		return ErrYAMLMarshal.Wrap(err)
	}

	_, err = w.Write(data)

	return err
}

// EncodeJSON writes the document as JSON to the writer.
// Keys appear in insertion order at every nesting level.
func (d *Document) EncodeJSON(_ context.Context, w io.Writer, indent int) error {
	var (
		data []byte
		err  error
	)

	if indent > 0 {
		data, err = json.MarshalIndent(d.root, "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(d.root)
	}

	if err != nil {
		return ErrJSONMarshal.Wrap(err)
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

// EncodeDSL writes the document in native source syntax to the writer.
//
// The output re-parses to an equal document: numbers always carry an
// explicit fractional part, and keys are emitted in insertion order. With
// indent 0 the pairs are written in a single line, comma-separated.
func (d *Document) EncodeDSL(_ context.Context, w io.Writer, indent int) error {
	count := 0

	for key, val := range d.root.Pairs() {
		if count > 0 {
			if indent > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			} else {
				if _, err := fmt.Fprint(w, ", "); err != nil {
					return err
				}
			}
		}

		err := writePair(w, key, val, indent, 0)
		if err != nil {
			return err
		}

		count++
	}

	// Final newline
	_, err := fmt.Fprintln(w)

	return err
}

// mapSlice converts the object to an ordered YAML mapping.
func (o *Object) mapSlice() yaml.MapSlice {
	ms := make(yaml.MapSlice, 0, o.Len())

	for key, val := range o.Pairs() {
		ms = append(ms, yaml.MapItem{Key: key, Value: val.yamlValue()})
	}

	return ms
}

func (v Value) yamlValue() any {
	if v.Kind == KindObject {
		return v.Object.mapSlice()
	}

	return v.Number
}

// MarshalJSON implements json.Marshaler preserving key order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}

		buf.Write(k)
		buf.WriteByte(':')

		v, err := json.Marshal(o.vals[i])
		if err != nil {
			return nil, err
		}

		buf.Write(v)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.Kind == KindObject {
		return v.Object.MarshalJSON()
	}

	return json.Marshal(v.Number)
}

// writePair formats one key-value pair in native syntax.
func writePair(w io.Writer, key string, val Value, indent, depth int) error {
	if _, err := fmt.Fprint(w, strings.Repeat(" ", depth*indent), key, " "); err != nil {
		return err
	}

	return writeValue(w, val, indent, depth)
}

// writeValue formats a value based on its kind.
func writeValue(w io.Writer, val Value, indent, depth int) error {
	if val.Kind == KindNumber {
		_, err := fmt.Fprint(w, formatNumber(val.Number))

		return err
	}

	if _, err := fmt.Fprint(w, "{"); err != nil {
		return err
	}

	count := 0

	for key, inner := range val.Object.Pairs() {
		if indent > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		} else {
			if count > 0 {
				if _, err := fmt.Fprint(w, ","); err != nil {
					return err
				}
			}

			if _, err := fmt.Fprint(w, " "); err != nil {
				return err
			}
		}

		err := writePair(w, key, inner, indent, depth+1)
		if err != nil {
			return err
		}

		count++
	}

	if indent > 0 {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}

		_, err := fmt.Fprint(w, strings.Repeat(" ", depth*indent), "}")

		return err
	}

	_, err := fmt.Fprint(w, " }")

	return err
}

// formatNumber renders a float with an explicit fractional part so the
// result stays inside the numeric literal grammar.
func formatNumber(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}
