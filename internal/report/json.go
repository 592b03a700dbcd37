package report

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/nao1215/versioncompare/internal/model"
)

// JSONWriter outputs the comparison as a single JSON document for scripts.
// Labels stay in English and placeholders are not applied: an absent side
// is {"absent": true} and a side without version data has no "lines".
type JSONWriter struct {
	output io.Writer
	prefix string
	indent string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent indents nested values with indent, each line starting with
// prefix. Without it the output is compact.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.prefix = prefix
		w.indent = indent
	}
}

// WithPrettyPrint is WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{output: output}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write encodes c followed by a newline. Version strings such as
// "<1.0>" are written as is, not as \u003c escapes.
func (w *JSONWriter) Write(c *model.Comparison) (int, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if w.prefix != "" || w.indent != "" {
		enc.SetIndent(w.prefix, w.indent)
	}
	if err := enc.Encode(c); err != nil {
		return 0, err
	}
	return w.output.Write(buf.Bytes())
}
