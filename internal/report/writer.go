package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/versioncompare/internal/i18n"
	"github.com/nao1215/versioncompare/internal/model"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported formats.
var ErrUnknownFormat = errors.New("unknown output format")

// Writer defines the interface for comparison output.
type Writer interface {
	// Write outputs the comparison to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(c *model.Comparison) (int, error)
}

// Format names an output format.
type Format string

// Supported output formats.
const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatText     Format = "text"
)

// Formats returns every supported format.
func Formats() []Format {
	return []Format{FormatHTML, FormatMarkdown, FormatJSON, FormatText}
}

// ParseFormat parses a format name case-insensitively. "md" is accepted
// for Markdown and "txt" for text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "html":
		return FormatHTML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	case "text", "txt":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// NewWriter returns the writer for format.
func NewWriter(format Format, output io.Writer, tr *i18n.Translator) (Writer, error) {
	switch format {
	case FormatHTML:
		return NewHTMLWriter(output, tr), nil
	case FormatMarkdown:
		return NewMarkdownWriter(output, tr), nil
	case FormatJSON:
		return NewJSONWriter(output, WithPrettyPrint()), nil
	case FormatText:
		return NewSimpleWriter(output, tr), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
	tr     *i18n.Translator
}

// newBaseWriter creates a baseWriter with the given output destination.
// A nil translator means English.
func newBaseWriter(output io.Writer, tr *i18n.Translator) baseWriter {
	if tr == nil {
		tr = i18n.Default()
	}
	return baseWriter{output: output, tr: tr}
}

// label returns the display label of a row.
func (b baseWriter) label(r model.Row) string {
	if r.Kind == model.RowKindExtension {
		return r.Label
	}
	return b.tr.T(r.Label)
}

// cellLines returns the display lines of one side, with placeholders.
func (b baseWriter) cellLines(c model.Cell) []string {
	switch {
	case c.Absent:
		return []string{i18n.EmptySet}
	case c.NoVersion():
		return []string{b.tr.T(i18n.MsgNoVersion)}
	default:
		return c.Lines
	}
}

// headerName returns "wikiid (servername)", or whichever part is known.
func headerName(h model.HeaderCell) string {
	switch {
	case h.WikiID != "" && h.ServerName != "":
		return h.WikiID + " (" + h.ServerName + ")"
	case h.WikiID != "":
		return h.WikiID
	default:
		return h.ServerName
	}
}
