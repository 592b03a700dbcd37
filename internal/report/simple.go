package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/nao1215/versioncompare/internal/i18n"
	"github.com/nao1215/versioncompare/internal/model"
)

const ruleWidth = 70

// SimpleWriter outputs a human-readable text comparison for terminals.
//
// Each row is a label line followed by one indented line per value. A
// merged row prints its values once under "=", otherwise the first wiki's
// values are marked "<" and the second's ">".
type SimpleWriter struct {
	baseWriter

	// inlineDiff adds a "~" line with a character diff to rows that differ
	// and exist on both sides.
	inlineDiff bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithInlineDiff enables the character diff line.
func WithInlineDiff(enabled bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.inlineDiff = enabled
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, tr *i18n.Translator, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{baseWriter: newBaseWriter(output, tr)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs the comparison in human-readable format.
func (w *SimpleWriter) Write(c *model.Comparison) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, c)

	var lastKind model.RowKind = -1
	for _, r := range c.Rows {
		if r.Kind != lastKind {
			sb.WriteString(strings.Repeat("-", ruleWidth))
			sb.WriteString("\n")
			lastKind = r.Kind
		}
		w.writeRow(&sb, r)
	}

	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")

	return io.WriteString(w.output, sb.String())
}

// writeHeader writes the title and both wiki names.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, c *model.Comparison) {
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")
	sb.WriteString(strings.ToUpper(w.tr.T(i18n.MsgTitle)))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n\n")

	fmt.Fprintf(sb, "  < %s\n", w.headerLine(c.Left))
	fmt.Fprintf(sb, "  > %s\n", w.headerLine(c.Right))
	sb.WriteString("\n")
}

func (w *SimpleWriter) headerLine(h model.HeaderCell) string {
	name := headerName(h)
	if h.SourceURL != "" {
		name += "  " + h.SourceURL
	}
	return name
}

// writeRow writes one comparison row.
func (w *SimpleWriter) writeRow(sb *strings.Builder, r model.Row) {
	fmt.Fprintf(sb, "%s\n", w.label(r))
	if r.Merged {
		for _, line := range w.cellLines(r.Left) {
			fmt.Fprintf(sb, "  = %s\n", line)
		}
		return
	}
	for _, line := range w.cellLines(r.Left) {
		fmt.Fprintf(sb, "  < %s\n", line)
	}
	for _, line := range w.cellLines(r.Right) {
		fmt.Fprintf(sb, "  > %s\n", line)
	}
	if w.inlineDiff && r.Style != model.StyleSame && !r.Left.Absent && !r.Right.Absent {
		left := strings.Join(r.Left.Lines, " ")
		right := strings.Join(r.Right.Lines, " ")
		fmt.Fprintf(sb, "  ~ %s\n", charDiff(left, right))
	}
}

// charDiff marks deletions from a as [-x-] and insertions from b as {+x+}.
func charDiff(a, b string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(a, b, false))

	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			sb.WriteString("{+" + d.Text + "+}")
		case diffmatchpatch.DiffDelete:
			sb.WriteString("[-" + d.Text + "-]")
		case diffmatchpatch.DiffEqual:
			sb.WriteString(d.Text)
		}
	}
	return sb.String()
}
