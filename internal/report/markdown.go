package report

import (
	"io"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/nao1215/versioncompare/internal/i18n"
	"github.com/nao1215/versioncompare/internal/model"
)

// MarkdownWriter outputs the comparison as a GitHub-flavored Markdown
// table followed by a pie chart of the extension distribution.
//
// Markdown has no column spanning, so merged rows repeat the value in
// both columns.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer, tr *i18n.Translator) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output, tr)}
}

// Write outputs the comparison in Markdown format.
func (w *MarkdownWriter) Write(c *model.Comparison) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1(w.tr.T(i18n.MsgTitle))
	md.PlainText("")

	w.writeTable(md, c)
	w.writeDistribution(md, c)
	w.writeAlert(md, c)

	return len(md.String()), md.Build()
}

// writeTable writes the comparison rows.
func (w *MarkdownWriter) writeTable(md *markdown.Markdown, c *model.Comparison) {
	rows := make([][]string, 0, len(c.Rows)+1)
	rows = append(rows, []string{"", w.headerLogo(c.Left), w.headerLogo(c.Right)})
	for _, r := range c.Rows {
		left := w.cellText(r.Left)
		right := left
		if !r.Merged {
			right = w.cellText(r.Right)
		}
		rows = append(rows, []string{"**" + escapeCell(w.label(r)) + "**", left, right})
	}

	md.Table(markdown.TableSet{
		Header: []string{"", escapeCell(headerName(c.Left)), escapeCell(headerName(c.Right))},
		Rows:   rows,
	})
	md.PlainText("")
}

func (w *MarkdownWriter) headerLogo(h model.HeaderCell) string {
	if h.Logo == "" {
		return w.tr.T(i18n.MsgNoLogo)
	}
	return "![" + escapeCell(h.WikiID) + "](" + logoEscaper.Replace(h.Logo) + ")"
}

// logoEscaper percent-encodes the characters that end a Markdown link
// destination or a table cell.
var logoEscaper = strings.NewReplacer(
	" ", "%20",
	"(", "%28",
	")", "%29",
	"<", "%3C",
	">", "%3E",
	"|", "%7C",
	"\n", "%0A",
)

func (w *MarkdownWriter) cellText(c model.Cell) string {
	lines := w.cellLines(c)
	escaped := make([]string, len(lines))
	for i, l := range lines {
		escaped[i] = escapeCell(l)
	}
	return strings.Join(escaped, "<br>")
}

// writeDistribution writes a mermaid pie chart of unique and shared
// extensions. Nothing is written when neither wiki has extensions.
func (w *MarkdownWriter) writeDistribution(md *markdown.Markdown, c *model.Comparison) {
	s := c.Summary
	if s.LeftUnique+s.RightUnique+s.Shared == 0 {
		return
	}

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle(w.tr.T(i18n.MsgDistribution)),
		piechart.WithShowData(true),
	)
	if s.LeftUnique > 0 {
		chart.LabelAndIntValue(w.tr.T(i18n.MsgUniqueTo, headerName(c.Left)), uint64(s.LeftUnique))
	}
	if s.RightUnique > 0 {
		chart.LabelAndIntValue(w.tr.T(i18n.MsgUniqueTo, headerName(c.Right)), uint64(s.RightUnique))
	}
	if s.Shared > 0 {
		chart.LabelAndIntValue(w.tr.T(model.LabelSharedExtensions), uint64(s.Shared))
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes a note when the extension sets differ.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, c *model.Comparison) {
	unique := c.Summary.LeftUnique + c.Summary.RightUnique
	if unique == 0 {
		md.Tip(w.tr.T(i18n.MsgSameExtensions))
	} else {
		md.Note(w.tr.T(i18n.MsgOnlyDifferences, unique))
	}
	md.PlainText("")
}

// escapeCell keeps a value from breaking the table layout.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
