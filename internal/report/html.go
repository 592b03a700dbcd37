package report

import (
	"bytes"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/nao1215/versioncompare/internal/compare"
	"github.com/nao1215/versioncompare/internal/i18n"
	"github.com/nao1215/versioncompare/internal/model"
)

// CSS classes used by the HTML output.
const (
	TableClass = "version-compare-table"
	ErrorClass = "error"

	headerWidth = "35%"
)

// HTMLWriter outputs the comparison as an HTML table fragment.
//
// The fragment is built as an x/net/html node tree and serialized with
// html.Render, so every wiki-supplied string is escaped.
type HTMLWriter struct {
	baseWriter
}

// NewHTMLWriter creates an HTMLWriter that outputs to the given writer.
func NewHTMLWriter(output io.Writer, tr *i18n.Translator) *HTMLWriter {
	return &HTMLWriter{baseWriter: newBaseWriter(output, tr)}
}

// Write renders the comparison table.
func (w *HTMLWriter) Write(c *model.Comparison) (int, error) {
	return renderNodes(w.output, w.Table(c))
}

// Table builds the <table> node for c.
func (w *HTMLWriter) Table(c *model.Comparison) *html.Node {
	table := element(atom.Table, attr("class", TableClass))

	header := element(atom.Tr)
	header.AppendChild(element(atom.Th))
	header.AppendChild(w.headerCell(c.Left, model.StyleLeftOnly))
	header.AppendChild(w.headerCell(c.Right, model.StyleRightOnly))
	table.AppendChild(header)

	for _, r := range c.Rows {
		table.AppendChild(w.row(r))
	}
	return table
}

func (w *HTMLWriter) headerCell(h model.HeaderCell, style model.RowStyle) *html.Node {
	th := element(atom.Th, attr("class", string(style)), attr("width", headerWidth))
	if h.Logo != "" {
		th.AppendChild(element(atom.Img, attr("src", h.Logo)))
	} else {
		th.AppendChild(paragraph(w.tr.T(i18n.MsgNoLogo)))
	}
	th.AppendChild(paragraph(h.WikiID))
	th.AppendChild(paragraph(h.ServerName))
	return th
}

func (w *HTMLWriter) row(r model.Row) *html.Node {
	tr := element(atom.Tr)

	th := element(atom.Th, attr("class", string(r.Style)))
	th.AppendChild(paragraph(w.label(r)))
	tr.AppendChild(th)

	if r.Merged {
		tr.AppendChild(w.cell(r.Left, attr("colspan", "2")))
		return tr
	}
	tr.AppendChild(w.cell(r.Left))
	tr.AppendChild(w.cell(r.Right))
	return tr
}

func (w *HTMLWriter) cell(c model.Cell, attrs ...html.Attribute) *html.Node {
	td := element(atom.Td, attrs...)
	for _, line := range w.cellLines(c) {
		td.AppendChild(paragraph(line))
	}
	return td
}

// RenderHTML compares left and right and returns the HTML table.
func RenderHTML(left, right *model.SiteInfo, opts model.CompareOptions, tr *i18n.Translator) (string, error) {
	var buf bytes.Buffer
	if _, err := NewHTMLWriter(&buf, tr).Write(compare.Compare(left, right, opts)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ErrorHTML returns the fragment shown instead of a table when the wiki
// at url could not be read: a line break followed by a single error
// paragraph naming url.
func ErrorHTML(url string, tr *i18n.Translator) string {
	if tr == nil {
		tr = i18n.Default()
	}
	var buf bytes.Buffer
	_, _ = renderNodes(&buf,
		element(atom.Br),
		paragraph(tr.T(i18n.MsgFetchFailed, url), attr("class", ErrorClass)),
	)
	return buf.String()
}

func renderNodes(output io.Writer, nodes ...*html.Node) (int, error) {
	var buf bytes.Buffer
	for _, n := range nodes {
		if err := html.Render(&buf, n); err != nil {
			return 0, err
		}
	}
	return output.Write(buf.Bytes())
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func paragraph(text string, attrs ...html.Attribute) *html.Node {
	p := element(atom.P, attrs...)
	p.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return p
}
