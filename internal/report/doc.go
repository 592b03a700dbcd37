// Package report renders a model.Comparison.
//
// This package contains writers for different output formats:
//   - HTMLWriter: the comparison table embedded by the page endpoint
//   - MarkdownWriter: a GitHub-flavored Markdown table
//   - JSONWriter: the raw comparison for tool integration
//   - SimpleWriter: plain text for terminal display
//
// The comparison itself is computed by the compare package; writers only
// decide how rows look. Row labels of the fixed and summary rows and all
// placeholders are localized through an i18n.Translator. Extension names
// are written verbatim.
package report
