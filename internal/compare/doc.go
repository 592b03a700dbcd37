// Package compare turns two normalized wikis into a model.Comparison.
//
// Compare emits, in order: the header, the MediaWiki, PHP and database rows,
// one row per extension in the sorted union of both wikis' extension names,
// and the extension count rows. Each row goes through FormatRow, which
// decides whether the row is shown (match hint filtering), whether its two
// sides collapse into one column (identity) and how its header is styled.
//
// Compare also records, on each SiteInfo, how many of its extensions the
// other wiki lacks (UniqueExtensionCount).
package compare
