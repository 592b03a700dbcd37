// Package model defines the data structures shared by the fetcher, the
// comparator and the report writers.
//
// This package contains the following main types:
//   - SiteInfo: the canonical record normalized from a wiki's siteinfo response
//   - ExtensionInfo: version and VCS metadata for one installed extension
//   - CompareOptions: the filtering flags for a comparison
//   - Comparison: the row-by-row result that report writers render
//
// Models are kept free of I/O so that siteinfo, compare and report can all
// depend on them without import cycles. All types marshal to JSON for the
// JSON report format.
package model
