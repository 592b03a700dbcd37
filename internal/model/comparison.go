package model

// Side identifies one of the two compared wikis.
type Side int

const (
	// SideLeft is the wiki given as the first URL.
	SideLeft Side = iota

	// SideRight is the wiki given as the second URL.
	SideRight
)

// String returns "left" or "right".
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// RowKind distinguishes the three groups of rows in a comparison table.
type RowKind int

const (
	// RowKindInfo is one of the fixed MediaWiki, PHP and database rows.
	RowKindInfo RowKind = iota

	// RowKindExtension is a per-extension row.
	RowKindExtension

	// RowKindSummary is one of the extension count rows at the end.
	RowKindSummary
)

// String returns a short name for the row kind.
func (k RowKind) String() string {
	switch k {
	case RowKindInfo:
		return "info"
	case RowKindExtension:
		return "extension"
	case RowKindSummary:
		return "summary"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k RowKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// RowStyle is the CSS class of a row's header cell.
type RowStyle string

const (
	// StyleSame marks a row whose properties are identical on both wikis.
	StyleSame RowStyle = "version-compare-same"

	// StyleLeftOnly marks a row present only on the first wiki.
	StyleLeftOnly RowStyle = "version-compare-wiki-1"

	// StyleRightOnly marks a row present only on the second wiki.
	StyleRightOnly RowStyle = "version-compare-wiki-2"

	// StyleDifferent marks a row present on both wikis with differing properties.
	StyleDifferent RowStyle = "version-compare-different"
)

// Labels of the fixed and summary rows. Writers translate them; extension
// rows are labelled with the extension name verbatim.
const (
	LabelMediaWiki        = "MediaWiki"
	LabelPHP              = "PHP"
	LabelDatabase         = "Database"
	LabelTotalExtensions  = "Extensions"
	LabelUniqueExtensions = "Unique extensions"
	LabelSharedExtensions = "Shared extensions"
)

// Cell is the content of one side of a row.
type Cell struct {
	// Absent is set when the record does not exist on this side at all.
	Absent bool `json:"absent,omitempty"`

	// Lines holds each present, non-empty property value in display order.
	// An empty Lines on a non-absent cell means "no version".
	Lines []string `json:"lines,omitempty"`
}

// NoVersion reports whether the cell exists but has nothing to display.
func (c Cell) NoVersion() bool {
	return !c.Absent && len(c.Lines) == 0
}

// Row is one formatted row of the comparison table.
type Row struct {
	Kind  RowKind  `json:"kind"`
	Label string   `json:"label"`
	Style RowStyle `json:"style"`

	// Merged is set when both sides are identical; Right is then a copy of
	// Left and writers render a single cell spanning both columns.
	Merged bool `json:"merged"`

	// MatchHint is nil for rows that are never filtered.
	MatchHint *bool `json:"matchHint,omitempty"`

	Left  Cell `json:"left"`
	Right Cell `json:"right"`
}

// HeaderCell identifies one wiki in the header row.
type HeaderCell struct {
	Logo       string `json:"logo,omitempty"`
	WikiID     string `json:"wikiId"`
	ServerName string `json:"serverName"`
	SourceURL  string `json:"sourceUrl,omitempty"`
}

// Summary holds the extension counters computed by a comparison.
type Summary struct {
	LeftTotal   int `json:"leftTotal"`
	RightTotal  int `json:"rightTotal"`
	LeftUnique  int `json:"leftUnique"`
	RightUnique int `json:"rightUnique"`
	Shared      int `json:"shared"`
}

// Comparison is the full, already filtered, comparison of two wikis.
type Comparison struct {
	Options CompareOptions `json:"options"`
	Left    HeaderCell     `json:"left"`
	Right   HeaderCell     `json:"right"`
	Rows    []Row          `json:"rows"`
	Summary Summary        `json:"summary"`
}

// RowsOfKind returns the rows of the given kind in table order.
func (c *Comparison) RowsOfKind(kind RowKind) []Row {
	var rows []Row
	for _, r := range c.Rows {
		if r.Kind == kind {
			rows = append(rows, r)
		}
	}
	return rows
}

// Row returns the first row with the given label and kind.
func (c *Comparison) Row(kind RowKind, label string) (Row, bool) {
	for _, r := range c.Rows {
		if r.Kind == kind && r.Label == label {
			return r, true
		}
	}
	return Row{}, false
}

// NewHeaderCell builds the header entry for a wiki.
func NewHeaderCell(info *SiteInfo) HeaderCell {
	return HeaderCell{
		Logo:       info.Logo,
		WikiID:     info.WikiID,
		ServerName: info.ServerName,
		SourceURL:  info.SourceURL,
	}
}
