package compare

import (
	"sort"
	"strconv"

	"github.com/nao1215/versioncompare/internal/model"
)

// infoRows are the fixed rows shown before the extensions.
var infoRows = []struct {
	label      string
	properties []string
}{
	{model.LabelMediaWiki, []string{model.PropGenerator, model.PropGitHash}},
	{model.LabelPHP, []string{model.PropPHPVersion, model.PropPHPSAPI}},
	{model.LabelDatabase, []string{model.PropDBType, model.PropDBVersion}},
}

// countProperty is the single property of the summary row bags.
const countProperty = "count"

// countBag exposes a number as a one-property bag for the summary rows.
type countBag int

func (c countBag) Property(name string) (string, bool) {
	if name != countProperty {
		return "", false
	}
	return strconv.Itoa(int(c)), true
}

// Compare builds the comparison of left and right.
//
// It resets and then sets UniqueExtensionCount on both records, so the
// records must not be shared with a concurrent comparison.
func Compare(left, right *model.SiteInfo, opts model.CompareOptions) *model.Comparison {
	c := &model.Comparison{
		Options: opts,
		Left:    model.NewHeaderCell(left),
		Right:   model.NewHeaderCell(right),
	}

	add := func(req RowRequest) {
		if row, ok := FormatRow(req, opts); ok {
			c.Rows = append(c.Rows, row)
		}
	}

	for _, r := range infoRows {
		add(RowRequest{
			Kind:       model.RowKindInfo,
			Label:      r.label,
			Left:       left,
			Right:      right,
			Properties: r.properties,
		})
	}

	left.UniqueExtensionCount = 0
	right.UniqueExtensionCount = 0

	for _, name := range ExtensionUnion(left, right) {
		lext, lok := left.Extension(name)
		rext, rok := right.Extension(name)

		if !lok {
			right.UniqueExtensionCount++
		}
		if !rok {
			left.UniqueExtensionCount++
		}

		add(RowRequest{
			Kind:       model.RowKindExtension,
			Label:      name,
			Left:       extensionBag(lext, lok),
			Right:      extensionBag(rext, rok),
			Properties: model.ExtensionProperties(),
			MatchHint:  MatchHint(lext, lok, rext, rok, opts.IgnoreVersion),
		})
	}

	c.Summary = model.Summary{
		LeftTotal:   left.ExtensionCount,
		RightTotal:  right.ExtensionCount,
		LeftUnique:  left.UniqueExtensionCount,
		RightUnique: right.UniqueExtensionCount,
		Shared:      left.SharedExtensionCount(),
	}

	count := []string{countProperty}
	add(RowRequest{
		Kind:       model.RowKindSummary,
		Label:      model.LabelTotalExtensions,
		Left:       countBag(c.Summary.LeftTotal),
		Right:      countBag(c.Summary.RightTotal),
		Properties: count,
		Split:      true,
	})
	add(RowRequest{
		Kind:       model.RowKindSummary,
		Label:      model.LabelUniqueExtensions,
		Left:       countBag(c.Summary.LeftUnique),
		Right:      countBag(c.Summary.RightUnique),
		Properties: count,
		Split:      true,
	})
	add(RowRequest{
		Kind:       model.RowKindSummary,
		Label:      model.LabelSharedExtensions,
		Left:       countBag(c.Summary.Shared),
		Right:      countBag(c.Summary.Shared),
		Properties: count,
	})

	return c
}

// ExtensionUnion returns the sorted, de-duplicated union of both wikis'
// extension names.
func ExtensionUnion(left, right *model.SiteInfo) []string {
	seen := make(map[string]struct{}, len(left.Extensions)+len(right.Extensions))
	for name := range left.Extensions {
		seen[name] = struct{}{}
	}
	for name := range right.Extensions {
		seen[name] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MatchHint returns nil unless the extension is installed on both sides.
// Otherwise it reports whether the versions are equal, or true when
// ignoreVersion is set.
func MatchHint(left model.ExtensionInfo, leftOK bool, right model.ExtensionInfo, rightOK bool, ignoreVersion bool) *bool {
	if !leftOK || !rightOK {
		return nil
	}
	match := ignoreVersion
	if !match {
		lv, lok := left.Property(model.PropVersion)
		rv, rok := right.Property(model.PropVersion)
		match = lok == rok && lv == rv
	}
	return &match
}

// extensionBag returns nil for a missing extension so that FormatRow sees
// a nil interface rather than a zero ExtensionInfo.
func extensionBag(ext model.ExtensionInfo, ok bool) model.PropertyBag {
	if !ok {
		return nil
	}
	return ext
}
