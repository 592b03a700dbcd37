package compare

import (
	"github.com/nao1215/versioncompare/internal/model"
)

// RowRequest describes one row to format.
type RowRequest struct {
	Kind  model.RowKind
	Label string

	// Left and Right are the records on each side; nil means the record
	// does not exist on that side.
	Left  model.PropertyBag
	Right model.PropertyBag

	// Properties are shown in this order, one line each.
	Properties []string

	// MatchHint is nil for rows that are never filtered.
	MatchHint *bool

	// Split keeps both cells even when the sides are identical.
	Split bool
}

// FormatRow formats a row. It returns false when the row is filtered out
// by opts.
func FormatRow(req RowRequest, opts model.CompareOptions) (model.Row, bool) {
	if req.MatchHint != nil {
		if !*req.MatchHint && opts.HideDiff {
			return model.Row{}, false
		}
		if *req.MatchHint && opts.HideMatch {
			return model.Row{}, false
		}
	}

	identical := Identical(req.Left, req.Right, req.Properties)

	row := model.Row{
		Kind:      req.Kind,
		Label:     req.Label,
		Style:     rowStyle(identical, req.Left, req.Right),
		Merged:    identical && !req.Split,
		MatchHint: req.MatchHint,
		Left:      cell(req.Left, req.Properties),
	}
	if row.Merged {
		row.Right = row.Left
	} else {
		row.Right = cell(req.Right, req.Properties)
	}
	return row, true
}

// Identical reports whether every property is either absent on both sides
// or present on both with the same value. A record missing on exactly one
// side is never identical to the other; two missing records are.
func Identical(left, right model.PropertyBag, properties []string) bool {
	if (left == nil) != (right == nil) {
		return false
	}
	for _, name := range properties {
		lv, lok := lookup(left, name)
		rv, rok := lookup(right, name)
		if lok != rok {
			return false
		}
		if lok && lv != rv {
			return false
		}
	}
	return true
}

func lookup(bag model.PropertyBag, name string) (string, bool) {
	if bag == nil {
		return "", false
	}
	return bag.Property(name)
}

func rowStyle(identical bool, left, right model.PropertyBag) model.RowStyle {
	switch {
	case identical:
		return model.StyleSame
	case left == nil:
		return model.StyleRightOnly
	case right == nil:
		return model.StyleLeftOnly
	default:
		return model.StyleDifferent
	}
}

// cell collects the present, non-empty property values of one side.
func cell(bag model.PropertyBag, properties []string) model.Cell {
	if bag == nil {
		return model.Cell{Absent: true}
	}
	var lines []string
	for _, name := range properties {
		if v, ok := bag.Property(name); ok && v != "" {
			lines = append(lines, v)
		}
	}
	return model.Cell{Lines: lines}
}
