package ui

// columns.go provides column width calculation for bubbles/table.
// Use ColumnSpec and CalculateColumns() instead of duplicating width math.

import (
	"github.com/charmbracelet/bubbles/table"
)

// ColumnSpec defines a table column with flexible or fixed width.
// Use FlexRatio for columns that should expand/contract with terminal width.
// Use FixedWidth for columns that should maintain constant width.
type ColumnSpec struct {
	Title      string
	MinWidth   int // minimum width (0 = no minimum)
	FixedWidth int // if > 0, use this exact width (ignores FlexRatio)
	FlexRatio  int // relative ratio for flexible columns (0 = fixed-only)
}

// CalculateColumns computes column widths from specs.
// Flexible columns split remaining space by ratio after fixed columns are
// allocated, respecting minimums.
func CalculateColumns(specs []ColumnSpec, totalWidth int) []table.Column {
	if totalWidth < 50 {
		totalWidth = 50
	}

	fixedTotal := 0
	flexTotal := 0
	for _, s := range specs {
		if s.FixedWidth > 0 {
			fixedTotal += s.FixedWidth
		} else {
			flexTotal += s.FlexRatio
		}
	}

	remaining := totalWidth - fixedTotal
	if remaining < 0 {
		remaining = 0
	}

	columns := make([]table.Column, len(specs))
	for i, s := range specs {
		var width int
		if s.FixedWidth > 0 {
			width = s.FixedWidth
		} else if flexTotal > 0 {
			width = remaining * s.FlexRatio / flexTotal
		}

		if s.MinWidth > 0 && width < s.MinWidth {
			width = s.MinWidth
		}

		columns[i] = table.Column{Title: s.Title, Width: width}
	}

	return columns
}

// PostColumns returns column specs for the board listing table.
// The first column marks rows already opened in the browser.
func PostColumns() []ColumnSpec {
	return []ColumnSpec{
		{Title: " ", FixedWidth: 3},
		{Title: "Title", FlexRatio: 100, MinWidth: 30},
		{Title: "Cmts", FixedWidth: 6},
		{Title: "Author", FixedWidth: 14},
		{Title: "Views", FixedWidth: 8},
		{Title: "Time", FixedWidth: 10},
	}
}
