package ui

import "testing"

func TestCalculateColumns_FixedAndFlex(t *testing.T) {
	specs := []ColumnSpec{
		{Title: "A", FixedWidth: 10},
		{Title: "B", FlexRatio: 25},
		{Title: "C", FlexRatio: 75},
	}

	columns := CalculateColumns(specs, 110)

	if columns[0].Width != 10 {
		t.Errorf("fixed column width = %d, want 10", columns[0].Width)
	}
	if columns[1].Width != 25 {
		t.Errorf("flex column B width = %d, want 25", columns[1].Width)
	}
	if columns[2].Width != 75 {
		t.Errorf("flex column C width = %d, want 75", columns[2].Width)
	}
}

func TestCalculateColumns_RespectsMinimums(t *testing.T) {
	specs := []ColumnSpec{
		{Title: "A", FlexRatio: 10, MinWidth: 30},
		{Title: "B", FlexRatio: 90},
	}

	columns := CalculateColumns(specs, 60)

	if columns[0].Width < 30 {
		t.Errorf("column A width = %d, want at least the 30 minimum", columns[0].Width)
	}
}

func TestPostColumns_MarkerColumnFirst(t *testing.T) {
	columns := CalculateColumns(PostColumns(), 120)

	if len(columns) != 6 {
		t.Fatalf("len(columns) = %d, want 6", len(columns))
	}
	if columns[0].Width != 3 {
		t.Errorf("marker column width = %d, want 3", columns[0].Width)
	}
	if columns[1].Title != "Title" {
		t.Errorf("columns[1].Title = %q, want Title", columns[1].Title)
	}
}
