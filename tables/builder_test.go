package tables

import (
	"testing"

	"github.com/tsawler/assetquality/model"
)

// putText lays the runes of text out left to right starting at (x, y),
// advancing by width w per rune.
func putText(chars []model.Char, text string, x, y, w float64) []model.Char {
	for _, r := range text {
		chars = append(chars, model.Char{R: r, X: x, Y: y, W: w})
		x += w
	}
	return chars
}

// makeTablePage builds a character cloud shaped like a disclosure table:
// a title line, a header, and data rows with four aligned columns.
func makeTablePage() []model.Char {
	var chars []model.Char
	chars = putText(chars, "資產品質", 200, 800, 12)

	cols := []float64{50, 250, 350, 450}
	rows := [][]string{
		{"業務別", "逾期放款", "放款總額", "逾放比率"},
		{"企業金融擔保", "1,234", "100,000", "1.23%"},
		{"無擔保", "567", "90,000", "0.63%"},
		{"住宅抵押貸款", "100", "50,000", "0.20%"},
		{"現金卡", "-", "-", "-"},
		{"小額純信用貸款", "88", "10,000", "0.88%"},
		{"放款業務合計", "1,989", "250,000", "0.79%"},
	}
	y := 760.0
	for _, row := range rows {
		for c, cell := range row {
			chars = putText(chars, cell, cols[c], y, 6)
		}
		y -= 20
	}
	return chars
}

func TestNewBuilderDefaults(t *testing.T) {
	b := NewBuilder()
	if b.MinDataRows != 5 {
		t.Errorf("Expected MinDataRows 5, got %d", b.MinDataRows)
	}
	if b.MinDataCols != 4 {
		t.Errorf("Expected MinDataCols 4, got %d", b.MinDataCols)
	}
}

func TestBuildReconstructsGrid(t *testing.T) {
	grid := NewBuilder().Build(makeTablePage())
	if grid == nil {
		t.Fatal("Expected a grid, got nil")
	}
	if grid.ColCount() != 4 {
		t.Fatalf("Expected 4 columns, got %d", grid.ColCount())
	}
	if grid.RowCount() != 7 {
		t.Fatalf("Expected 7 rows (title excluded), got %d", grid.RowCount())
	}

	if got := grid.Cell(1, 0); got != "企業金融擔保" {
		t.Errorf("Cell(1,0) = %q", got)
	}
	if got := grid.Cell(1, 1); got != "1,234" {
		t.Errorf("Cell(1,1) = %q", got)
	}
	if got := grid.Cell(6, 3); got != "0.79%" {
		t.Errorf("Cell(6,3) = %q", got)
	}
}

func TestBuildRejectsProse(t *testing.T) {
	// Plain paragraphs have single-run lines and must not produce a grid.
	var chars []model.Char
	y := 800.0
	for i := 0; i < 10; i++ {
		chars = putText(chars, "本行資產品質維持穩定無重大變化", 50, y, 12)
		y -= 20
	}
	if grid := NewBuilder().Build(chars); grid != nil {
		t.Errorf("Expected nil grid for prose, got %d rows", grid.RowCount())
	}
}

func TestBuildEmpty(t *testing.T) {
	if grid := NewBuilder().Build(nil); grid != nil {
		t.Error("Expected nil grid for no characters")
	}
}

func TestCellOutOfRange(t *testing.T) {
	grid := &Grid{Cells: [][]string{{"a"}}}
	if got := grid.Cell(5, 5); got != "" {
		t.Errorf("Expected empty string, got %q", got)
	}
}
