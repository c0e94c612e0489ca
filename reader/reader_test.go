package reader

import (
	"strings"
	"testing"

	"github.com/tsawler/assetquality/model"
)

func TestAssembleTextRowsAndRuns(t *testing.T) {
	chars := []model.Char{
		// Second row
		{R: '逾', X: 50, Y: 700, W: 12},
		{R: '期', X: 62, Y: 700, W: 12},
		// First row: two runs separated by a wide gap
		{R: '資', X: 50, Y: 720, W: 12},
		{R: '產', X: 62, Y: 720, W: 12},
		{R: '品', X: 74, Y: 720, W: 12},
		{R: '質', X: 86, Y: 720, W: 12},
		{R: '1', X: 300, Y: 720, W: 6},
	}
	got := AssembleText(chars)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d: %q", len(lines), got)
	}
	if !strings.HasPrefix(lines[0], "資產品質") {
		t.Errorf("Expected first line to start with the anchor, got %q", lines[0])
	}
	if !strings.Contains(lines[0], " 1") {
		t.Errorf("Expected a run break before the number, got %q", lines[0])
	}
	if lines[1] != "逾期" {
		t.Errorf("Expected second line 逾期, got %q", lines[1])
	}
}

func TestAssembleTextEmpty(t *testing.T) {
	if got := AssembleText(nil); got != "" {
		t.Errorf("Expected empty string, got %q", got)
	}
}
