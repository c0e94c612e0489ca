package extract

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

// disclosurePage builds a character cloud shaped like a full disclosure
// table: three label indents, then the current-period figure columns.
func disclosurePage() []model.Char {
	var chars []model.Char
	chars = putText(chars, "資產品質", 200, 800, 12)
	chars = putText(chars, "114年3月31日", 200, 780, 12)

	type cell struct {
		text string
		x    float64
	}
	rows := [][]cell{
		{{"業務別", 50}, {"逾期放款金額", 250}, {"放款總額", 350}, {"逾放比率", 450}},
		{{"企業金融", 50}, {"擔保", 120}, {"1,234", 250}, {"100,000", 350}, {"1.23%", 450}},
		{{"無擔保", 120}, {"567", 250}, {"90,000", 350}, {"0.63%", 450}},
		{{"消費金融", 50}, {"住宅抵押貸款", 120}, {"100", 250}, {"50,000", 350}, {"0.20%", 450}},
		{{"現金卡", 120}, {"-", 250}, {"-", 350}, {"-", 450}},
		{{"小額純信用貸款", 120}, {"88", 250}, {"10,000", 350}, {"0.88%", 450}},
		{{"其他", 120}, {"擔保", 190}, {"12", 250}, {"3,456", 350}, {"0.35%", 450}},
		{{"其他", 120}, {"無擔保", 190}, {"7", 250}, {"890", 350}, {"0.79%", 450}},
		{{"放款業務合計", 50}, {"1,989", 250}, {"250,000", 350}, {"0.78%", 450}},
	}
	y := 760.0
	for _, row := range rows {
		for _, c := range row {
			chars = putText(chars, c.text, c.x, y, 6)
		}
		y -= 20
	}
	return chars
}

func TestTableStrategyFullTable(t *testing.T) {
	s := NewTableStrategy()
	rows := s.Extract(Input{Page: model.PageContent{Chars: disclosurePage()}})
	if len(rows) != model.SubjectCount {
		t.Fatalf("Expected %d rows, got %d", model.SubjectCount, len(rows))
	}
	for i, subject := range model.Subjects {
		if rows[i].Subject != subject {
			t.Errorf("Row %d: expected %v, got %v", i, subject, rows[i].Subject)
		}
	}

	if rows[0].OverdueAmount != 1234 || rows[0].TotalLoan != 100000 || rows[0].OverdueRatio != 1.23 {
		t.Errorf("Corporate secured figures wrong: %+v", rows[0])
	}
	if rows[3].OverdueAmount != 0 || rows[3].OverdueRatio != 0 {
		t.Errorf("Placeholder cash card row must be zero, got %+v", rows[3])
	}
	if rows[7].Subject != model.Total || rows[7].TotalLoan != 250000 {
		t.Errorf("Total row wrong: %+v", rows[7])
	}
}

func TestTableStrategyRejectsProse(t *testing.T) {
	var chars []model.Char
	y := 800.0
	for i := 0; i < 10; i++ {
		chars = putText(chars, "本行資產品質維持穩定無重大變化", 50, y, 12)
		y -= 20
	}
	s := NewTableStrategy()
	if rows := s.Extract(Input{Page: model.PageContent{Chars: chars}}); rows != nil {
		t.Errorf("Expected nil for prose, got %d rows", len(rows))
	}
}

func TestTableStrategyName(t *testing.T) {
	if got := NewTableStrategy().Name(); got != "table" {
		t.Errorf("Expected table, got %q", got)
	}
}
