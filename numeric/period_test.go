package numeric

import "testing"

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		text    string
		want    Period
		wantOK  bool
	}{
		{"民國114年03月31日", Period{114, 1}, true},
		{"114.6.30", Period{114, 2}, true},
		{"113 年 9 月 30 日", Period{113, 3}, true},
		{"114年12月31日", Period{114, 4}, true},
		{"no date here", Period{}, false},
	}
	for _, tt := range tests {
		got, ok := ParsePeriod(tt.text)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParsePeriod(%q) = %v, %v; want %v, %v", tt.text, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestParsePeriodFromFilename(t *testing.T) {
	got, ok := ParsePeriodFromFilename("28_遠東國際商業銀行_114Q1.pdf")
	if !ok || got != (Period{114, 1}) {
		t.Errorf("Expected 114Q1, got %v, %v", got, ok)
	}
	if _, ok := ParsePeriodFromFilename("report.pdf"); ok {
		t.Error("Expected no period from unconventional filename")
	}
}

func TestPeriodLabel(t *testing.T) {
	if got := (Period{114, 3}).Label(); got != "114Q3" {
		t.Errorf("Expected 114Q3, got %s", got)
	}
}

func TestParseBankFilename(t *testing.T) {
	code, bank, ok := ParseBankFilename("data/114Q1/3_合作金庫商業銀行_114Q1.pdf")
	if !ok || code != 3 || bank != "合作金庫商業銀行" {
		t.Errorf("Expected 3/合作金庫商業銀行, got %d/%s/%v", code, bank, ok)
	}
	if _, _, ok := ParseBankFilename("notes.pdf"); ok {
		t.Error("Expected failure for unconventional filename")
	}
}
