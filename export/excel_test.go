package export

import (
	"path/filepath"
	"testing"

	"github.com/tsawler/assetquality/model"
)

func sampleRows() []model.Row {
	return []model.Row{
		{BankCode: 28, BankName: "遠東國際商業銀行", Year: 114, Quarter: 1,
			Subject: model.Total, OverdueAmount: 1989, TotalLoan: 250000, OverdueRatio: 0.78},
		{BankCode: 28, BankName: "遠東國際商業銀行", Year: 114, Quarter: 1,
			Subject: model.CorporateSecured, OverdueAmount: 1234, TotalLoan: 100000, OverdueRatio: 1.23},
		{BankCode: 5, BankName: "華南銀行", Year: 114, Quarter: 1,
			Subject: model.CorporateSecured, OverdueAmount: 42, TotalLoan: 9000, OverdueRatio: 0.46},
	}
}

func TestWorkbookLayout(t *testing.T) {
	f, err := Workbook(sampleRows())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue(SheetName, "A1")
	if err != nil {
		t.Fatalf("Expected readable sheet, got %v", err)
	}
	if got != "資料年度" {
		t.Errorf("Expected header 資料年度, got %q", got)
	}
	if got, _ := f.GetCellValue(SheetName, "D1"); got != "逾期放款金額(單位：仟元)" {
		t.Errorf("Expected amount header, got %q", got)
	}

	// Row 2 is bank 05 (sorted before 28 by the zero-padded label).
	if got, _ := f.GetCellValue(SheetName, "G2"); got != "05_華南銀行" {
		t.Errorf("Expected 05_華南銀行 first, got %q", got)
	}
	// Bank 28's subjects come in canonical order.
	if got, _ := f.GetCellValue(SheetName, "C3"); got != "01_企業金融_擔保" {
		t.Errorf("Expected corporate secured before total, got %q", got)
	}
	if got, _ := f.GetCellValue(SheetName, "C4"); got != "08_合計" {
		t.Errorf("Expected total last, got %q", got)
	}
	if got, _ := f.GetCellValue(SheetName, "B2"); got != "Q1" {
		t.Errorf("Expected quarter Q1, got %q", got)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	if err := WriteFile(path, sampleRows()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
}

func TestWorkbookEmpty(t *testing.T) {
	f, err := Workbook(nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	defer f.Close()
	if got, _ := f.GetCellValue(SheetName, "A1"); got != "資料年度" {
		t.Errorf("Expected the header row even with no data, got %q", got)
	}
}
