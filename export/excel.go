package export

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/tsawler/assetquality/model"
)

// SheetName is the single sheet of the report workbook.
const SheetName = "資產品質"

// Headers are the report columns, in the published order. Amounts are in
// thousands of NTD.
var Headers = []string{
	"資料年度",
	"季度",
	"業務別項目",
	"逾期放款金額(單位：仟元)",
	"放款總額(單位：仟元)",
	"逾放比率",
	"銀行名稱",
}

// Workbook renders the rows into an in-memory workbook. The caller owns the
// returned file and must Close it.
func Workbook(rows []model.Row) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		f.Close()
		return nil, err
	}

	header := make([]interface{}, len(Headers))
	for i, h := range Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		f.Close()
		return nil, err
	}

	for i, r := range sortRows(rows) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		record := []interface{}{
			r.Year,
			"Q" + strconv.Itoa(r.Quarter),
			r.Subject.String(),
			r.OverdueAmount,
			r.TotalLoan,
			r.OverdueRatio,
			BankLabel(r.BankCode, r.BankName),
		}
		if err := f.SetSheetRow(SheetName, cell, &record); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

// WriteFile renders the rows and saves the workbook at path.
func WriteFile(path string, rows []model.Row) error {
	f, err := Workbook(rows)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving report %s: %w", path, err)
	}
	return nil
}

// BankLabel renders the zero-padded bank column value, e.g.
// "08_遠東國際商業銀行". The padding keeps the report sorted by code.
func BankLabel(code int, name string) string {
	return fmt.Sprintf("%02d_%s", code, name)
}

// sortRows orders by bank label, then canonical subject order, without
// mutating the input.
func sortRows(rows []model.Row) []model.Row {
	out := make([]model.Row, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		bi := BankLabel(out[i].BankCode, out[i].BankName)
		bj := BankLabel(out[j].BankCode, out[j].BankName)
		if bi != bj {
			return bi < bj
		}
		return out[i].Subject < out[j].Subject
	})
	return out
}
