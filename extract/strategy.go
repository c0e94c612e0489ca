package extract

import (
	"github.com/tsawler/assetquality/bankprofile"
	"github.com/tsawler/assetquality/category"
	"github.com/tsawler/assetquality/model"
	"github.com/tsawler/assetquality/numeric"
)

// Input is what a text-layer strategy sees for one candidate page.
type Input struct {
	Page     model.PageContent
	Profile  bankprofile.Profile
	Resolver category.Resolver
}

// Strategy extracts asset-quality rows from a candidate page. Returned rows
// carry only the subject and figures; the pipeline stamps bank and period.
// An empty result means the strategy does not apply to this page and the
// next one should be tried.
type Strategy interface {
	Name() string
	Extract(in Input) []model.Row
}

// newRow builds a row from raw figure tokens. Ratios outside the plausible
// percentage range are artifacts (a swallowed decimal point, a column shift)
// and are zeroed rather than reported.
func newRow(subject model.Subject, overdue, total, ratio string) model.Row {
	row := model.Row{
		Subject:       subject,
		OverdueAmount: numeric.ParseAmount(overdue),
		TotalLoan:     numeric.ParseAmount(total),
		OverdueRatio:  numeric.ParseRatio(ratio),
	}
	if row.OverdueRatio < 0 || row.OverdueRatio > 100 {
		row.OverdueRatio = 0
	}
	return row
}

// Dedupe keeps the first row seen for each subject and returns the survivors
// in canonical subject order. Source tables repeat figures (prior-period
// columns, footnotes restating a row), so first wins.
func Dedupe(rows []model.Row) []model.Row {
	seen := make(map[model.Subject]model.Row, len(rows))
	for _, r := range rows {
		if !r.Subject.Valid() {
			continue
		}
		if _, ok := seen[r.Subject]; !ok {
			seen[r.Subject] = r
		}
	}

	out := make([]model.Row, 0, len(seen))
	for _, s := range model.Subjects {
		if r, ok := seen[s]; ok {
			out = append(out, r)
		}
	}
	return out
}
