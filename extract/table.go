package extract

import (
	"github.com/tsawler/assetquality/category"
	"github.com/tsawler/assetquality/model"
	"github.com/tsawler/assetquality/tables"
)

// Column layout of a well-formed disclosure table: up to three label cells,
// then the current-period figures. Prior-period columns may follow and are
// ignored.
const (
	tableMinCols    = 6
	tableOverdueCol = 3
	tableTotalCol   = 4
	tableRatioCol   = 5
)

// TableStrategy reconstructs a cell grid from the page's positioned
// characters and walks it with the stateful category resolver. It is the
// primary strategy: when a document has a machine-readable table this is the
// most reliable reading of it.
type TableStrategy struct {
	Builder *tables.Builder
}

// NewTableStrategy returns the strategy with the default grid builder.
func NewTableStrategy() *TableStrategy {
	return &TableStrategy{Builder: tables.NewBuilder()}
}

// Name implements Strategy.
func (s *TableStrategy) Name() string { return "table" }

// Extract implements Strategy. It returns nil when the page has no grid wide
// enough to carry the figure columns.
func (s *TableStrategy) Extract(in Input) []model.Row {
	grid := s.Builder.Build(in.Page.Chars)
	if grid == nil || grid.ColCount() < tableMinCols {
		return nil
	}

	var rows []model.Row
	st := category.State{}
	for i := 0; i < grid.RowCount(); i++ {
		col0 := category.Normalize(grid.Cell(i, 0))
		col1 := category.Normalize(grid.Cell(i, 1))
		col2 := category.Normalize(grid.Cell(i, 2))

		var subject model.Subject
		subject, st = in.Resolver.ResolveCells(st, col0, col1, col2)
		if !subject.Valid() {
			continue
		}
		rows = append(rows, newRow(subject,
			grid.Cell(i, tableOverdueCol),
			grid.Cell(i, tableTotalCol),
			grid.Cell(i, tableRatioCol)))
	}
	return Dedupe(rows)
}
