package tables

import (
	"sort"
	"strings"

	"github.com/tsawler/assetquality/model"
)

// Grid is a reconstructed table: rows of cell strings. Every row has the
// same number of cells; cells with no text are empty strings.
type Grid struct {
	Cells [][]string
}

// RowCount returns the number of rows in the grid.
func (g *Grid) RowCount() int {
	return len(g.Cells)
}

// ColCount returns the number of columns in the grid.
func (g *Grid) ColCount() int {
	if len(g.Cells) == 0 {
		return 0
	}
	return len(g.Cells[0])
}

// Cell returns the text of the cell at (row, col), or "" when out of range.
func (g *Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g.Cells) || col < 0 || col >= len(g.Cells[row]) {
		return ""
	}
	return g.Cells[row][col]
}

// Builder reconstructs grids from character clouds.
type Builder struct {
	// RowTolerance is the maximum vertical distance between characters on
	// the same logical row (in points).
	RowTolerance float64

	// ColGap is the minimum horizontal whitespace that separates two text
	// runs into different cells (in points).
	ColGap float64

	// ColAlign is the tolerance used when clustering run start positions
	// into column boundaries across rows (in points).
	ColAlign float64

	// MinDataCols is the minimum number of runs a row must have to count
	// as a table data row when voting on column boundaries.
	MinDataCols int

	// MinDataRows is the minimum number of voting rows required before a
	// grid is reported at all.
	MinDataRows int
}

// NewBuilder creates a Builder with defaults tuned for the disclosure
// corpus: CJK glyphs within a label touch, while table columns are
// separated by at least a full glyph width.
func NewBuilder() *Builder {
	return &Builder{
		RowTolerance: 2.0,
		ColGap:       9.0,
		ColAlign:     14.0,
		MinDataCols:  4,
		MinDataRows:  5,
	}
}

// run is a horizontally contiguous piece of text within one row.
type run struct {
	text  string
	start float64
}

// line is one logical row of characters.
type line struct {
	y    float64
	runs []run
}

// Build reconstructs a grid from the page's characters. It returns nil when
// the characters do not form a plausible table (too few aligned multi-run
// rows).
func (b *Builder) Build(chars []model.Char) *Grid {
	lines := b.groupLines(chars)
	if len(lines) == 0 {
		return nil
	}

	// Rows with several separated runs vote on the column boundaries.
	var voters []line
	for _, ln := range lines {
		if len(ln.runs) >= b.MinDataCols {
			voters = append(voters, ln)
		}
	}
	if len(voters) < b.MinDataRows {
		return nil
	}

	bounds := b.clusterBoundaries(voters)
	if len(bounds) < 2 {
		return nil
	}

	// Only the contiguous span of rows around the voters belongs to the
	// table; leading page text above the first voter is kept out.
	first, last := b.tableSpan(lines, voters)

	grid := &Grid{}
	for _, ln := range lines[first : last+1] {
		row := make([]string, len(bounds))
		for _, r := range ln.runs {
			col := columnFor(bounds, r.start, b.ColAlign)
			if row[col] != "" {
				row[col] += " "
			}
			row[col] += r.text
		}
		grid.Cells = append(grid.Cells, row)
	}
	return grid
}

// groupLines clusters characters into rows by vertical position and splits
// each row into runs at horizontal gaps. Rows come out top-to-bottom, runs
// left-to-right.
func (b *Builder) groupLines(chars []model.Char) []line {
	if len(chars) == 0 {
		return nil
	}

	sorted := make([]model.Char, len(chars))
	copy(sorted, chars)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y > sorted[j].Y // PDF origin is bottom-left
		}
		return sorted[i].X < sorted[j].X
	})

	var lines []line
	var cur []model.Char
	curY := sorted[0].Y
	flush := func() {
		if len(cur) > 0 {
			lines = append(lines, b.splitRuns(cur, curY))
		}
		cur = cur[:0]
	}
	for _, c := range sorted {
		if len(cur) > 0 && curY-c.Y > b.RowTolerance {
			flush()
			curY = c.Y
		}
		cur = append(cur, c)
	}
	flush()
	return lines
}

// splitRuns orders a row's characters by X and cuts it into runs wherever
// the gap to the previous character exceeds ColGap.
func (b *Builder) splitRuns(chars []model.Char, y float64) line {
	sort.SliceStable(chars, func(i, j int) bool { return chars[i].X < chars[j].X })

	ln := line{y: y}
	var sb strings.Builder
	start := chars[0].X
	end := chars[0].X
	for i, c := range chars {
		if i > 0 && c.X-end > b.ColGap {
			ln.runs = append(ln.runs, run{text: sb.String(), start: start})
			sb.Reset()
			start = c.X
		}
		sb.WriteRune(c.R)
		if c.X+c.W > end {
			end = c.X + c.W
		}
	}
	ln.runs = append(ln.runs, run{text: sb.String(), start: start})
	return ln
}

// clusterBoundaries merges the run start positions of the voting rows into
// column boundaries, averaging positions within ColAlign of each other.
func (b *Builder) clusterBoundaries(voters []line) []float64 {
	var starts []float64
	for _, ln := range voters {
		for _, r := range ln.runs {
			starts = append(starts, r.start)
		}
	}
	sort.Float64s(starts)

	var bounds []float64
	clusterStart := starts[0]
	clusterSum := starts[0]
	clusterN := 1
	for _, x := range starts[1:] {
		if x-clusterStart <= b.ColAlign {
			clusterSum += x
			clusterN++
			continue
		}
		bounds = append(bounds, clusterSum/float64(clusterN))
		clusterStart = x
		clusterSum = x
		clusterN = 1
	}
	bounds = append(bounds, clusterSum/float64(clusterN))
	return bounds
}

// tableSpan returns the index range of lines covered by the voting rows.
func (b *Builder) tableSpan(lines, voters []line) (first, last int) {
	firstY := voters[0].y
	lastY := voters[len(voters)-1].y
	first = 0
	last = len(lines) - 1
	for i, ln := range lines {
		if ln.y == firstY {
			first = i
		}
		if ln.y == lastY {
			last = i
		}
	}
	return first, last
}

// columnFor maps a run start position onto a column index: the rightmost
// boundary not right of the run (within the alignment tolerance).
func columnFor(bounds []float64, x, align float64) int {
	col := 0
	for i, b := range bounds {
		if x >= b-align {
			col = i
		}
	}
	return col
}
