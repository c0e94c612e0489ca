package model

import "fmt"

// Row is a single asset-quality fact: one bank, one quarter, one loan
// category. Amounts are in thousands of NTD, the ratio is a percentage.
// Rows are never mutated after a strategy creates them.
type Row struct {
	BankCode int
	BankName string
	Year     int // ROC calendar year (Gregorian - 1911)
	Quarter  int // 1-4
	Subject  Subject

	OverdueAmount float64
	TotalLoan     float64
	OverdueRatio  float64 // 0 when not applicable

	// SourceRef records the document path and the strategy that produced
	// the row, e.g. "data/114Q1/28_遠東國際商業銀行_114Q1.pdf#positional".
	SourceRef string
}

// Status classifies the outcome of extracting one document.
type Status int

const (
	StatusComplete Status = iota // all eight subjects resolved
	StatusPartial                // 1-7 subjects resolved
	StatusFailed                 // candidate page located but no usable rows
	StatusSourceMissing
)

func (s Status) String() string {
	switch s {
	case StatusComplete:
		return "complete"
	case StatusPartial:
		return "partial"
	case StatusFailed:
		return "failed"
	case StatusSourceMissing:
		return "source_missing"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Result aggregates the extraction outcome for one document. Rows are unique
// by subject and ordered by canonical subject order. Strategy names the
// strategy that produced the rows; rows from different strategies are never
// mixed in one Result.
type Result struct {
	Status     Status
	Rows       []Row
	Strategy   string
	Diagnostic string

	BankCode int
	BankName string
	FilePath string
}

// Complete reports whether all eight subjects were resolved.
func (r *Result) Complete() bool {
	return len(r.Rows) == SubjectCount
}

// ClassifyRows returns the status implied by a row count from a located
// candidate page.
func ClassifyRows(n int) Status {
	switch {
	case n == SubjectCount:
		return StatusComplete
	case n > 0:
		return StatusPartial
	default:
		return StatusFailed
	}
}
