package model

// Char is a single positioned character from a PDF text stream. Coordinates
// are in PDF points with the origin at the bottom-left of the page, so a
// larger Y is higher on the page.
type Char struct {
	R rune
	X float64
	Y float64
	W float64
}

// PageContent holds everything the strategies need from one page: the
// flattened text and the raw positioned characters it was assembled from.
type PageContent struct {
	Index int // 0-based page index
	Text  string
	Chars []Char
}

// CandidatePage is a page suspected of carrying the asset-quality table,
// ranked by keyword and structure score. Candidates live for one extraction
// run and are discarded once the best one has been consumed.
type CandidatePage struct {
	Index    int
	Score    int
	HasTable bool
	Text     string
}
