package reader

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/assetquality/model"
)

// Thresholds for the image-only classification: a document counts as
// scanned when none of its first few pages yields a meaningful amount of
// embedded text containing at least one digit.
const (
	imageOnlyProbePages = 5
	imageOnlyMinChars   = 200
)

// Document is an open PDF exposing page text and positioned characters.
// It is not safe for concurrent use.
type Document struct {
	path  string
	file  *os.File
	pdf   *pdf.Reader
	cache map[int]model.PageContent
}

// Open opens the PDF at path. The caller must Close the document.
// A missing file is reported with an error wrapping os.ErrNotExist so the
// pipeline can distinguish it from a parse failure.
func Open(path string) (*Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &Document{
		path:  path,
		file:  f,
		pdf:   r,
		cache: make(map[int]model.PageContent),
	}, nil
}

// Close releases the underlying file.
func (d *Document) Close() error {
	return d.file.Close()
}

// Path returns the path the document was opened from.
func (d *Document) Path() string {
	return d.path
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int {
	return d.pdf.NumPage()
}

// Page returns the content of the 0-based page index. Pages that cannot be
// decoded come back empty rather than failing the document: a single broken
// page must not abort extraction.
func (d *Document) Page(index int) model.PageContent {
	if pc, ok := d.cache[index]; ok {
		return pc
	}
	pc := model.PageContent{Index: index}
	pc.Chars = d.pageChars(index)
	pc.Text = AssembleText(pc.Chars)
	d.cache[index] = pc
	return pc
}

// Pages returns the content of every page in order.
func (d *Document) Pages() []model.PageContent {
	n := d.PageCount()
	pages := make([]model.PageContent, 0, n)
	for i := 0; i < n; i++ {
		pages = append(pages, d.Page(i))
	}
	return pages
}

// pageChars extracts positioned characters from a page. The pdf library
// panics on some malformed content streams; those pages yield no characters.
func (d *Document) pageChars(index int) (chars []model.Char) {
	defer func() {
		if r := recover(); r != nil {
			chars = nil
		}
	}()

	p := d.pdf.Page(index + 1) // library pages are 1-based
	if p.V.IsNull() {
		return nil
	}
	content := p.Content()
	for _, t := range content.Text {
		runes := []rune(t.S)
		if len(runes) == 0 {
			continue
		}
		w := t.W / float64(len(runes))
		x := t.X
		for _, r := range runes {
			chars = append(chars, model.Char{R: r, X: x, Y: t.Y, W: w})
			x += w
		}
	}
	return chars
}

// ImageOnly reports whether the document has no usable text layer: none of
// the first probe pages carries more than the threshold of extracted
// characters including at least one digit. Scanned disclosures go straight
// to the OCR strategy.
func (d *Document) ImageOnly() bool {
	n := d.PageCount()
	if n > imageOnlyProbePages {
		n = imageOnlyProbePages
	}
	for i := 0; i < n; i++ {
		text := strings.TrimSpace(d.Page(i).Text)
		if len([]rune(text)) <= imageOnlyMinChars {
			continue
		}
		if strings.ContainsFunc(text, unicode.IsDigit) {
			return false
		}
	}
	return true
}

// AssembleText flattens positioned characters into line-structured text:
// characters grouped into rows by vertical position, rows top to bottom,
// characters left to right, a space between horizontally separated runs.
func AssembleText(chars []model.Char) string {
	if len(chars) == 0 {
		return ""
	}

	sorted := make([]model.Char, len(chars))
	copy(sorted, chars)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	const rowTolerance = 2.0
	var sb strings.Builder
	rowY := sorted[0].Y
	prevEnd := 0.0
	first := true
	for _, c := range sorted {
		switch {
		case first:
			first = false
		case rowY-c.Y > rowTolerance:
			sb.WriteByte('\n')
			rowY = c.Y
		case c.X-prevEnd > c.W:
			sb.WriteByte(' ')
		}
		sb.WriteRune(c.R)
		prevEnd = c.X + c.W
	}
	return sb.String()
}
