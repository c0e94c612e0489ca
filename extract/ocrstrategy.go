package extract

import (
	"context"
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/tsawler/assetquality/bankprofile"
	"github.com/tsawler/assetquality/imaging"
	"github.com/tsawler/assetquality/model"
	"github.com/tsawler/assetquality/numeric"
	"github.com/tsawler/assetquality/ocr"
	"github.com/tsawler/assetquality/reader"
)

// numericWhitelist restricts cell recognition to figure characters. $ and S
// stay in: Tesseract reads a smudged 8 as either, and the cleanup pass maps
// them back.
const numericWhitelist = "0123456789.,%-$S"

// DefaultLanguage is the Tesseract language set for the disclosures.
const DefaultLanguage = "chi_tra+eng"

// Whole-page recognition treats the page as one uniform text block; the
// per-cell pass relaxes to single-line mode.
const (
	pageSegFind = ocr.PSM_SINGLE_BLOCK
	pageSegCell = ocr.PSM_SINGLE_LINE
)

// ErrNoDisclosurePage is returned when no rendered page reads as the
// asset-quality disclosure.
var ErrNoDisclosurePage = errors.New("asset-quality page not found in scanned document")

// OCRStrategy handles scanned documents: it rasterizes pages, finds the
// disclosure page by recognized text, detects the drawn table grid and reads
// the figure cells one by one. The profile's offsets locate the eight-subject
// block inside the grid.
type OCRStrategy struct {
	DPI          float64
	Language     string
	Preprocessor *imaging.Preprocessor
	Detector     *imaging.GridDetector
}

// NewOCRStrategy returns the strategy with the settings used for the
// disclosure corpus.
func NewOCRStrategy() *OCRStrategy {
	return &OCRStrategy{
		DPI:          reader.DefaultDPI,
		Language:     DefaultLanguage,
		Preprocessor: imaging.NewPreprocessor(),
		Detector:     imaging.NewGridDetector(),
	}
}

// Name identifies the strategy in source references.
func (s *OCRStrategy) Name() string { return "ocr" }

// Extract runs the OCR pipeline on the document at path. Unlike the
// text-layer strategies it owns the whole document, not one page, and it
// reports failures as errors: a scanned document has no further fallback.
func (s *OCRStrategy) Extract(ctx context.Context, path string, profile bankprofile.Profile) ([]model.Row, error) {
	client, err := ocr.New()
	if err != nil {
		return nil, err
	}
	defer client.Close()

	if err := client.SetLanguage(s.Language); err != nil {
		return nil, err
	}

	ras, err := reader.OpenRasterizer(path)
	if err != nil {
		return nil, err
	}
	defer ras.Close()

	gray, err := s.findPage(ctx, client, ras)
	if err != nil {
		return nil, err
	}

	grid := s.Detector.Detect(gray)
	if grid == nil {
		return nil, fmt.Errorf("no table grid detected on disclosure page of %s", path)
	}
	return s.readGrid(ctx, client, gray, grid, profile)
}

// findPage renders pages in order and returns the first whose recognized
// text carries the disclosure keywords. Front matter and directory pages
// mention 資產品質 too, so the match keys on the table's own labels.
func (s *OCRStrategy) findPage(ctx context.Context, client *ocr.Client, ras *reader.Rasterizer) (*image.Gray, error) {
	if err := client.SetPageSegMode(pageSegFind); err != nil {
		return nil, err
	}

	for i := 0; i < ras.PageCount(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		img, err := ras.Render(i, s.DPI)
		if err != nil {
			continue
		}
		gray := s.Preprocessor.Run(img)

		data, err := imaging.EncodePNG(gray)
		if err != nil {
			return nil, err
		}
		text, err := client.RecognizeImage(data)
		if err != nil {
			continue
		}
		text = strings.NewReplacer(" ", "", "\n", "", "　", "").Replace(text)
		if strings.Contains(text, "業務") && strings.Contains(text, "小額") {
			return gray, nil
		}
	}
	return nil, ErrNoDisclosurePage
}

// readGrid recognizes the three figure cells of each subject row. Subjects
// whose amount cells come back empty are omitted rather than zero-filled.
func (s *OCRStrategy) readGrid(ctx context.Context, client *ocr.Client, gray *image.Gray, grid *imaging.GridLines, profile bankprofile.Profile) ([]model.Row, error) {
	row0 := profile.OCRRowOffset
	col0 := profile.OCRColOffset
	if grid.RowCount() < row0+model.SubjectCount || grid.ColCount() < col0+3 {
		return nil, fmt.Errorf("detected grid is %dx%d, too small for the subject block at offset %d/%d",
			grid.RowCount(), grid.ColCount(), row0, col0)
	}

	if err := client.SetPageSegMode(pageSegCell); err != nil {
		return nil, err
	}
	if err := client.SetWhitelist(numericWhitelist); err != nil {
		return nil, err
	}

	var rows []model.Row
	for i, subject := range model.Subjects {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var tokens [3]string
		for j := 0; j < 3; j++ {
			cell := imaging.Crop(gray, grid.CellRect(row0+i, col0+j))
			tokens[j] = s.readCell(client, cell)
		}
		if tokens[0] == "" && tokens[1] == "" {
			continue
		}

		overdue := strings.ReplaceAll(orZero(tokens[0]), ".", "")
		total := strings.ReplaceAll(orZero(tokens[1]), ".", "")
		rows = append(rows, newRow(subject, overdue, total, truncateRatio(orZero(tokens[2]))))
	}
	return rows, nil
}

// readCell recognizes one cell, already cleaned of OCR digit artifacts.
// Unreadable cells come back empty.
func (s *OCRStrategy) readCell(client *ocr.Client, cell *image.Gray) string {
	data, err := imaging.EncodePNG(cell)
	if err != nil {
		return ""
	}
	text, err := client.RecognizeImage(data)
	if err != nil {
		return ""
	}
	return numeric.CleanOCRDigits(text)
}

// truncateRatio cuts a ratio reading to four characters when the decimal
// point survived: trailing digits past that are recognition noise from the
// cell border.
func truncateRatio(t string) string {
	if strings.Contains(t, ".") && len(t) > 4 {
		return t[:4]
	}
	return t
}

func orZero(t string) string {
	if t == "" {
		return "0"
	}
	return t
}
