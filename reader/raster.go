package reader

import (
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"
)

// DefaultDPI is the rasterization resolution for OCR. 400 keeps the small
// ratio digits legible after the morphological pass.
const DefaultDPI = 400

// Rasterizer renders PDF pages to images for the OCR pipeline. It holds its
// own handle on the file and must be closed independently of Document.
type Rasterizer struct {
	doc *fitz.Document
}

// OpenRasterizer opens the PDF at path for rendering.
func OpenRasterizer(path string) (*Rasterizer, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("open %s for rasterization: %w", path, err)
	}
	return &Rasterizer{doc: doc}, nil
}

// Close releases the renderer.
func (r *Rasterizer) Close() error {
	return r.doc.Close()
}

// PageCount returns the number of pages.
func (r *Rasterizer) PageCount() int {
	return r.doc.NumPage()
}

// Render rasterizes the 0-based page index at the given DPI.
func (r *Rasterizer) Render(index int, dpi float64) (image.Image, error) {
	img, err := r.doc.ImageDPI(index, dpi)
	if err != nil {
		return nil, fmt.Errorf("render page %d: %w", index+1, err)
	}
	return img, nil
}
