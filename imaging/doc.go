// Package imaging prepares rasterized pages for OCR and detects table grids
// in them. Preprocessing (grayscale, contrast, sharpening, upscaling) lifts
// Tesseract's accuracy on the scanned disclosures; grid detection isolates
// the drawn table lines morphologically, intersects them, and clusters the
// crossings into row and column boundaries so each cell can be recognized
// on its own.
package imaging
