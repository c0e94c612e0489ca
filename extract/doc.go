// Package extract contains the extraction strategies and the pipeline that
// orchestrates them. A strategy turns one candidate page into asset-quality
// rows; the pipeline ranks candidate pages, runs the strategies in fallback
// order (table structure, positional reconstruction, text patterns, or OCR
// for scanned documents) and stops at the first strategy that yields rows.
package extract
