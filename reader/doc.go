// Package reader provides access to the source PDFs: page-indexed positioned
// characters and flattened text for the text-bearing documents, rasterized
// page images for the scanned ones, and the classification that decides
// which kind a document is.
package reader
