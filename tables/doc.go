// Package tables reconstructs a cell grid from positioned characters on a
// PDF page. The disclosure PDFs rarely expose table structure directly, but
// their data pages lay characters out in visually aligned columns; grouping
// characters into rows by vertical position and clustering the horizontal
// start positions of text runs recovers the rows-by-cells grid the table
// extraction strategy consumes.
package tables
