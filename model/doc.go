// Package model defines the data types shared by every extraction strategy:
// the closed set of eight canonical loan subjects, the asset-quality fact row,
// extraction results and statuses, and the transient page/character values
// produced by the PDF reader.
package model
