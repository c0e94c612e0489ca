// Package export serializes extracted rows to the quarterly report
// workbook: fixed Chinese column headers, one row per bank per subject,
// sorted by bank then canonical subject order.
package export
