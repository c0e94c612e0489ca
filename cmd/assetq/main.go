// Command assetq extracts asset-quality disclosure tables from Taiwanese
// bank quarterly PDF reports and writes the combined report workbook.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "assetq",
		Short: "Extract asset-quality tables from bank disclosure PDFs",
		Long: `assetq reads the quarterly asset-quality disclosure published by
Taiwanese banks and turns it into the canonical eight-row table
(overdue amount, total loans and overdue ratio per loan category).

Text documents are read through their table structure, with positional
and pattern fallbacks; scanned documents go through OCR when built with
the ocr tag.`,
		SilenceUsage: true,
	}
	root.AddCommand(reportCmd(), inspectCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
