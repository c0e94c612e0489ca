// Package numeric parses the raw numeric and percentage tokens found in
// disclosure documents. Source PDFs mix thousands separators, currency
// glyphs, full-width punctuation, percent signs, and dash placeholders for
// "not applicable"; OCR output additionally confuses currency glyphs with
// the digit 8. Parsing is deliberately lenient: a token that cannot be
// parsed after normalization yields 0 rather than an error.
package numeric
