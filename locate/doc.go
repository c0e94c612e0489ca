// Package locate finds the pages that carry the asset-quality table. The
// anchor phrase also shows up on contents and summary pages, so candidate
// pages are scored by the co-occurrence of data keywords and by table
// structure, and ranked so the orchestrator tries the most data-like page
// first.
package locate
