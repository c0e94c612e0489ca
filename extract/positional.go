package extract

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/tsawler/assetquality/model"
)

// PositionalStrategy reconstructs logical rows from raw character
// coordinates. At least one issuer publishes the disclosure with every glyph
// placed individually, leaving no run structure for the grid builder; the
// profile supplies fixed x boundaries separating the label, overdue, total
// and ratio bands instead.
type PositionalStrategy struct{}

// Name implements Strategy.
func (s *PositionalStrategy) Name() string { return "positional" }

// Extract implements Strategy. It returns nil unless the profile carries the
// four column boundaries.
func (s *PositionalStrategy) Extract(in Input) []model.Row {
	bounds := in.Profile.ColumnBoundaries
	if len(bounds) != 4 {
		return nil
	}

	lines := groupByY(in.Page.Chars)
	var rows []model.Row
	found := make(map[model.Subject]bool)
	for idx, ln := range lines {
		subject := in.Resolver.MatchLine(ln.text())
		if !subject.Valid() || found[subject] {
			continue
		}
		found[subject] = true

		data := ln
		switch subject {
		case model.ConsumerSmallCredit:
			// The long label pushes the figures onto the next line on
			// some layouts; it starts with the tail of the label (金).
			if idx+1 < len(lines) {
				next := lines[idx+1]
				if leadContains(next.text(), '金') && containsDigit(next.text()) {
					data = next
				}
			}
		case model.Total:
			// The total label sits on its own line, figures below.
			if idx+1 < len(lines) {
				data = lines[idx+1]
			}
		}

		cols := splitBands(data.chars, bounds)
		rows = append(rows, newRow(subject, cols[1], cols[2], cols[3]))
	}
	return Dedupe(rows)
}

// posLine is one reconstructed row: characters sharing a rounded y position,
// ordered left to right.
type posLine struct {
	chars []model.Char
}

func (l posLine) text() string {
	var sb strings.Builder
	for _, c := range l.chars {
		sb.WriteRune(c.R)
	}
	return sb.String()
}

// groupByY buckets characters by rounded y coordinate and returns the rows
// top to bottom.
func groupByY(chars []model.Char) []posLine {
	buckets := make(map[int][]model.Char)
	for _, c := range chars {
		key := int(math.Round(c.Y))
		buckets[key] = append(buckets[key], c)
	}

	keys := make([]int, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(keys))) // PDF origin is bottom-left

	lines := make([]posLine, 0, len(keys))
	for _, k := range keys {
		row := buckets[k]
		sort.SliceStable(row, func(i, j int) bool { return row[i].X < row[j].X })
		lines = append(lines, posLine{chars: row})
	}
	return lines
}

// splitBands distributes a row's characters over the five bands implied by
// the four boundaries: everything left of the first boundary is the label,
// then overdue, total, ratio, and an unused trailing band.
func splitBands(chars []model.Char, bounds []float64) [5]string {
	var cols [5]strings.Builder
	for _, c := range chars {
		idx := 0
		for _, b := range bounds {
			if c.X >= b {
				idx++
			}
		}
		cols[idx].WriteRune(c.R)
	}
	var out [5]string
	for i := range cols {
		out[i] = cols[i].String()
	}
	return out
}

func leadContains(s string, r rune) bool {
	runes := []rune(s)
	if len(runes) > 5 {
		runes = runes[:5]
	}
	return strings.ContainsRune(string(runes), r)
}

func containsDigit(s string) bool {
	return strings.ContainsFunc(s, unicode.IsDigit)
}
