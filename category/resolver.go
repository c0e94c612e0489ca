package category

import (
	"strings"

	"github.com/tsawler/assetquality/model"
)

// Context is the loan category block a table row belongs to, carried across
// rows because sub-labels like 無擔保 appear on their own line under the
// block heading.
type Context int

const (
	ContextNone Context = iota
	ContextCorporate
	ContextConsumer
)

// State is the accumulator threaded through row iteration. It is a value,
// not a mutable field, so resolving a grid stays a pure function of
// (grid, initial state).
type State struct {
	Context Context

	// PendingUnsecured marks that the previous row carried the stacked
	// 擔保/無擔保 corporate layout, making the next blank-labelled row
	// corporate unsecured.
	PendingUnsecured bool
}

// Resolver resolves normalized label fragments to canonical subjects.
type Resolver struct {
	// MortgageBare widens the mortgage rule to match 住宅 alone. One
	// issuer labels the category that way; elsewhere the bare substring is
	// ambiguous, so this stays off by default.
	MortgageBare bool
}

// Normalize strips the spaces and line breaks that PDF extraction embeds in
// labels, including full-width spaces.
func Normalize(s string) string {
	return strings.NewReplacer(" ", "", "\n", "", "　", "").Replace(strings.TrimSpace(s))
}

// ResolveCells classifies one table row from its first three label cells,
// already normalized. It returns the resolved subject (SubjectUnknown when
// the row is not a data row) and the accumulator to use for the next row.
// The rules are ordered; the first match wins.
func (r Resolver) ResolveCells(st State, col0, col1, col2 string) (model.Subject, State) {
	switch {
	case st.PendingUnsecured && col0 == "" && col1 == "":
		st.PendingUnsecured = false
		return model.CorporateUnsecured, st

	case strings.Contains(col0, "企業金融"):
		st = State{Context: ContextCorporate}
		if strings.Contains(col1, "擔保") {
			if strings.Contains(col1, "無擔保") {
				// Stacked layout: this row is secured, the next
				// row carries the unsecured figures.
				st.PendingUnsecured = true
				return model.CorporateSecured, st
			}
			if !strings.Contains(col1, "無") {
				return model.CorporateSecured, st
			}
		}
		return model.SubjectUnknown, st

	case strings.Contains(col0, "消費金融"):
		st = State{Context: ContextConsumer}
		if strings.Contains(col1, "住宅") || strings.Contains(col1, "抵押") {
			return model.ConsumerMortgage, st
		}
		return model.SubjectUnknown, st

	case st.Context == ContextCorporate && strings.Contains(col1, "無擔保"):
		return model.CorporateUnsecured, st

	case strings.Contains(col1, "住宅") || strings.Contains(col1, "抵押"):
		return model.ConsumerMortgage, st

	case strings.Contains(col1, "現金卡"):
		return model.ConsumerCashCard, st

	case strings.Contains(col1, "小額") || strings.Contains(col1, "純信用") || strings.Contains(col1, "信用貸款"):
		return model.ConsumerSmallCredit, st

	case strings.Contains(col1, "其他"):
		// Narrow grids merge the sub-label into the same cell, so the
		// 擔保 qualifier may sit in either column.
		if strings.Contains(col1+col2, "無擔保") {
			return model.ConsumerOtherUnsecured, st
		}
		if strings.Contains(col1+col2, "擔保") {
			return model.ConsumerOtherSecured, st
		}
		return model.SubjectUnknown, st

	case st.Context == ContextConsumer && strings.Contains(col2, "無擔保"):
		return model.ConsumerOtherUnsecured, st

	case st.Context == ContextConsumer && strings.Contains(col2, "擔保") && !strings.Contains(col2, "無"):
		return model.ConsumerOtherSecured, st

	case strings.Contains(col0, "放款業務合計") || strings.Contains(col0, "合計"):
		return model.Total, st
	}

	return model.SubjectUnknown, st
}

// MatchLine classifies a whole reconstructed or OCR-recognized line. Unlike
// ResolveCells it has no column structure to lean on, so it checks the most
// specific label sets first. Annotation lines (註...) are never data rows.
func (r Resolver) MatchLine(line string) model.Subject {
	s := Normalize(line)
	if s == "" {
		return model.SubjectUnknown
	}
	if head := []rune(s); len(head) > 0 {
		limit := 5
		if len(head) < limit {
			limit = len(head)
		}
		if strings.ContainsRune(string(head[:limit]), '註') {
			// A note reference can sit inside the label itself: the
			// other-unsecured row is printed as 無擔保(註6) on at least
			// one layout. Anything else leading with a note marker is a
			// footnote, not a data row.
			if strings.Contains(s, "無擔保") && strings.Contains(s, "註6") {
				return model.ConsumerOtherUnsecured
			}
			return model.SubjectUnknown
		}
	}

	hasUnsecured := strings.Contains(s, "無擔保")
	hasSecured := strings.Contains(s, "擔保")
	mortgage := strings.Contains(s, "住宅抵押") || strings.Contains(s, "抵押貸款") ||
		(r.MortgageBare && strings.Contains(s, "住宅"))

	switch {
	case strings.Contains(s, "其他") && hasUnsecured:
		return model.ConsumerOtherUnsecured
	case strings.Contains(s, "其他") && hasSecured:
		return model.ConsumerOtherSecured
	case mortgage:
		return model.ConsumerMortgage
	case strings.Contains(s, "現金卡"):
		return model.ConsumerCashCard
	case strings.Contains(s, "小額純信用") || strings.Contains(s, "純信用貸款") ||
		(strings.Contains(s, "小額") && strings.Contains(s, "信用")):
		return model.ConsumerSmallCredit
	case (strings.Contains(s, "企業") || strings.Contains(s, "金融")) && hasSecured && !hasUnsecured:
		return model.CorporateSecured
	case hasUnsecured:
		return model.CorporateUnsecured
	case strings.Contains(s, "放款業務合計") || strings.Contains(s, "合計"):
		return model.Total
	}
	return model.SubjectUnknown
}
