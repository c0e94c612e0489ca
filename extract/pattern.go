package extract

import (
	"regexp"
	"strings"

	"github.com/tsawler/assetquality/model"
	"github.com/tsawler/assetquality/numeric"
)

// patternRules pair a subject with a regular expression capturing its three
// figure tokens from flat page text. Ordered: the corporate secured pattern
// also matches inside 無擔保, so it must get the first shot at the text. The
// composite 其他 categories are too ambiguous for flat text and are left to
// the structured strategies.
var patternRules = []struct {
	subject model.Subject
	re      *regexp.Regexp
}{
	{model.CorporateSecured, regexp.MustCompile(`擔\s*保\s*[\$\s]*([\d,]+)\s+([\d,]+)\s+([\d.]+)\s*%?`)},
	{model.CorporateUnsecured, regexp.MustCompile(`無\s*擔\s*保\s*[\$\s]*([\d,\-]+)\s+([\d,]+)\s+([\d.\-]+)\s*%?`)},
	{model.ConsumerMortgage, regexp.MustCompile(`住宅抵押貸款[^0-9]*[\$\s]*([\d,]+)\s+([\d,]+)\s+([\d.]+)\s*%?`)},
	{model.ConsumerCashCard, regexp.MustCompile(`現金卡[^0-9]*[\$\s]*([\d,\-]+)\s+([\d,\-]+)\s+([\d.\-]+)\s*%?`)},
	{model.ConsumerSmallCredit, regexp.MustCompile(`小額純?信用貸款[^0-9]*[\$\s]*([\d,]+)\s+([\d,]+)\s+([\d.]+)\s*%?`)},
	{model.Total, regexp.MustCompile(`放款業務合計[^0-9]*[\$\s]*([\d,]+)\s+([\d,]+)\s+([\d.]+)\s*%?`)},
}

// PatternStrategy matches figure rows in flat page text. It is the last
// fallback for text documents: no structure, lower accuracy, and only the
// six unambiguous categories.
type PatternStrategy struct{}

// Name implements Strategy.
func (s *PatternStrategy) Name() string { return "pattern" }

// Extract implements Strategy.
func (s *PatternStrategy) Extract(in Input) []model.Row {
	text := repairText(in.Page.Text)

	var rows []model.Row
	for _, rule := range patternRules {
		m := rule.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		rows = append(rows, newRow(rule.subject, m[1], m[2], m[3]))
	}
	return Dedupe(rows)
}

// repairText re-joins amounts that text assembly split across tokens, line
// by line, so the figure patterns can see them whole.
func repairText(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		tokens := strings.Fields(line)
		if len(tokens) < 2 {
			continue
		}
		lines[i] = strings.Join(numeric.RepairTokens(tokens), " ")
	}
	return strings.Join(lines, "\n")
}
