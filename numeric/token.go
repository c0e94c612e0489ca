package numeric

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// placeholders are the "not applicable" spellings seen in source tables,
// checked after width folding so full-width dashes collapse into "-".
var placeholders = map[string]struct{}{
	"":    {},
	"-":   {},
	"-%":  {},
	"- %": {},
}

// isPlaceholder reports whether the folded token is a "no data" marker.
func isPlaceholder(s string) bool {
	_, ok := placeholders[s]
	return ok
}

// fold converts full-width digits and punctuation to their ASCII forms and
// trims surrounding whitespace. PDF text for these documents routinely uses
// ＄, ％, － and full-width spaces.
func fold(s string) string {
	s = width.Narrow.String(s)
	// width.Narrow leaves U+2212 (minus sign) and ideographic spaces alone.
	s = strings.ReplaceAll(s, "−", "-")
	s = strings.ReplaceAll(s, "　", " ")
	return strings.TrimSpace(s)
}

// ParseAmount parses a monetary amount token (thousands of NTD). It strips
// thousands separators, currency glyphs, percent signs and embedded spaces,
// and treats a parenthesised value as negative. Placeholder dashes and
// unparseable tokens yield 0.
func ParseAmount(token string) float64 {
	s := fold(token)
	if isPlaceholder(s) {
		return 0
	}
	s = strings.NewReplacer(",", "", " ", "", "$", "", "%", "").Replace(s)
	// Accounting negatives: (1,234) means -1234.
	s = strings.ReplaceAll(s, "(", "-")
	s = strings.ReplaceAll(s, ")", "")
	if isPlaceholder(s) {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseRatio parses a percentage token such as "1.23%" or "0.85 ％".
// Placeholder dashes and unparseable tokens yield 0. The returned value is
// the percentage itself, not a fraction.
func ParseRatio(token string) float64 {
	return ParseAmount(token)
}

// CleanOCRDigits applies the substitutions required before parsing numbers
// recognized by OCR: Tesseract reads the NT$ currency glyph as "$" or "S"
// where the source digit is 8.
func CleanOCRDigits(s string) string {
	s = fold(s)
	s = strings.ReplaceAll(s, "$", "8")
	s = strings.ReplaceAll(s, "S", "8")
	return s
}

// FormatAmount renders a value with comma thousands separators, the
// convention used by the source documents. Values with a fractional part
// keep it verbatim.
func FormatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(r)
	}
	if hasFrac {
		sb.WriteByte('.')
		sb.WriteString(fracPart)
	}
	return sb.String()
}

// RepairTokens is a best-effort repair pass for amounts split across tokens
// by PDF line wrapping or OCR artifacts: a stray single digit followed by a
// digit run (e.g. "1" "234,567") is merged back into one token. It repairs
// only that observed shape and leaves every other token untouched. Callers
// should treat the result as advisory; the primary parse never depends on it.
func RepairTokens(tokens []string) []string {
	if len(tokens) < 2 {
		return tokens
	}
	out := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		tok := fold(tokens[i])
		if len(tok) == 1 && unicode.IsDigit(rune(tok[0])) && i+1 < len(tokens) {
			next := fold(tokens[i+1])
			if next != "" && !strings.Contains(next, "%") && isDigitRun(next) {
				out = append(out, tok+next)
				i++
				continue
			}
		}
		out = append(out, tokens[i])
	}
	return out
}

// isDigitRun reports whether s consists only of digits and thousands
// separators, with at least one digit.
func isDigitRun(s string) bool {
	hasDigit := false
	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case r == ',':
		default:
			return false
		}
	}
	return hasDigit
}
