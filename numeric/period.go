package numeric

import (
	"regexp"
	"strconv"
	"strings"
)

// Date spellings seen across issuers: "114年03月31日", "114.3.31",
// "114 年 3 月".
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{2,3})\s*年\s*(\d{1,2})\s*月`),
	regexp.MustCompile(`(\d{2,3})\.(\d{1,2})\.\d{1,2}`),
}

var filenamePattern = regexp.MustCompile(`(\d{2,3})Q([1-4])`)

// Period is a fiscal year and quarter in the ROC calendar.
type Period struct {
	Year    int // ROC year, e.g. 114
	Quarter int // 1-4
}

// Label renders the period in the directory/filename convention, e.g.
// "114Q1".
func (p Period) Label() string {
	return strconv.Itoa(p.Year) + "Q" + strconv.Itoa(p.Quarter)
}

// ParsePeriod extracts the fiscal period from in-document date text. The
// quarter is derived from the month: Jan-Mar is Q1 and so on.
func ParsePeriod(text string) (Period, bool) {
	for _, pat := range datePatterns {
		m := pat.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		year, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		month, err := strconv.Atoi(m[2])
		if err != nil || month < 1 || month > 12 {
			continue
		}
		return Period{Year: year, Quarter: (month + 2) / 3}, true
	}
	return Period{}, false
}

// ParsePeriodFromFilename extracts the fiscal period from a filename that
// follows the "{code}_{bank}_{year}Q{quarter}.pdf" convention. It is the
// fallback when no date line can be parsed from the document itself.
func ParsePeriodFromFilename(name string) (Period, bool) {
	m := filenamePattern.FindStringSubmatch(name)
	if m == nil {
		return Period{}, false
	}
	year, _ := strconv.Atoi(m[1])
	quarter, _ := strconv.Atoi(m[2])
	return Period{Year: year, Quarter: quarter}, true
}

// ParseBankFilename splits a "{code}_{bank}_{year}Q{quarter}.pdf" filename
// into its bank code and name. Both are zero-valued when the name does not
// follow the convention.
func ParseBankFilename(name string) (code int, bank string, ok bool) {
	base := name
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}
	base = strings.TrimSuffix(base, ".pdf")
	parts := strings.Split(base, "_")
	if len(parts) < 2 {
		return 0, "", false
	}
	code, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, "", false
	}
	return code, parts[1], true
}
