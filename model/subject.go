package model

// Subject identifies one of the eight canonical loan categories reported in
// the asset-quality disclosure table. The set is closed by regulation:
// exactly these eight categories exist, in this order.
type Subject int

const (
	SubjectUnknown Subject = iota
	CorporateSecured
	CorporateUnsecured
	ConsumerMortgage
	ConsumerCashCard
	ConsumerSmallCredit
	ConsumerOtherSecured
	ConsumerOtherUnsecured
	Total
)

// Subjects lists the eight canonical subjects in report order.
var Subjects = []Subject{
	CorporateSecured,
	CorporateUnsecured,
	ConsumerMortgage,
	ConsumerCashCard,
	ConsumerSmallCredit,
	ConsumerOtherSecured,
	ConsumerOtherUnsecured,
	Total,
}

// SubjectCount is the number of canonical subjects in a complete extraction.
const SubjectCount = 8

var subjectLabels = map[Subject]string{
	CorporateSecured:       "01_企業金融_擔保",
	CorporateUnsecured:     "02_企業金融_無擔保",
	ConsumerMortgage:       "03_消費金融_住宅抵押貸款",
	ConsumerCashCard:       "04_消費金融_現金卡",
	ConsumerSmallCredit:    "05_消費金融_小額純信用貸款",
	ConsumerOtherSecured:   "06_消費金融_其他_擔保",
	ConsumerOtherUnsecured: "07_消費金融_其他_無擔保",
	Total:                  "08_合計",
}

// String returns the numbered report label for the subject, matching the
// column values used in the published spreadsheet.
func (s Subject) String() string {
	if label, ok := subjectLabels[s]; ok {
		return label
	}
	return "unknown"
}

// Valid reports whether s is one of the eight canonical subjects.
func (s Subject) Valid() bool {
	return s >= CorporateSecured && s <= Total
}
