package locate

import (
	"sort"
	"strings"

	"github.com/tsawler/assetquality/model"
)

// Domain anchor phrases. AnchorPhrase must be present for a page to be a
// candidate at all; the rest contribute to the relevance score.
const (
	AnchorPhrase    = "資產品質"
	anchorOverdue   = "逾期放款"
	anchorCorporate = "企業金融"
	anchorConsumer  = "消費金融"
	anchorTotal     = "放款業務合計"
	anchorSecured   = "擔保"
	anchorUnsecured = "無擔保"
)

// Score weights, in the order the checks run.
const (
	scoreOverdue    = 10
	scoreCategories = 5
	scoreTotal      = 5
	scoreSecured    = 5
	scoreGrid       = 20
)

// ScoreText computes the relevance score for a page's text. ok is false when
// the page lacks the anchor phrase and is not a candidate. Spaces and line
// breaks are ignored during matching: extraction routinely splits CJK
// phrases ("資 產 品 質").
func ScoreText(text string, hasTable bool) (score int, ok bool) {
	text = strings.NewReplacer(" ", "", "\n", "", "　", "").Replace(text)
	if !strings.Contains(text, AnchorPhrase) {
		return 0, false
	}
	if strings.Contains(text, anchorOverdue) {
		score += scoreOverdue
	}
	if strings.Contains(text, anchorCorporate) && strings.Contains(text, anchorConsumer) {
		score += scoreCategories
	}
	if strings.Contains(text, anchorTotal) {
		score += scoreTotal
	}
	if strings.Contains(text, anchorSecured) && strings.Contains(text, anchorUnsecured) {
		score += scoreSecured
	}
	if hasTable {
		score += scoreGrid
	}
	return score, true
}

// Scan scores every page and returns the candidates ranked by descending
// score; ties go to the earlier page. hasTable reports whether a grid was
// reconstructed for the page and may be nil. An empty result means no page
// contains the anchor phrase.
func Scan(pages []model.PageContent, hasTable func(pageIndex int) bool) []model.CandidatePage {
	var candidates []model.CandidatePage
	for _, p := range pages {
		table := hasTable != nil && hasTable(p.Index)
		score, ok := ScoreText(p.Text, table)
		if !ok {
			continue
		}
		candidates = append(candidates, model.CandidatePage{
			Index:    p.Index,
			Score:    score,
			HasTable: table,
			Text:     p.Text,
		})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].Index < candidates[j].Index
	})
	return candidates
}
