package extract

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/tsawler/assetquality/bankprofile"
	"github.com/tsawler/assetquality/category"
	"github.com/tsawler/assetquality/locate"
	"github.com/tsawler/assetquality/model"
	"github.com/tsawler/assetquality/numeric"
	"github.com/tsawler/assetquality/reader"
)

// Pipeline orchestrates the strategies for one document at a time. Scanned
// documents go straight to OCR; text documents walk the candidate pages in
// relevance order and run the applicable strategies until one yields rows.
type Pipeline struct {
	Profiles   bankprofile.Table
	Table      *TableStrategy
	Positional *PositionalStrategy
	Pattern    *PatternStrategy
	OCR        *OCRStrategy
}

// NewPipeline builds a pipeline with the default strategies. A nil profile
// table falls back to the built-in defaults.
func NewPipeline(profiles bankprofile.Table) *Pipeline {
	if profiles == nil {
		profiles = bankprofile.Defaults()
	}
	return &Pipeline{
		Profiles:   profiles,
		Table:      NewTableStrategy(),
		Positional: &PositionalStrategy{},
		Pattern:    &PatternStrategy{},
		OCR:        NewOCRStrategy(),
	}
}

// ExtractFile extracts the asset-quality rows from the document at path.
// Failures are reported in the result status, never as a panic: one broken
// document must not take down a batch run.
func (p *Pipeline) ExtractFile(ctx context.Context, path string) model.Result {
	if ctx == nil {
		ctx = context.Background()
	}

	code, bankName, _ := numeric.ParseBankFilename(path)
	profile := p.Profiles.Lookup(code)
	if bankName == "" {
		bankName = profile.Name
	}
	res := model.Result{BankCode: code, BankName: bankName, FilePath: path}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			res.Status = model.StatusSourceMissing
		} else {
			res.Status = model.StatusFailed
		}
		res.Diagnostic = err.Error()
		return res
	}

	period, _ := numeric.ParsePeriodFromFilename(path)

	if profile.ImageOnly {
		return p.runOCR(ctx, path, profile, period, res)
	}

	doc, err := reader.Open(path)
	if err != nil {
		res.Status = model.StatusFailed
		res.Diagnostic = err.Error()
		return res
	}
	defer doc.Close()

	if doc.ImageOnly() {
		return p.runOCR(ctx, path, profile, period, res)
	}

	pages := doc.Pages()
	gridKnown := make(map[int]bool)
	hasTable := func(i int) bool {
		if v, ok := gridKnown[i]; ok {
			return v
		}
		v := p.Table.Builder.Build(pages[i].Chars) != nil
		gridKnown[i] = v
		return v
	}
	candidates := locate.Scan(pages, hasTable)
	if len(candidates) == 0 {
		res.Status = model.StatusFailed
		res.Diagnostic = "no candidate page: no page contains the asset-quality anchor"
		return res
	}

	resolver := category.Resolver{MortgageBare: profile.MortgageBare}
	strategies := []Strategy{p.Table}
	if profile.NeedsPositional {
		strategies = append(strategies, p.Positional)
	}
	strategies = append(strategies, p.Pattern)

	for _, cand := range candidates {
		// The candidate page usually states its own reporting date; it
		// beats the filename.
		candPeriod := periodOn(cand.Text, period)
		for _, strat := range strategies {
			if err := ctx.Err(); err != nil {
				res.Status = model.StatusFailed
				res.Diagnostic = err.Error()
				return res
			}
			rows := strat.Extract(Input{
				Page:     pages[cand.Index],
				Profile:  profile,
				Resolver: resolver,
			})
			if len(rows) == 0 {
				continue
			}
			return p.finish(res, rows, strat.Name(), candPeriod)
		}
	}

	res.Status = model.StatusFailed
	res.Diagnostic = "no strategy produced rows"
	return res
}

// runOCR is the scanned-document path. OCR has no further fallback: an error
// here is a failed extraction.
func (p *Pipeline) runOCR(ctx context.Context, path string, profile bankprofile.Profile, period numeric.Period, res model.Result) model.Result {
	rows, err := p.OCR.Extract(ctx, path, profile)
	if err != nil {
		res.Status = model.StatusFailed
		res.Diagnostic = err.Error()
		return res
	}
	return p.finish(res, Dedupe(rows), p.OCR.Name(), period)
}

// finish stamps identity and provenance onto the rows and classifies the
// outcome.
func (p *Pipeline) finish(res model.Result, rows []model.Row, strategy string, period numeric.Period) model.Result {
	ref := res.FilePath + "#" + strategy
	for i := range rows {
		rows[i].BankCode = res.BankCode
		rows[i].BankName = res.BankName
		rows[i].Year = period.Year
		rows[i].Quarter = period.Quarter
		rows[i].SourceRef = ref
	}
	res.Rows = rows
	res.Strategy = strategy
	res.Status = model.ClassifyRows(len(rows))
	return res
}

// periodOn prefers the reporting date stated on the page itself over the
// fallback parsed from the filename.
func periodOn(text string, fallback numeric.Period) numeric.Period {
	if pd, ok := numeric.ParsePeriod(compact(text)); ok {
		return pd
	}
	return fallback
}

func compact(s string) string {
	return strings.NewReplacer(" ", "", "\n", "", "　", "").Replace(s)
}
