// Package assetquality provides a fluent API for extracting the quarterly
// asset-quality disclosure table from Taiwanese bank PDF reports.
//
// Basic usage:
//
//	result := assetquality.Open("data/114Q1/28_遠東國際商業銀行_114Q1.pdf").
//	    Extract(ctx)
//	if result.Status != model.StatusComplete {
//	    log.Println(result.Diagnostic)
//	}
//
// A whole quarter at once, written to the report workbook:
//
//	results, err := assetquality.OpenAll(paths...).
//	    Workers(8).
//	    Report(ctx, "reports/114Q1.xlsx")
//
// For finer control the extract, batch and export packages are available
// directly.
package assetquality

import (
	"context"
	"log/slog"
	"time"

	"github.com/tsawler/assetquality/bankprofile"
	"github.com/tsawler/assetquality/batch"
	"github.com/tsawler/assetquality/export"
	"github.com/tsawler/assetquality/model"
)

// Job is a single-document extraction being configured.
type Job struct {
	path    string
	options Options
}

// Open prepares extraction of one disclosure document. The filename should
// follow the "{code}_{bank}_{year}Q{quarter}.pdf" convention so the bank and
// fallback period can be read from it.
func Open(path string) *Job {
	return &Job{path: path, options: defaultOptions()}
}

// Language sets the OCR language models, "+" separated.
func (j *Job) Language(lang string) *Job {
	c := j.clone()
	c.options.language = lang
	return c
}

// DPI sets the OCR rasterization resolution.
func (j *Job) DPI(dpi float64) *Job {
	c := j.clone()
	c.options.dpi = dpi
	return c
}

// Profiles overrides the built-in issuer profile table.
func (j *Job) Profiles(t bankprofile.Table) *Job {
	c := j.clone()
	c.options.profiles = t
	return c
}

// ProfilesFile overlays issuer profiles from a YAML file on the defaults.
func (j *Job) ProfilesFile(path string) *Job {
	c := j.clone()
	c.options.profilesFile = path
	return c
}

// Extract runs the pipeline. Extraction problems are reported in the result
// status and diagnostic; only configuration problems (an unreadable profiles
// file) surface through the failed status here too.
func (j *Job) Extract(ctx context.Context) model.Result {
	p, err := j.options.buildPipeline()
	if err != nil {
		return model.Result{
			Status:     model.StatusFailed,
			FilePath:   j.path,
			Diagnostic: err.Error(),
		}
	}
	return p.ExtractFile(ctx, j.path)
}

func (j *Job) clone() *Job {
	return &Job{path: j.path, options: j.options.clone()}
}

// Run is a batch extraction being configured.
type Run struct {
	paths   []string
	options Options
}

// OpenAll prepares extraction of a set of disclosure documents.
func OpenAll(paths ...string) *Run {
	return &Run{paths: paths, options: defaultOptions()}
}

// Language sets the OCR language models, "+" separated.
func (r *Run) Language(lang string) *Run {
	c := r.clone()
	c.options.language = lang
	return c
}

// DPI sets the OCR rasterization resolution.
func (r *Run) DPI(dpi float64) *Run {
	c := r.clone()
	c.options.dpi = dpi
	return c
}

// Profiles overrides the built-in issuer profile table.
func (r *Run) Profiles(t bankprofile.Table) *Run {
	c := r.clone()
	c.options.profiles = t
	return c
}

// ProfilesFile overlays issuer profiles from a YAML file on the defaults.
func (r *Run) ProfilesFile(path string) *Run {
	c := r.clone()
	c.options.profilesFile = path
	return c
}

// Workers bounds the extraction pool.
func (r *Run) Workers(n int) *Run {
	c := r.clone()
	c.options.workers = n
	return c
}

// Timeout bounds the time spent on one document.
func (r *Run) Timeout(d time.Duration) *Run {
	c := r.clone()
	c.options.timeout = d
	return c
}

// Logger sets the structured logger for per-document progress.
func (r *Run) Logger(l *slog.Logger) *Run {
	c := r.clone()
	c.options.logger = l
	return c
}

// Extract runs the pipeline over every document and returns one result per
// path, in input order.
func (r *Run) Extract(ctx context.Context) ([]model.Result, error) {
	runner, err := r.runner()
	if err != nil {
		return nil, err
	}
	return runner.Run(ctx, r.paths), nil
}

// Report extracts every document and writes the rows to the report workbook
// at outPath. The results come back alongside so callers can inspect
// failures.
func (r *Run) Report(ctx context.Context, outPath string) ([]model.Result, error) {
	results, err := r.Extract(ctx)
	if err != nil {
		return nil, err
	}
	if err := export.WriteFile(outPath, batch.Rows(results)); err != nil {
		return results, err
	}
	return results, nil
}

func (r *Run) runner() (*batch.Runner, error) {
	p, err := r.options.buildPipeline()
	if err != nil {
		return nil, err
	}
	runner := batch.NewRunner(p)
	runner.Workers = r.options.workers
	runner.Timeout = r.options.timeout
	if r.options.logger != nil {
		runner.Logger = r.options.logger
	}
	return runner, nil
}

func (r *Run) clone() *Run {
	paths := make([]string, len(r.paths))
	copy(paths, r.paths)
	return &Run{paths: paths, options: r.options.clone()}
}
