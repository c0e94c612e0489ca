package batch

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tsawler/assetquality/extract"
	"github.com/tsawler/assetquality/model"
)

// Default pool settings. OCR documents keep a worker busy for minutes, so
// the per-document timeout is generous.
const (
	DefaultWorkers = 4
	DefaultTimeout = 5 * time.Minute
)

// Runner drives the pipeline over many documents concurrently.
type Runner struct {
	Pipeline *extract.Pipeline
	Workers  int
	Timeout  time.Duration // per document; 0 disables
	Logger   *slog.Logger
}

// NewRunner returns a runner with default pool settings around the given
// pipeline.
func NewRunner(p *extract.Pipeline) *Runner {
	return &Runner{
		Pipeline: p,
		Workers:  DefaultWorkers,
		Timeout:  DefaultTimeout,
		Logger:   slog.Default(),
	}
}

// Run extracts every document and returns one result per path, in input
// order. Individual failures are reported in the result statuses; Run itself
// only stops early when ctx is cancelled, and even then every path gets a
// result.
func (r *Runner) Run(ctx context.Context, paths []string) []model.Result {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}

	results := make([]model.Result, len(paths))
	var mu sync.Mutex

	g := new(errgroup.Group)
	workers := r.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	g.SetLimit(workers)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			res := r.extractOne(ctx, path)

			mu.Lock()
			results[i] = res
			mu.Unlock()

			logger.Info("document processed",
				"path", path,
				"bank", res.BankName,
				"status", res.Status.String(),
				"strategy", res.Strategy,
				"rows", len(res.Rows))
			return nil
		})
	}
	g.Wait()
	return results
}

func (r *Runner) extractOne(ctx context.Context, path string) model.Result {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}
	return r.Pipeline.ExtractFile(ctx, path)
}

// Rows gathers the extracted rows of every successful or partial result.
func Rows(results []model.Result) []model.Row {
	var rows []model.Row
	for _, res := range results {
		rows = append(rows, res.Rows...)
	}
	return rows
}

// Summary counts results per status.
func Summary(results []model.Result) map[model.Status]int {
	counts := make(map[model.Status]int)
	for _, res := range results {
		counts[res.Status]++
	}
	return counts
}
