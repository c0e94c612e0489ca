package batch

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/tsawler/assetquality/extract"
	"github.com/tsawler/assetquality/model"
)

func quietRunner() *Runner {
	r := NewRunner(extract.NewPipeline(nil))
	r.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return r
}

func TestRunKeepsInputOrder(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		filepath.Join(dir, "28_遠東國際商業銀行_114Q1.pdf"),
		filepath.Join(dir, "05_華南銀行_114Q1.pdf"),
		filepath.Join(dir, "11_高雄銀行_114Q1.pdf"),
	}

	results := quietRunner().Run(context.Background(), paths)
	if len(results) != len(paths) {
		t.Fatalf("Expected %d results, got %d", len(paths), len(results))
	}
	for i, res := range results {
		if res.FilePath != paths[i] {
			t.Errorf("Result %d: expected %s, got %s", i, paths[i], res.FilePath)
		}
		if res.Status != model.StatusSourceMissing {
			t.Errorf("Result %d: expected source_missing, got %v", i, res.Status)
		}
	}
	if results[1].BankCode != 5 {
		t.Errorf("Expected bank code 5, got %d", results[1].BankCode)
	}
}

func TestRunIsolatesDocuments(t *testing.T) {
	// Missing documents must not prevent the rest from being processed.
	dir := t.TempDir()
	paths := make([]string, 10)
	for i := range paths {
		paths[i] = filepath.Join(dir, "99_測試銀行_114Q1.pdf")
	}

	r := quietRunner()
	r.Workers = 2
	results := r.Run(context.Background(), paths)
	for i, res := range results {
		if res.Status != model.StatusSourceMissing {
			t.Errorf("Result %d: expected source_missing, got %v", i, res.Status)
		}
	}
}

func TestSummaryAndRows(t *testing.T) {
	results := []model.Result{
		{Status: model.StatusComplete, Rows: make([]model.Row, 8)},
		{Status: model.StatusPartial, Rows: make([]model.Row, 3)},
		{Status: model.StatusSourceMissing},
	}
	counts := Summary(results)
	if counts[model.StatusComplete] != 1 || counts[model.StatusPartial] != 1 || counts[model.StatusSourceMissing] != 1 {
		t.Errorf("Unexpected summary: %v", counts)
	}
	if got := len(Rows(results)); got != 11 {
		t.Errorf("Expected 11 rows, got %d", got)
	}
}
