//go:build !ocr

package extract

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/assetquality/model"
)

func TestExtractFileSourceMissing(t *testing.T) {
	p := NewPipeline(nil)
	res := p.ExtractFile(context.Background(), filepath.Join(t.TempDir(), "28_遠東國際商業銀行_114Q1.pdf"))
	if res.Status != model.StatusSourceMissing {
		t.Fatalf("Expected source_missing, got %v (%s)", res.Status, res.Diagnostic)
	}
	if res.BankCode != 28 {
		t.Errorf("Expected bank code 28 from the filename, got %d", res.BankCode)
	}
	if res.BankName != "遠東國際商業銀行" {
		t.Errorf("Expected bank name from the filename, got %q", res.BankName)
	}
	if len(res.Rows) != 0 {
		t.Errorf("Expected no rows, got %d", len(res.Rows))
	}
}

func TestExtractFileImageOnlyWithoutOCRSupport(t *testing.T) {
	// Bank 20's profile routes straight to OCR; without the ocr build tag
	// that must surface as a failed extraction, not a fallback to the text
	// strategies.
	path := filepath.Join(t.TempDir(), "20_匯豐(台灣)商業銀行_114Q1.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatal(err)
	}

	p := NewPipeline(nil)
	res := p.ExtractFile(context.Background(), path)
	if res.Status != model.StatusFailed {
		t.Fatalf("Expected failed, got %v", res.Status)
	}
	if !strings.Contains(res.Diagnostic, "OCR") {
		t.Errorf("Expected the diagnostic to name OCR support, got %q", res.Diagnostic)
	}
}

func TestExtractFileStampsNothingOnFailure(t *testing.T) {
	p := NewPipeline(nil)
	res := p.ExtractFile(nil, filepath.Join(t.TempDir(), "99_未知銀行_113Q4.pdf"))
	if res.Status != model.StatusSourceMissing {
		t.Fatalf("Expected source_missing, got %v", res.Status)
	}
	if res.Strategy != "" {
		t.Errorf("Expected no strategy on a missing source, got %q", res.Strategy)
	}
}
