package extract

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/assetquality/model"
	"github.com/tsawler/assetquality/numeric"
)

// writeTextPDF writes a one-page PDF whose text layer shows the given ASCII
// string, computing the cross-reference offsets as it assembles the file.
func writeTextPDF(t *testing.T, path, text string) {
	t.Helper()

	content := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] " +
			"/Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(objects)+1, xref)

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestExtractFileNoCandidatePage(t *testing.T) {
	// A document with a real text layer that never mentions the disclosure
	// heading must fail with the no-candidate diagnostic, not be routed to
	// OCR as a scanned document.
	text := strings.TrimSpace(strings.Repeat("quarterly operating overview 2025 ", 8))
	path := filepath.Join(t.TempDir(), "05_華南銀行_114Q1.pdf")
	writeTextPDF(t, path, text)

	p := NewPipeline(nil)
	res := p.ExtractFile(context.Background(), path)
	if res.Status != model.StatusFailed {
		t.Fatalf("Expected failed, got %v (%s)", res.Status, res.Diagnostic)
	}
	if !strings.Contains(res.Diagnostic, "no candidate page") {
		t.Errorf("Expected a no-candidate-page diagnostic, got %q", res.Diagnostic)
	}
	if res.Strategy != "" {
		t.Errorf("Expected no strategy without a candidate page, got %q", res.Strategy)
	}
}

func TestPeriodOnPrefersPageDate(t *testing.T) {
	fallback := numeric.Period{Year: 113, Quarter: 4}

	got := periodOn("資產品質評估表 中華民國114年03月31日", fallback)
	if got.Year != 114 || got.Quarter != 1 {
		t.Errorf("Expected 114Q1 from the page date, got %s", got.Label())
	}

	if got := periodOn("no reporting date on this page", fallback); got != fallback {
		t.Errorf("Expected the filename fallback, got %s", got.Label())
	}
}
