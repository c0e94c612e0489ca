package extract

import "testing"

func TestNewOCRStrategyDefaults(t *testing.T) {
	s := NewOCRStrategy()
	if s.DPI != 400 {
		t.Errorf("Expected 400 DPI, got %v", s.DPI)
	}
	if s.Language != "chi_tra+eng" {
		t.Errorf("Expected chi_tra+eng, got %q", s.Language)
	}
	if s.Preprocessor.Upscale != 3 {
		t.Errorf("Expected the 3x upscale before recognition, got %d", s.Preprocessor.Upscale)
	}
}

func TestPageSegmentationModes(t *testing.T) {
	// Pinned to the tesseract --psm numbering: 6 is a single uniform
	// block, 7 a single text line.
	if int(pageSegFind) != 6 {
		t.Errorf("Expected whole-page recognition in single-block mode (6), got %d", pageSegFind)
	}
	if int(pageSegCell) != 7 {
		t.Errorf("Expected cell recognition in single-line mode (7), got %d", pageSegCell)
	}
}

func TestTruncateRatioCutsBorderNoise(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"0.791", "0.79"},
		{"0.79", "0.79"},
		{"12345", "12345"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := truncateRatio(tt.in); got != tt.want {
			t.Errorf("truncateRatio(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
