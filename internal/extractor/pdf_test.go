package extractor

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewPDFExtractor(t *testing.T) {
	if NewPDFExtractor() == nil {
		t.Fatal("NewPDFExtractor() returned nil")
	}
}

func TestPDFExtractor_Extract_InvalidFiles(t *testing.T) {
	extractor := NewPDFExtractor()
	tmpDir := t.TempDir()

	tests := []struct {
		name    string
		content []byte
	}{
		{
			name:    "not a pdf",
			content: []byte("plain text, no PDF header"),
		},
		{
			name:    "empty file",
			content: []byte{},
		},
		{
			name:    "truncated pdf header",
			content: []byte("%PDF-1.4\ngarbage"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(tmpDir, "bad.pdf")
			if err := os.WriteFile(path, tt.content, 0644); err != nil {
				t.Fatalf("failed to write test file: %v", err)
			}

			if _, err := extractor.Extract(path); err == nil {
				t.Error("Extract() expected error for unparseable file, got nil")
			}
		})
	}
}

func TestPDFExtractor_Extract_MissingFile(t *testing.T) {
	extractor := NewPDFExtractor()

	if _, err := extractor.Extract(filepath.Join(t.TempDir(), "nope.pdf")); err == nil {
		t.Error("Extract() expected error for missing file, got nil")
	}
}
