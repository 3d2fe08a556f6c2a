package mimeclass

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestClassifyFileDetectsTextPlain tests that a plain-text file classifies
// as a text/* MIME type.
func TestClassifyFileDetectsTextPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(path, []byte("just some ordinary text content"), 0600); err != nil {
		t.Fatal(err)
	}

	h := NewHandle()
	defer h.Close()

	mime, err := h.ClassifyFile(path)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if !strings.HasPrefix(mime, "text/") {
		t.Errorf("expected a text/* MIME type, got %q", mime)
	}
}

// TestClassifyFileStripsParameters tests that a text file, which
// gabriel-vasile/mimetype detects with a "; charset=..." parameter, is
// reported as just its essence (e.g. "text/plain"), with no parameters.
func TestClassifyFileStripsParameters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(path, []byte("just some ordinary text content"), 0600); err != nil {
		t.Fatal(err)
	}

	h := NewHandle()
	defer h.Close()

	mime, err := h.ClassifyFile(path)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if strings.Contains(mime, ";") {
		t.Errorf("expected no MIME parameters, got %q", mime)
	}
	if mime != strings.TrimSpace(mime) {
		t.Errorf("expected a trimmed MIME type, got %q", mime)
	}
}

// TestClassifyFileMissingPath tests that classifying a nonexistent file
// surfaces an error.
func TestClassifyFileMissingPath(t *testing.T) {
	h := NewHandle()
	defer h.Close()

	missing := filepath.Join(t.TempDir(), "does-not-exist")
	if _, err := h.ClassifyFile(missing); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

// TestCloseIdempotent tests that Close can be called multiple times and
// that Closed reports the handle's state.
func TestCloseIdempotent(t *testing.T) {
	h := NewHandle()
	if h.Closed() {
		t.Error("a fresh handle should not be closed")
	}
	if err := h.Close(); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if !h.Closed() {
		t.Error("expected the handle to be closed")
	}
	if err := h.Close(); err != nil {
		t.Fatal("unexpected error on second Close:", err)
	}
}
