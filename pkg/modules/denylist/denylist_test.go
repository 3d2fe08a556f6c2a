package denylist

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/arvoscan/arvo/pkg/module"
	"github.com/arvoscan/arvo/pkg/verdict"
)

// writeTempFile writes content to a temporary file and returns its path.
func writeTempFile(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample")
	if err := os.WriteFile(path, content, 0600); err != nil {
		t.Fatal("unable to write temp file:", err)
	}
	return path
}

// TestScanMatchesDenylist tests that a file whose hash is in the denylist
// is flagged as Malware.
func TestScanMatchesDenylist(t *testing.T) {
	content := []byte("known bad content")
	sum := sha256.Sum256(content)
	hash := hex.EncodeToString(sum[:])

	m := New("denylist", []string{hash})
	path := writeTempFile(t, content)

	v, diagnostic, err := m.Scan(path, "")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if v != verdict.Malware {
		t.Errorf("expected Malware, got %s", v)
	}
	if diagnostic == "" {
		t.Error("expected a non-empty diagnostic")
	}
}

// TestScanNoMatch tests that an unlisted file hash is Clean.
func TestScanNoMatch(t *testing.T) {
	m := New("denylist", []string{"0000000000000000000000000000000000000000000000000000000000000000"})
	path := writeTempFile(t, []byte("benign content"))

	v, _, err := m.Scan(path, "")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if v != verdict.Clean {
		t.Errorf("expected Clean, got %s", v)
	}
}

// TestStatusUnavailableWithNilHashes tests that a module constructed
// without a hash set reports StatusUnavailable.
func TestStatusUnavailableWithNilHashes(t *testing.T) {
	m := &Module{name: "denylist"}
	if m.Status() != module.StatusUnavailable {
		t.Error("expected StatusUnavailable for a nil hash set")
	}
}

// TestStatusOK tests that a module constructed via New is always ready,
// even with an empty hash list.
func TestStatusOK(t *testing.T) {
	m := New("denylist", nil)
	if m.Status() != module.StatusOK {
		t.Error("expected StatusOK for a module constructed via New")
	}
}
