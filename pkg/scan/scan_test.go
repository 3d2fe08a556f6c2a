package scan

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/arvoscan/arvo/pkg/modules/eicar"
	"github.com/arvoscan/arvo/pkg/report"
)

// TestLocalScanDetectsEicar runs an end-to-end local scan over a directory
// containing an EICAR test file and a benign file, verifying the reports
// delivered to a caller-registered observer.
func TestLocalScanDetectsEicar(t *testing.T) {
	dir := t.TempDir()
	malicious := filepath.Join(dir, "sample.exe")
	benign := filepath.Join(dir, "readme.txt")

	if err := os.WriteFile(malicious, []byte(`X5O!P%@AP[4\PZX54(P^)7CC)7}$EICAR-STANDARD-ANTIVIRUS-TEST-FILE!$H+H*`), 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(benign, []byte("just some text"), 0600); err != nil {
		t.Fatal(err)
	}

	engine := Open(false)
	engine.Registry().Register(eicar.New(), "*")
	defer engine.Close()

	s, err := engine.NewScan(dir, Recurse)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	var mu sync.Mutex
	reports := make(map[string]*report.Report)
	s.AddObserver(func(r *report.Report) {
		mu.Lock()
		reports[r.Path] = r
		mu.Unlock()
	})

	if status, err := s.Start(); err != nil || status != OK {
		t.Fatalf("Start failed: status=%v err=%v", status, err)
	}
	defer s.Free()

	if status, err := s.Run(context.Background()); err != nil || status != Completed {
		t.Fatalf("Run failed: status=%v err=%v", status, err)
	}

	maliciousReport, ok := reports[malicious]
	if !ok {
		t.Fatalf("expected a report for %s", malicious)
	}
	if maliciousReport.ModuleName != "eicar" {
		t.Errorf("expected the eicar module to have reported, got %q", maliciousReport.ModuleName)
	}

	benignReport, ok := reports[benign]
	if !ok {
		t.Fatalf("expected a report for %s", benign)
	}
	if benignReport.Status.IsIERROR() {
		t.Error("benign file should not be reported as IERROR")
	}
}

// TestNewScanRejectsMissingPath tests that NewScan fails with
// ErrPathInvalid for a path that does not exist.
func TestNewScanRejectsMissingPath(t *testing.T) {
	engine := Open(false)
	defer engine.Close()

	missing := filepath.Join(t.TempDir(), "does-not-exist")
	if _, err := engine.NewScan(missing, 0); err == nil {
		t.Fatal("expected an error for a nonexistent path")
	}
}

// TestEnginePollFDNotPollableInLocalMode tests that a local-mode scan's
// PollFD always fails, since local mode has no descriptor to expose.
func TestEnginePollFDNotPollableInLocalMode(t *testing.T) {
	dir := t.TempDir()

	engine := Open(false)
	defer engine.Close()

	s, err := engine.NewScan(dir, 0)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if _, err := s.Start(); err != nil {
		t.Fatal("unexpected error:", err)
	}
	defer s.Free()

	if _, err := s.PollFD(); err != ErrNotPollable {
		t.Errorf("expected ErrNotPollable, got %v", err)
	}
}
