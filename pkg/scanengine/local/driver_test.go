package local

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/arvoscan/arvo/pkg/module"
	"github.com/arvoscan/arvo/pkg/report"
	"github.com/arvoscan/arvo/pkg/scanengine"
	"github.com/arvoscan/arvo/pkg/scanengine/observer"
	"github.com/arvoscan/arvo/pkg/verdict"
)

// alwaysSuspiciousModule flags every file it sees as Suspicious, for
// driver-level tests that don't care about real content classification.
type alwaysSuspiciousModule struct{}

func (alwaysSuspiciousModule) Name() string          { return "always-suspicious" }
func (alwaysSuspiciousModule) Status() module.Status { return module.StatusOK }
func (alwaysSuspiciousModule) Scan(path, mime string) (verdict.Verdict, string, error) {
	return verdict.Suspicious, "flagged unconditionally", nil
}

// runDriver runs a local driver to completion and returns the reports it
// produced, keyed by path.
func runDriver(t *testing.T, root string, recurse, threaded bool) map[string]*report.Report {
	t.Helper()

	registry := module.NewRegistry()
	registry.Register(alwaysSuspiciousModule{}, module.Wildcard)

	observers := observer.NewList(nil)

	var mu sync.Mutex
	reports := make(map[string]*report.Report)
	observers.Add(func(r *report.Report) {
		mu.Lock()
		reports[r.Path] = r
		mu.Unlock()
	})

	driver := New(root, recurse, threaded, 2, registry, observers, nil)

	if status, err := driver.Start(context.Background()); err != nil || status != scanengine.OK {
		t.Fatalf("Start failed: status=%v err=%v", status, err)
	}
	defer driver.Free()

	status, err := driver.Run(context.Background())
	if err != nil {
		t.Fatal("Run failed:", err)
	}
	if status != scanengine.Completed {
		t.Errorf("expected Completed, got %v", status)
	}

	return reports
}

// TestDriverRecursiveThreadedScansAllFiles tests that a recursive,
// threaded scan reports every regular file under the root as Suspicious.
func TestDriverRecursiveThreadedScansAllFiles(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0700); err != nil {
		t.Fatal(err)
	}
	files := []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(sub, "b.txt"),
	}
	for _, f := range files {
		if err := os.WriteFile(f, []byte("content"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	reports := runDriver(t, dir, true, true)

	var seen []string
	for path, r := range reports {
		seen = append(seen, path)
		if r.Status.Verdict() != verdict.Suspicious {
			t.Errorf("expected Suspicious for %s, got %s", path, r.Status.Verdict())
		}
		if r.ModuleName != "always-suspicious" {
			t.Errorf("expected module attribution for %s, got %q", path, r.ModuleName)
		}
	}
	sort.Strings(seen)
	expected := append([]string{}, files...)
	sort.Strings(expected)
	if len(seen) != len(expected) {
		t.Fatalf("expected reports for %v, got %v", expected, seen)
	}
}

// TestDriverNonRecursiveDirectoryRootScansImmediateEntriesOnly tests that
// a non-recursive scan over a directory root still reports the
// directory's immediate regular-file entries, but does not descend into
// subdirectories.
func TestDriverNonRecursiveDirectoryRootScansImmediateEntriesOnly(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0700); err != nil {
		t.Fatal(err)
	}
	top := filepath.Join(dir, "top.txt")
	nested := filepath.Join(sub, "nested.txt")
	if err := os.WriteFile(top, []byte("content"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(nested, []byte("content"), 0600); err != nil {
		t.Fatal(err)
	}

	reports := runDriver(t, dir, false, true)

	if _, ok := reports[top]; !ok {
		t.Errorf("expected a report for the immediate entry %s", top)
	}
	if _, ok := reports[nested]; ok {
		t.Errorf("did not expect a report for the nested entry %s in a non-recursive scan", nested)
	}
}

// TestDriverNonThreadedSingleFileRoot tests that a non-threaded driver
// scans a regular-file root directly.
func TestDriverNonThreadedSingleFileRoot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(path, []byte("content"), 0600); err != nil {
		t.Fatal(err)
	}

	reports := runDriver(t, path, true, false)

	r, ok := reports[path]
	if !ok {
		t.Fatalf("expected a report for %s", path)
	}
	if r.Status.Verdict() != verdict.Suspicious {
		t.Errorf("expected Suspicious, got %s", r.Status.Verdict())
	}
}

// TestDriverWalkErrorProducesIERRORReport tests that a missing root
// produces an IERROR report rather than a driver-level error.
func TestDriverWalkErrorProducesIERRORReport(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")

	reports := runDriver(t, missing, true, false)

	r, ok := reports[missing]
	if !ok {
		t.Fatalf("expected an IERROR report for %s", missing)
	}
	if !r.Status.IsIERROR() {
		t.Errorf("expected IERROR, got %s", r.Status.Verdict())
	}
}

// TestDriverNoApplicableModuleYieldsUnknownFileType tests that a file with
// no applicable modules in the registry is reported UnknownFileType.
func TestDriverNoApplicableModuleYieldsUnknownFileType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.bin")
	if err := os.WriteFile(path, []byte("content"), 0600); err != nil {
		t.Fatal(err)
	}

	registry := module.NewRegistry() // no modules registered at all
	observers := observer.NewList(nil)

	var mu sync.Mutex
	var got *report.Report
	observers.Add(func(r *report.Report) {
		mu.Lock()
		got = r
		mu.Unlock()
	})

	driver := New(path, true, false, 1, registry, observers, nil)
	if _, err := driver.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer driver.Free()
	if _, err := driver.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	if got == nil {
		t.Fatal("expected a report to be notified")
	}
	if got.Status.Verdict() != verdict.UnknownFileType {
		t.Errorf("expected UnknownFileType, got %s", got.Status.Verdict())
	}
}
