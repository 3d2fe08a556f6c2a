package workerpool

import (
	"sort"
	"sync"
	"testing"

	"github.com/arvoscan/arvo/pkg/mimeclass"
)

// TestPoolProcessesAllJobs tests that every submitted job is handled
// exactly once before Close returns.
func TestPoolProcessesAllJobs(t *testing.T) {
	var mu sync.Mutex
	var seen []string

	pool := New(4, func(handle *mimeclass.Handle, path string) {
		if handle == nil {
			t.Error("handler invoked with a nil handle")
		}
		mu.Lock()
		seen = append(seen, path)
		mu.Unlock()
	})

	paths := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	for _, p := range paths {
		pool.Submit(p)
	}
	pool.Close()

	sort.Strings(seen)
	sort.Strings(paths)
	if len(seen) != len(paths) {
		t.Fatalf("expected %d jobs processed, got %d", len(paths), len(seen))
	}
	for i := range paths {
		if seen[i] != paths[i] {
			t.Fatalf("job mismatch: %v != %v", seen, paths)
		}
	}
}

// TestPoolDefaultSize tests that a non-positive size falls back to
// DefaultSize.
func TestPoolDefaultSize(t *testing.T) {
	pool := New(0, func(*mimeclass.Handle, string) {})
	defer pool.Close()
	if pool.Size() != DefaultSize {
		t.Errorf("expected default size %d, got %d", DefaultSize, pool.Size())
	}
}

// TestPoolCloseIdempotent tests that calling Close more than once does not
// block indefinitely or panic.
func TestPoolCloseIdempotent(t *testing.T) {
	pool := New(2, func(*mimeclass.Handle, string) {})
	pool.Submit("x")
	pool.Close()
	pool.Close()
}
