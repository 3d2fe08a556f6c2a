// Package mimeclass provides a per-worker handle to the content-type
// classifier. The underlying detector (github.com/gabriel-vasile/mimetype)
// is safe for concurrent use, but the handle exists regardless to give
// each worker goroutine a single, lexically-scoped owner of classification
// state — the Go substitute for the original's thread-local, non-reentrant
// libmagic cookie (see pkg/scanengine/workerpool).
package mimeclass

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Handle is a worker-local MIME classifier. It must never be shared across
// goroutines; each worker goroutine constructs its own on loop setup and
// closes it on loop exit.
type Handle struct {
	closed bool
}

// NewHandle constructs a classifier handle. Construction is cheap (the
// underlying library keeps no per-call state), but a Handle is still
// modeled as a resource with an explicit lifecycle to mirror the original
// design's non-reentrant, per-thread cookie.
func NewHandle() *Handle {
	return &Handle{}
}

// ClassifyFile detects the MIME type of the file at path. It returns the
// detected MIME type's essence string (e.g. "text/plain"), stripped of any
// parameters.
func (h *Handle) ClassifyFile(path string) (string, error) {
	detected, err := mimetype.DetectFile(path)
	if err != nil {
		return "", err
	}
	essence, _, _ := strings.Cut(detected.String(), ";")
	return strings.TrimSpace(essence), nil
}

// Close releases the handle. It is idempotent; calling it more than once
// is a no-op. It exists so pool teardown can assert "closed exactly once
// per worker," matching the invariant in spec §8.
func (h *Handle) Close() error {
	h.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (h *Handle) Closed() bool {
	return h.closed
}
