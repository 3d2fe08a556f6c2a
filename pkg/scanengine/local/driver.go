// Package local implements the in-process scan driver: it wires the
// directory walker adapter, an optional worker pool, the module chain
// evaluator, and the observer list together, per component design §4.5.
package local

import (
	"context"
	"os"

	"github.com/arvoscan/arvo/pkg/contextutil"
	"github.com/arvoscan/arvo/pkg/logging"
	"github.com/arvoscan/arvo/pkg/mimeclass"
	"github.com/arvoscan/arvo/pkg/module"
	"github.com/arvoscan/arvo/pkg/report"
	"github.com/arvoscan/arvo/pkg/scanengine"
	"github.com/arvoscan/arvo/pkg/scanengine/observer"
	"github.com/arvoscan/arvo/pkg/scanengine/walker"
	"github.com/arvoscan/arvo/pkg/scanengine/workerpool"
)

// Driver implements scanengine.Driver for in-process scans.
type Driver struct {
	root        string
	recurse     bool
	threaded    bool
	workerCount int
	registry    *module.Registry
	observers   *observer.List
	logger      *logging.Logger

	pool   *workerpool.Pool
	handle *mimeclass.Handle
}

// New constructs a local driver. workerCount is only consulted when
// threaded is true; a value less than 1 falls back to
// workerpool.DefaultSize.
func New(root string, recurse, threaded bool, workerCount int, registry *module.Registry, observers *observer.List, logger *logging.Logger) *Driver {
	return &Driver{
		root:        root,
		recurse:     recurse,
		threaded:    threaded,
		workerCount: workerCount,
		registry:    registry,
		observers:   observers,
		logger:      logger,
	}
}

// Start creates the worker pool (threaded mode) or the single scan-local
// MIME handle (non-threaded mode). It always returns OK: local resource
// allocation at this stage cannot fail in the Go implementation (pool
// creation is infallible; failures surface per-file as IERROR reports).
func (d *Driver) Start(_ context.Context) (scanengine.Status, error) {
	if d.threaded {
		d.pool = workerpool.New(d.workerCount, d.process)
	} else {
		d.handle = mimeclass.NewHandle()
	}
	return scanengine.OK, nil
}

// Run blocks until traversal and pool drain (if threaded) complete,
// returning Completed. If ctx is cancelled mid-traversal, no further jobs
// are enqueued, but jobs already submitted to the pool are allowed to
// drain before Run returns — matching §5's "a dropped scan still joins
// outstanding workers."
func (d *Driver) Run(ctx context.Context) (scanengine.Status, error) {
	err := walker.Walk(d.root, d.recurse, func(path string) {
		if contextutil.IsCancelled(ctx) {
			return
		}
		if d.pool != nil {
			d.pool.Submit(path)
		} else {
			d.process(d.handle, path)
		}
	}, func(path string, walkErr error) {
		d.observers.Notify(report.Errorf(path, "%v", walkErr))
	})
	if err != nil {
		d.logger.Error(err)
	}

	if d.pool != nil {
		d.pool.Close()
	}

	return scanengine.Completed, nil
}

// PollFD always fails for the local driver: local mode has no descriptor
// to expose and callers must integrate via blocking Run calls.
func (d *Driver) PollFD() (int, error) {
	return -1, scanengine.ErrNotPollable
}

// Free releases the worker pool (if any) or the scan-local MIME handle.
func (d *Driver) Free() {
	if d.pool != nil {
		d.pool.Close()
		d.pool = nil
	}
	if d.handle != nil {
		d.handle.Close()
		d.handle = nil
	}
}

// process classifies and evaluates a single file, fanning out the
// resulting Report. It is the job handler passed to workerpool.New, and
// is also invoked directly (with the scan-local handle) in non-threaded
// mode.
func (d *Driver) process(handle *mimeclass.Handle, path string) {
	r := report.New(path)

	info, err := os.Lstat(path)
	if err != nil {
		d.observers.Notify(report.Errorf(path, "%v", err))
		return
	}
	if !info.Mode().IsRegular() {
		return
	}

	mime, err := handle.ClassifyFile(path)
	if err != nil {
		r.Status = report.IERROR
		r.ModuleReport = err.Error()
		d.observers.Notify(r)
		return
	}

	applicable := d.registry.Applicable(mime)
	if len(applicable) == 0 {
		module.ApplyUnknownType(r)
		d.observers.Notify(r)
		return
	}

	module.Evaluate(r, mime, applicable)
	d.observers.Notify(r)

	if d.logger != nil {
		d.logger.Debugf("scanned %s: %s (%s)", r.Path, r.Status, r.ModuleName)
	}
}
