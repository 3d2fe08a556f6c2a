// Package scan is the public facade: a single entry point selecting the
// local or remote scan driver at construction time and exposing the exact
// API shape from §6.
package scan

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/arvoscan/arvo/pkg/logging"
	"github.com/arvoscan/arvo/pkg/module"
	"github.com/arvoscan/arvo/pkg/observers"
	"github.com/arvoscan/arvo/pkg/report"
	"github.com/arvoscan/arvo/pkg/scanengine"
	"github.com/arvoscan/arvo/pkg/scanengine/local"
	"github.com/arvoscan/arvo/pkg/scanengine/observer"
	"github.com/arvoscan/arvo/pkg/scanengine/remote"
)

// Flags and Status are re-exported from pkg/scanengine so that callers of
// this package never need to import it directly.
type (
	Flags  = scanengine.Flags
	Status = scanengine.Status
)

const (
	Threaded = scanengine.Threaded
	Recurse  = scanengine.Recurse

	OK            = scanengine.OK
	CannotConnect = scanengine.CannotConnect
	Continue      = scanengine.Continue
	Completed     = scanengine.Completed
)

// ErrNotPollable and ErrPathInvalid are re-exported for the same reason.
var (
	ErrNotPollable = scanengine.ErrNotPollable
	ErrPathInvalid = scanengine.ErrPathInvalid
)

// Engine is the top-level handle: it owns the module registry and the
// local/remote mode decision, and constructs Scans against it.
type Engine struct {
	isRemote    bool
	verbose     int
	registry    *module.Registry
	workerCount int
	logger      *logging.Logger
}

// Open creates an Engine. isRemote is immutable for the Engine's
// lifetime, set once here and never mutated (§9, "Global 'is remote'
// flag on the engine").
func Open(isRemote bool) *Engine {
	return &Engine{
		isRemote: isRemote,
		registry: module.NewRegistry(),
		logger:   logging.RootLogger.Sublogger("scan"),
	}
}

// Registry returns the engine's module registry, for callers to populate
// before any scan is constructed. The registry is
// read-only once a scan is underway, per §5.
func (e *Engine) Registry() *module.Registry {
	return e.registry
}

// SetRegistry replaces the engine's module registry wholesale, for
// callers (typically cmd/arvo, cmd/arvod) that build one from
// pkg/config.Config.BuildRegistry rather than populating the default
// registry entry by entry.
func (e *Engine) SetRegistry(registry *module.Registry) {
	e.registry = registry
}

// SetWorkerCount configures the local threaded worker pool size; zero or
// negative falls back to workerpool.DefaultSize. It has no effect on
// remote-mode engines.
func (e *Engine) SetWorkerCount(count int) {
	e.workerCount = count
}

// SetVerbose records the engine's verbosity level, which GetVerbose returns
// and Print reports. The scan drivers do not consult it: log output is the
// same at every level.
func (e *Engine) SetVerbose(level int) {
	e.verbose = level
}

// GetVerbose returns the engine's current verbosity level.
func (e *Engine) GetVerbose() int {
	return e.verbose
}

// Close releases engine-level resources. The current implementation holds
// none beyond the registry (which is just a slice), but Close exists to
// match the C lifecycle and to give future engine-level resources (e.g. a
// shared connection pool) an obvious place to attach teardown.
func (e *Engine) Close() {}

// Print writes a diagnostic dump of the engine's mode, verbosity, and
// loaded module names, grounded on uhuru_print in
// original_source/libuhuru/include/libuhuru/scan.h (dropped by the
// distillation, restored here as an explicit opt-in diagnostic rather
// than part of the tested core).
func (e *Engine) Print(w io.Writer) {
	mode := "local"
	if e.isRemote {
		mode = "remote"
	}
	fmt.Fprintf(w, "arvo engine: mode=%s verbose=%d\n", mode, e.verbose)
	fmt.Fprintln(w, "modules:")
	for _, name := range e.registry.Names() {
		fmt.Fprintf(w, "  - %s\n", name)
	}
}

// Scan represents one traversal request against an Engine.
type Scan struct {
	engine    *Engine
	path      string
	flags     Flags
	observers *observer.List
	driver    scanengine.Driver
	started   bool
}

// NewScan canonicalizes path, records flags, and initializes mode-specific
// state. In local mode it pre-registers the built-in alert and quarantine
// observers (§4.1). They act only on reports whose Action carries the
// ALERT or QUARANTINE bit, and the local driver never sets Action bits,
// so in a local scan they take no action; remote-mode scans rely on the daemon itself having applied them before
// streaming reports back, so no local pre-registration happens there.
func (e *Engine) NewScan(path string, flags Flags) (*Scan, error) {
	canonical, err := canonicalize(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrPathInvalid, err)
	}

	s := &Scan{
		engine:    e,
		path:      canonical,
		flags:     flags,
		observers: observer.NewList(e.logger),
	}

	if e.isRemote {
		s.driver = remote.New(canonical, s.observers, e.logger)
	} else {
		s.observers.Add(observers.Alert(e.logger))
		s.observers.Add(observers.Quarantine(e.logger))
		s.driver = local.New(
			canonical,
			flags.Has(Recurse),
			flags.Has(Threaded),
			e.workerCount,
			e.registry,
			s.observers,
			e.logger,
		)
	}

	return s, nil
}

// canonicalize resolves symlinks and rejects non-existent paths, per
// §4.1's PathInvalid rule.
func canonicalize(path string) (string, error) {
	absolute, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if _, err := os.Lstat(absolute); err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(absolute)
	if err != nil {
		return "", err
	}
	return resolved, nil
}

// AddObserver registers an observer. Callers must register before Start;
// registration after Start yields undefined observer visibility, per
// §4.1.
func (s *Scan) AddObserver(observerFunc func(*report.Report)) {
	s.observers.Add(observerFunc)
}

// Start transitions the scan from CREATED to STARTED.
func (s *Scan) Start() (Status, error) {
	s.started = true
	return s.driver.Start(context.Background())
}

// Run drives the scan using ctx for cancellation (an additive capability
// over spec.md; see §5).
func (s *Scan) Run(ctx context.Context) (Status, error) {
	return s.driver.Run(ctx)
}

// PollFD returns the remote driver's connection descriptor, or
// ErrNotPollable in local mode.
func (s *Scan) PollFD() (int, error) {
	return s.driver.PollFD()
}

// Free releases the scan's driver resources.
func (s *Scan) Free() {
	s.driver.Free()
}
