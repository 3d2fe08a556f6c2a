// Package report defines the Report value type fanned out to observers
// once per scanned file.
package report

import (
	"fmt"

	"github.com/arvoscan/arvo/pkg/verdict"
)

// Status is a file-level status: either a lattice verdict or the IERROR
// absorbing state, which sits outside the verdict lattice entirely (no
// module ever produces it; it is raised by the walker adapter or the
// module-chain evaluator on internal failure).
type Status struct {
	// verdict is meaningful only when ierror is false.
	verdict verdict.Verdict
	ierror  bool
}

// FromVerdict wraps a lattice verdict as a Status.
func FromVerdict(v verdict.Verdict) Status {
	return Status{verdict: v}
}

// IERROR is the traversal/module-error absorbing status.
var IERROR = Status{ierror: true}

// IsIERROR reports whether the status is the IERROR absorbing state.
func (s Status) IsIERROR() bool {
	return s.ierror
}

// Verdict returns the underlying lattice verdict. It is only meaningful
// when IsIERROR is false.
func (s Status) Verdict() verdict.Verdict {
	return s.verdict
}

// String returns a human-readable name for the status.
func (s Status) String() string {
	if s.ierror {
		return "IERROR"
	}
	return s.verdict.String()
}

// Action is a bitmask describing the disposition requested for a file.
type Action uint8

const (
	// ActionNone requests no action.
	ActionNone Action = 0
	// ActionAlert requests that the file's verdict be surfaced to the
	// user/operator.
	ActionAlert Action = 1 << iota
	// ActionQuarantine requests that the file be relocated to the
	// quarantine directory.
	ActionQuarantine
	// ActionRemove requests that the file be deleted outright.
	ActionRemove
)

// Has reports whether the bitmask includes the given action.
func (a Action) Has(other Action) bool {
	return a&other != 0
}

// String renders the set bits for diagnostic output.
func (a Action) String() string {
	if a == ActionNone {
		return "NONE"
	}
	s := ""
	add := func(name string) {
		if s != "" {
			s += "|"
		}
		s += name
	}
	if a.Has(ActionAlert) {
		add("ALERT")
	}
	if a.Has(ActionQuarantine) {
		add("QUARANTINE")
	}
	if a.Has(ActionRemove) {
		add("REMOVE")
	}
	return s
}

// Report carries one file's verdict and provenance. It is constructed
// when a regular file is encountered or a walker error fires, mutated only
// by the module-chain evaluator within a single worker, and then passed to
// observers. There is no explicit destructor: once fan-out completes, the
// Report is simply no longer referenced.
type Report struct {
	// Path is the absolute, canonical path of the scanned file.
	Path string
	// Status is the file's aggregated verdict, or IERROR.
	Status Status
	// Action is the disposition bitmask requested for the file.
	Action Action
	// ModuleName is the name of the module whose verdict is currently
	// recorded. It is empty while Status is still Undecided and for an
	// IERROR raised outside the module chain; for an IERROR caused by a
	// module error it names the failing module.
	ModuleName string
	// ModuleReport is an opaque, module-provided diagnostic string. It may
	// be empty.
	ModuleReport string
}

// New constructs a Report in its initial (undecided) state for path.
func New(path string) *Report {
	return &Report{
		Path:   path,
		Status: FromVerdict(verdict.Undecided),
	}
}

// Errorf constructs an IERROR Report for path with a formatted diagnostic.
func Errorf(path, format string, args ...interface{}) *Report {
	return &Report{
		Path:         path,
		Status:       IERROR,
		ModuleReport: fmt.Sprintf(format, args...),
	}
}

// Adopt applies a module's verdict to the Report if it is strictly greater
// than the Report's current status under the verdict lattice, replacing
// Status, ModuleName, and ModuleReport together. It returns whether the
// chain should short-circuit after this update.
func (r *Report) Adopt(moduleName string, v verdict.Verdict, diagnostic string) (shortCircuit bool) {
	if r.Status.IsIERROR() {
		return true
	}
	if !v.Greater(r.Status.Verdict()) {
		return false
	}
	r.Status = FromVerdict(v)
	r.ModuleName = moduleName
	r.ModuleReport = diagnostic
	return v.ShortCircuits()
}
