// Package module defines the inspection module contract and an ordered
// registry queryable by MIME type.
package module

import (
	"github.com/arvoscan/arvo/pkg/verdict"
)

// Status describes whether a module is usable.
type Status uint8

const (
	// StatusOK indicates the module is ready to scan.
	StatusOK Status = iota
	// StatusUnavailable indicates the module failed to initialize (e.g. a
	// missing signature database) and must be skipped by the evaluator.
	StatusUnavailable
)

// Module is an inspection plugin producing a verdict for one file. A
// module is scoped to one or more MIME types via the registry it is
// registered under, not by any method on the interface itself.
type Module interface {
	// Name returns the module's identifying name, used to attribute a
	// Report's ModuleName field.
	Name() string
	// Status reports whether the module is currently usable. Modules
	// whose status is not StatusOK are skipped by the evaluator.
	Status() Status
	// Scan inspects the file at path, whose MIME type has already been
	// classified as mime, and returns a verdict plus an optional
	// diagnostic string. An error indicates the module itself failed
	// (ModuleError in the error taxonomy), not that the file is bad.
	Scan(path string, mime string) (verdict.Verdict, string, error)
}

// Entry pairs a Module with the MIME types it applies to. A wildcard MIME
// type of "*" matches any file, regardless of classification.
type Entry struct {
	Module Module
	MIMEs  []string
}

// Wildcard is the MIME type that matches any file.
const Wildcard = "*"

// Registry is an ordered list of modules, queryable by MIME type. Modules
// are evaluated in registration order; the registry itself is read-only
// once a scan is underway.
type Registry struct {
	entries []Entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a module to the registry, scoped to the given MIME
// types (or Wildcard to apply to every file).
func (r *Registry) Register(m Module, mimes ...string) {
	r.entries = append(r.entries, Entry{Module: m, MIMEs: mimes})
}

// Applicable returns the ordered list of modules applicable to mime,
// preserving registration order.
func (r *Registry) Applicable(mime string) []Module {
	var applicable []Module
	for _, entry := range r.entries {
		if entryMatches(entry, mime) {
			applicable = append(applicable, entry.Module)
		}
	}
	return applicable
}

// Names returns the names of every registered module, in registration
// order, for diagnostic use (Engine.Print).
func (r *Registry) Names() []string {
	names := make([]string, len(r.entries))
	for i, entry := range r.entries {
		names[i] = entry.Module.Name()
	}
	return names
}

func entryMatches(entry Entry, mime string) bool {
	for _, candidate := range entry.MIMEs {
		if candidate == Wildcard || candidate == mime {
			return true
		}
	}
	return false
}
