// Package whitelist implements a builtin module that matches a file's
// path against a set of glob patterns, producing the WhiteListed
// short-circuit verdict on a match. Pattern matching uses the teacher's
// bmatcuk/doublestar dependency, which supports the "**" recursive
// wildcard that path/filepath.Match lacks.
package whitelist

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/arvoscan/arvo/pkg/module"
	"github.com/arvoscan/arvo/pkg/verdict"
)

// Module flags files matching any of its glob patterns as WhiteListed.
type Module struct {
	name     string
	patterns []string
}

// New constructs a whitelist module named name from a set of doublestar
// glob patterns, matched against the file's path.
func New(name string, patterns []string) *Module {
	return &Module{name: name, patterns: patterns}
}

// Name implements module.Module.
func (m *Module) Name() string {
	return m.name
}

// Status implements module.Module.
func (m *Module) Status() module.Status {
	return module.StatusOK
}

// Scan implements module.Module.
func (m *Module) Scan(path string, _ string) (verdict.Verdict, string, error) {
	for _, pattern := range m.patterns {
		matched, err := doublestar.Match(pattern, path)
		if err != nil {
			return verdict.Undecided, "", fmt.Errorf("invalid whitelist pattern %q: %w", pattern, err)
		}
		if matched {
			return verdict.WhiteListed, fmt.Sprintf("matched whitelist pattern %q", pattern), nil
		}
	}
	return verdict.Clean, "", nil
}
