// Package extension implements a builtin module that assigns a verdict
// based on a file's extension, for coarse policy like flagging
// executable or script extensions as Suspicious.
package extension

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arvoscan/arvo/pkg/module"
	"github.com/arvoscan/arvo/pkg/verdict"
)

// Module flags files whose extension appears in its rule table.
type Module struct {
	name  string
	rules map[string]verdict.Verdict
}

// New constructs an extension module named name. rules maps
// lowercase, dot-prefixed extensions (e.g. ".exe") to the verdict they
// should produce.
func New(name string, rules map[string]verdict.Verdict) *Module {
	return &Module{name: name, rules: rules}
}

// Name implements module.Module.
func (m *Module) Name() string {
	return m.name
}

// Status implements module.Module; the extension module has no external
// dependency and is always ready.
func (m *Module) Status() module.Status {
	return module.StatusOK
}

// Scan implements module.Module.
func (m *Module) Scan(path string, _ string) (verdict.Verdict, string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if v, ok := m.rules[ext]; ok {
		return v, fmt.Sprintf("extension %q matched rule", ext), nil
	}
	return verdict.Clean, "", nil
}
