package module

import (
	"testing"

	"github.com/arvoscan/arvo/pkg/verdict"
)

// fakeModule is a minimal Module implementation for registry/evaluator
// tests.
type fakeModule struct {
	name   string
	status Status
	result verdict.Verdict
	diag   string
	err    error
	calls  int
}

func (f *fakeModule) Name() string   { return f.name }
func (f *fakeModule) Status() Status { return f.status }
func (f *fakeModule) Scan(path, mime string) (verdict.Verdict, string, error) {
	f.calls++
	return f.result, f.diag, f.err
}

// TestRegistryApplicableWildcard tests that a wildcard-registered module
// applies to every MIME type.
func TestRegistryApplicableWildcard(t *testing.T) {
	r := NewRegistry()
	m := &fakeModule{name: "always"}
	r.Register(m, Wildcard)

	applicable := r.Applicable("text/plain")
	if len(applicable) != 1 || applicable[0] != m {
		t.Fatal("wildcard module should apply to any MIME type")
	}
}

// TestRegistryApplicableScoped tests that a module scoped to specific MIME
// types only applies to those types.
func TestRegistryApplicableScoped(t *testing.T) {
	r := NewRegistry()
	m := &fakeModule{name: "scoped"}
	r.Register(m, "application/zip", "application/x-rar")

	if applicable := r.Applicable("application/zip"); len(applicable) != 1 {
		t.Error("module should apply to a registered MIME type")
	}
	if applicable := r.Applicable("text/plain"); len(applicable) != 0 {
		t.Error("module should not apply to an unregistered MIME type")
	}
}

// TestRegistryOrderPreserved tests that Applicable preserves registration
// order.
func TestRegistryOrderPreserved(t *testing.T) {
	r := NewRegistry()
	first := &fakeModule{name: "first"}
	second := &fakeModule{name: "second"}
	r.Register(first, Wildcard)
	r.Register(second, Wildcard)

	applicable := r.Applicable("anything")
	if len(applicable) != 2 || applicable[0] != first || applicable[1] != second {
		t.Fatal("Applicable should preserve registration order")
	}
}

// TestRegistryNames tests that Names reports every registered module's
// name in registration order.
func TestRegistryNames(t *testing.T) {
	r := NewRegistry()
	r.Register(&fakeModule{name: "a"}, Wildcard)
	r.Register(&fakeModule{name: "b"}, Wildcard)

	names := r.Names()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Fatalf("unexpected names: %v", names)
	}
}
