package report

import (
	"testing"

	"github.com/arvoscan/arvo/pkg/verdict"
)

// TestNewIsUndecided tests that a freshly constructed Report starts in the
// undecided state with no module attribution.
func TestNewIsUndecided(t *testing.T) {
	r := New("/tmp/file")
	if r.Path != "/tmp/file" {
		t.Errorf("unexpected path: %s", r.Path)
	}
	if r.Status.IsIERROR() {
		t.Error("new report should not be IERROR")
	}
	if r.Status.Verdict() != verdict.Undecided {
		t.Errorf("new report should start undecided, got %s", r.Status.Verdict())
	}
	if r.ModuleName != "" {
		t.Error("new report should have no module attribution")
	}
}

// TestErrorfIsIERROR tests that Errorf constructs an IERROR report with a
// formatted diagnostic.
func TestErrorfIsIERROR(t *testing.T) {
	r := Errorf("/tmp/file", "failed after %d attempts", 3)
	if !r.Status.IsIERROR() {
		t.Error("expected IERROR status")
	}
	if r.ModuleReport != "failed after 3 attempts" {
		t.Errorf("unexpected diagnostic: %s", r.ModuleReport)
	}
}

// TestAdoptMonotonic tests that Adopt only replaces the status when the new
// verdict strictly outranks the current one, and that ties are rejected.
func TestAdoptMonotonic(t *testing.T) {
	r := New("/tmp/file")

	if sc := r.Adopt("clean-module", verdict.Clean, "nothing found"); sc {
		t.Error("Clean should not short-circuit")
	}
	if r.Status.Verdict() != verdict.Clean || r.ModuleName != "clean-module" {
		t.Error("Adopt did not record the Clean verdict")
	}

	// A lower-ranked verdict must not downgrade the report.
	if sc := r.Adopt("weaker-module", verdict.Undecided, "shouldn't apply"); sc {
		t.Error("Undecided should never short-circuit")
	}
	if r.Status.Verdict() != verdict.Clean || r.ModuleName != "clean-module" {
		t.Error("a weaker verdict should not have overwritten the report")
	}

	// A strictly higher verdict should replace the status and signal the
	// chain to stop.
	if sc := r.Adopt("malware-module", verdict.Malware, "eicar match"); !sc {
		t.Error("Malware should short-circuit")
	}
	if r.Status.Verdict() != verdict.Malware || r.ModuleName != "malware-module" {
		t.Error("Adopt did not record the Malware verdict")
	}
}

// TestAdoptOnIERRORAlwaysShortCircuits tests that Adopt refuses to touch an
// IERROR report and always reports a short-circuit so the evaluator stops.
func TestAdoptOnIERRORAlwaysShortCircuits(t *testing.T) {
	r := Errorf("/tmp/file", "walk failed")
	if sc := r.Adopt("any-module", verdict.Malware, "irrelevant"); !sc {
		t.Error("Adopt on an IERROR report should short-circuit")
	}
	if !r.Status.IsIERROR() {
		t.Error("Adopt should not have cleared the IERROR status")
	}
	if r.ModuleName != "" {
		t.Error("Adopt should not have attributed a module to an IERROR report")
	}
}

// TestActionHasAndString tests the Action bitmask's Has and String methods.
func TestActionHasAndString(t *testing.T) {
	a := ActionAlert | ActionQuarantine
	if !a.Has(ActionAlert) || !a.Has(ActionQuarantine) {
		t.Error("Has should report set bits")
	}
	if a.Has(ActionRemove) {
		t.Error("Has should not report unset bits")
	}
	if ActionNone.String() != "NONE" {
		t.Errorf("expected NONE, got %s", ActionNone.String())
	}
	if s := a.String(); s != "ALERT|QUARANTINE" {
		t.Errorf("unexpected action string: %s", s)
	}
}
