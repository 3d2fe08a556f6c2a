package verdict

import "testing"

// TestOrdering tests that the verdict lattice follows the documented total
// order, from weakest to strongest.
func TestOrdering(t *testing.T) {
	ordered := []Verdict{
		Undecided,
		Clean,
		UnknownFileType,
		Suspicious,
		Malware,
		WhiteListed,
	}
	for i := 1; i < len(ordered); i++ {
		if !ordered[i].Greater(ordered[i-1]) {
			t.Errorf("%s does not outrank %s", ordered[i], ordered[i-1])
		}
		if ordered[i-1].Greater(ordered[i]) {
			t.Errorf("%s outranks %s unexpectedly", ordered[i-1], ordered[i])
		}
	}
}

// TestUnknownFileTypeUnsupportedTie tests that UnknownFileType and
// Unsupported are tied in rank, as documented.
func TestUnknownFileTypeUnsupportedTie(t *testing.T) {
	if UnknownFileType.Greater(Unsupported) || Unsupported.Greater(UnknownFileType) {
		t.Error("UnknownFileType and Unsupported should be tied in rank")
	}
}

// TestShortCircuits tests that only Malware and WhiteListed short-circuit
// the module chain.
func TestShortCircuits(t *testing.T) {
	shortCircuiting := map[Verdict]bool{
		Undecided:       false,
		Clean:           false,
		UnknownFileType: false,
		Unsupported:     false,
		Suspicious:      false,
		Malware:         true,
		WhiteListed:     true,
	}
	for v, expected := range shortCircuiting {
		if v.ShortCircuits() != expected {
			t.Errorf("%s.ShortCircuits() = %v, expected %v", v, v.ShortCircuits(), expected)
		}
	}
}

// TestString tests that every verdict has a non-empty, non-default string
// representation.
func TestString(t *testing.T) {
	verdicts := []Verdict{
		Undecided, Clean, UnknownFileType, Unsupported, Suspicious, Malware, WhiteListed,
	}
	for _, v := range verdicts {
		if s := v.String(); s == "" || s == "UNKNOWN_VERDICT" {
			t.Errorf("unexpected string representation for %d: %q", v, s)
		}
	}
	if s := Verdict(255).String(); s != "UNKNOWN_VERDICT" {
		t.Errorf("expected UNKNOWN_VERDICT for invalid verdict, got %q", s)
	}
}
