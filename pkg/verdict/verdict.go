// Package verdict defines the total order over file verdicts used to
// aggregate module results within a single scan.
package verdict

// Verdict is a file-level classification produced by an inspection module
// or adopted by the module chain evaluator.
type Verdict uint8

const (
	// Undecided is the initial rank before any module has raised it.
	Undecided Verdict = iota
	// Clean indicates a module found no indication of a problem.
	Clean
	// UnknownFileType indicates no module was applicable to the file's
	// MIME type.
	UnknownFileType
	// Unsupported indicates a module recognized the file but cannot
	// inspect it (e.g. an encrypted archive).
	Unsupported
	// Suspicious indicates a module found indicators short of a
	// definitive malware match.
	Suspicious
	// Malware indicates a module matched a known-bad signature. Malware
	// short-circuits the module chain.
	Malware
	// WhiteListed is a short-circuit terminal tied with Malware: once
	// adopted, the module chain stops.
	WhiteListed
)

// rank gives the lattice position used for comparison. WhiteListed is tied
// with Malware for short-circuit purposes but is tracked as a distinct,
// higher rank so that a later module cannot downgrade a whitelist decision
// by reporting Malware for the same file (the chain never runs that far,
// since WhiteListed already terminated it, but the ordering is defined
// anyway for consistency with the "total order" invariant).
var rank = map[Verdict]int{
	Undecided:       0,
	Clean:           1,
	UnknownFileType: 2,
	Unsupported:     2,
	Suspicious:      3,
	Malware:         4,
	WhiteListed:     5,
}

// String returns a human-readable name for the verdict.
func (v Verdict) String() string {
	switch v {
	case Undecided:
		return "UNDECIDED"
	case Clean:
		return "CLEAN"
	case UnknownFileType:
		return "UNKNOWN_FILE_TYPE"
	case Unsupported:
		return "UNSUPPORTED"
	case Suspicious:
		return "SUSPICIOUS"
	case Malware:
		return "MALWARE"
	case WhiteListed:
		return "WHITE_LISTED"
	default:
		return "UNKNOWN_VERDICT"
	}
}

// Greater returns whether v strictly outranks other in the verdict lattice.
func (v Verdict) Greater(other Verdict) bool {
	return rank[v] > rank[other]
}

// ShortCircuits returns whether adopting v should terminate the module
// chain early (WhiteListed and Malware are the two short-circuit ranks).
func (v Verdict) ShortCircuits() bool {
	return v == WhiteListed || v == Malware
}

// IERROR is a separate absorbing state for traversal errors. It is not
// part of the module-verdict lattice (a module never produces it) and is
// represented as a distinct Status value rather than a Verdict; see
// pkg/report.Status.
