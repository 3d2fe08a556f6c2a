// Package scanengine holds the small set of types (Status, Flags) shared
// between the public facade (pkg/scan) and its internal drivers
// (pkg/scanengine/local, pkg/scanengine/remote), avoiding an import cycle
// between the facade and the drivers it constructs.
package scanengine

// Status is the result of a Start or Run call on a scan driver.
type Status uint8

const (
	// OK indicates a driver-level operation succeeded.
	OK Status = iota
	// CannotConnect indicates the remote driver could not open its socket
	// within the retry bound.
	CannotConnect
	// Continue indicates a remote Run call consumed a frame and more are
	// expected.
	Continue
	// Completed indicates the scan has finished: local traversal and pool
	// drain completed, or the remote stream ended.
	Completed
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case OK:
		return "OK"
	case CannotConnect:
		return "CANNOT_CONNECT"
	case Continue:
		return "CONTINUE"
	case Completed:
		return "COMPLETED"
	default:
		return "UNKNOWN_STATUS"
	}
}

// Flags is a bitmask over scan construction options.
type Flags uint8

const (
	// Threaded requests a bounded worker pool for local scans.
	Threaded Flags = 1 << iota
	// Recurse requests recursive traversal of directory roots.
	Recurse
)

// Has reports whether the bitmask includes the given flag.
func (f Flags) Has(other Flags) bool {
	return f&other != 0
}
