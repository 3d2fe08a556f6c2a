package scanengine

import "context"

// Driver is the internal interface implemented by the local and remote
// scan drivers, replacing the tagged union / "is remote" branch the
// original engine used. Scan selects one concrete implementation at
// construction time and dispatches through this interface for the rest of
// its life — grounded on the teacher's pkg/synchronization
// ProtocolHandlers/Endpoint dispatch shape (pick an implementation once,
// route everything else through a small interface), adapted here to a
// compile-time-enumerable choice between exactly two drivers rather than
// a registry of named protocols.
type Driver interface {
	// Start performs one-shot setup: for local drivers, creating the
	// worker pool (traversal happens in Run); for remote drivers, dialing
	// the daemon socket and sending the initial SCAN frame.
	Start(ctx context.Context) (Status, error)
	// Run drives the scan to completion (local) or one frame further
	// (remote).
	Run(ctx context.Context) (Status, error)
	// PollFD returns a descriptor suitable for an external event loop, or
	// fails with ErrNotPollable.
	PollFD() (int, error)
	// Free releases all driver resources: pool drain in local threaded
	// mode, socket closure in remote mode.
	Free()
}
