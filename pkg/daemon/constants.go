package daemon

import "time"

const (
	// MaximumIPCMessageSize specifies the maximum message size that we'll allow
	// over IPC channels.
	MaximumIPCMessageSize = 25 * 1024 * 1024

	// RecommendedDialTimeout is the recommended timeout to use when dialing
	// the daemon IPC endpoint.
	RecommendedDialTimeout = 5 * time.Second
)
