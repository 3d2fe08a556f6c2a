package scanengine

import "errors"

// ErrNotPollable is returned by a local driver's PollFD: local mode has no
// socket descriptor to expose, and callers must integrate via blocking
// Run calls instead.
var ErrNotPollable = errors.New("scan driver does not expose a pollable descriptor in this mode")

// ErrPathInvalid is returned when a scan's root path cannot be
// canonicalized (does not exist, or cannot be resolved).
var ErrPathInvalid = errors.New("scan path is invalid or does not exist")
