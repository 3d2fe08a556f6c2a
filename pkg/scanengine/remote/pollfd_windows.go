//go:build windows

package remote

import (
	"net"

	"github.com/arvoscan/arvo/pkg/scanengine"
)

// pollFD always fails on Windows: named pipe connections do not expose a
// poll-able descriptor, a platform caveat documented in §4.1 rather than
// a spec deviation (spec.md's poll_fd contract is itself POSIX-flavored).
func pollFD(_ net.Conn) (int, error) {
	return -1, scanengine.ErrNotPollable
}
