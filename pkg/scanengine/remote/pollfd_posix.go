//go:build !windows

package remote

import (
	"net"
	"syscall"

	"github.com/arvoscan/arvo/pkg/scanengine"
)

// pollFD extracts the raw file descriptor from a Unix domain socket
// connection for embedding in an external event loop, per §4.1.
func pollFD(conn net.Conn) (int, error) {
	syscallConn, ok := conn.(syscall.Conn)
	if !ok {
		return -1, scanengine.ErrNotPollable
	}

	raw, err := syscallConn.SyscallConn()
	if err != nil {
		return -1, err
	}

	var fd int
	controlErr := raw.Control(func(descriptor uintptr) {
		fd = int(descriptor)
	})
	if controlErr != nil {
		return -1, controlErr
	}

	return fd, nil
}
