// Package remote implements the client-side scan driver: it connects to
// the daemon's scan socket, sends one SCAN frame, and decodes the
// streamed SCAN_FILE/SCAN_END response, per component design §4.6. The
// socket is dialed via pkg/daemon (teacher's pkg/ipc dialing approach:
// Unix domain socket on POSIX, named pipe via go-winio on Windows),
// addressed by the "<socket-dir>/scan-<user>" convention.
package remote

import (
	"bufio"
	"context"
	"net"
	"time"

	"github.com/arvoscan/arvo/pkg/arvo"
	"github.com/arvoscan/arvo/pkg/daemon"
	"github.com/arvoscan/arvo/pkg/logging"
	"github.com/arvoscan/arvo/pkg/protocol"
	"github.com/arvoscan/arvo/pkg/scanengine"
	"github.com/arvoscan/arvo/pkg/scanengine/observer"
	"github.com/arvoscan/arvo/pkg/timeutil"
)

// connectAttempts and connectBackoff implement the "bounded retry (e.g.
// 10 attempts with short backoff)" behavior from §4.1.
const (
	connectAttempts = 10
	connectBackoff  = 100 * time.Millisecond
)

// Driver implements scanengine.Driver for socket-client scans.
type Driver struct {
	root      string
	observers *observer.List
	logger    *logging.Logger

	conn   net.Conn
	reader *bufio.Reader
	done   bool
}

// New constructs a remote driver for the given scan root. The daemon
// socket path is computed internally via daemon.EndpointPath, following
// the "<socket-dir>/scan-<user>" convention.
func New(root string, observers *observer.List, logger *logging.Logger) *Driver {
	return &Driver{root: root, observers: observers, logger: logger}
}

// Start dials the daemon socket with a bounded retry and sends the
// initial SCAN frame. It returns CannotConnect (never IERROR, per the
// resolved Open Question (b)) if every attempt fails.
func (d *Driver) Start(ctx context.Context) (scanengine.Status, error) {
	conn, err := d.dialWithRetry(ctx)
	if err != nil {
		if d.logger != nil {
			d.logger.Error(err)
		}
		return scanengine.CannotConnect, err
	}
	if err := arvo.SendVersion(conn); err != nil {
		conn.Close()
		return scanengine.CannotConnect, err
	}

	d.conn = conn
	d.reader = bufio.NewReader(conn)

	frame := protocol.NewFrame(protocol.VerbScan).Set(protocol.HeaderPath, d.root)
	if err := frame.WriteTo(conn); err != nil {
		conn.Close()
		d.conn = nil
		return scanengine.CannotConnect, err
	}

	return scanengine.OK, nil
}

func (d *Driver) dialWithRetry(ctx context.Context) (net.Conn, error) {
	var lastErr error
	timer := time.NewTimer(connectBackoff)
	defer timer.Stop()

	for attempt := 0; attempt < connectAttempts; attempt++ {
		conn, err := daemon.DialTimeout(daemon.RecommendedDialTimeout)
		if err == nil {
			return conn, nil
		}
		lastErr = err

		timeutil.StopAndDrainTimer(timer)
		timer.Reset(connectBackoff)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	return nil, lastErr
}

// Run performs one receive step: reading and decoding a single frame. It
// returns Continue while SCAN_FILE frames are still expected, Completed
// once SCAN_END is seen or the stream closes.
func (d *Driver) Run(_ context.Context) (scanengine.Status, error) {
	if d.done || d.reader == nil {
		return scanengine.Completed, nil
	}

	frame, err := protocol.ReadFrame(d.reader)
	if err != nil {
		d.done = true
		return scanengine.Completed, nil
	}

	switch frame.Verb {
	case protocol.VerbScanFile:
		d.observers.Notify(protocol.DecodeReport(frame))
		return scanengine.Continue, nil
	case protocol.VerbScanEnd:
		d.done = true
		return scanengine.Completed, nil
	default:
		// An unrecognized verb is ignored rather than aborting the
		// stream, consistent with the ProtocolDecodeError policy of
		// never letting a malformed frame abort the scan.
		return scanengine.Continue, nil
	}
}

// PollFD returns the underlying connection's file descriptor for
// embedding in an external event loop, where the platform supports it.
// Named pipes on Windows, and any connection type that doesn't expose a
// raw descriptor, are simply not pollable; this is a documented platform
// caveat (§4.1), not a spec deviation — see pollfd_posix.go/pollfd_windows.go.
func (d *Driver) PollFD() (int, error) {
	if d.conn == nil {
		return -1, scanengine.ErrNotPollable
	}
	return pollFD(d.conn)
}

// Free closes the socket connection, if open.
func (d *Driver) Free() {
	if d.conn != nil {
		d.conn.Close()
		d.conn = nil
	}
}
