// Package daemonserver implements the reference daemon side of the scan
// wire protocol, shared by cmd/arvod (the standalone reference daemon
// binary) and cmd/arvo's "daemon run" subcommand so the two don't drift.
// It runs the local scan driver against each incoming SCAN request and
// re-streams its Reports as SCAN_FILE/SCAN_END frames, per §4.6's
// "contract-only" reference server — it implements no JSON/IPC management
// protocol, only the scan frame stream itself.
package daemonserver

import (
	"bufio"
	"context"
	"fmt"
	"net"

	"github.com/arvoscan/arvo/pkg/arvo"
	"github.com/arvoscan/arvo/pkg/logging"
	"github.com/arvoscan/arvo/pkg/protocol"
	"github.com/arvoscan/arvo/pkg/report"
	"github.com/arvoscan/arvo/pkg/scan"
)

// Serve accepts connections on listener until it is closed, handling each
// one synchronously in its own goroutine.
func Serve(listener net.Listener, engine *scan.Engine, logger *logging.Logger) error {
	for {
		conn, err := listener.Accept()
		if err != nil {
			return err
		}
		go handleConn(conn, engine, logger)
	}
}

func handleConn(conn net.Conn, engine *scan.Engine, logger *logging.Logger) {
	defer conn.Close()

	if matches, err := arvo.ReceiveAndCompareVersion(conn); err != nil {
		logger.Error(fmt.Errorf("unable to read client version: %w", err))
		return
	} else if !matches {
		logger.Error(fmt.Errorf("client protocol version mismatch"))
		return
	}

	frame, err := protocol.ReadFrame(bufio.NewReader(conn))
	if err != nil {
		logger.Error(err)
		return
	}
	if frame.Verb != protocol.VerbScan {
		logger.Error(fmt.Errorf("unexpected frame verb %q, expected %s", frame.Verb, protocol.VerbScan))
		return
	}

	path := frame.Get(protocol.HeaderPath)
	s, err := engine.NewScan(path, scan.Recurse|scan.Threaded)
	if err != nil {
		logger.Error(err)
		protocol.NewFrame(protocol.VerbScanEnd).WriteTo(conn)
		return
	}
	defer s.Free()

	s.AddObserver(func(r *report.Report) {
		protocol.EncodeReport(r).WriteTo(conn)
	})

	if _, err := s.Start(); err != nil {
		logger.Error(err)
	}
	if _, err := s.Run(context.Background()); err != nil {
		logger.Error(err)
	}

	protocol.NewFrame(protocol.VerbScanEnd).WriteTo(conn)
}
