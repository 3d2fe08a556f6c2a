// Command arvod is the reference daemon binary: it owns just enough
// wiring to drive pkg/scanengine's local driver behind the scan socket
// and re-stream its Reports as SCAN_FILE/SCAN_END frames. It is not the
// daemon-side JSON/IPC management protocol spec.md excludes — only the
// scan frame stream itself, per §4.6.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/arvoscan/arvo/cmd"
	"github.com/arvoscan/arvo/internal/daemonserver"
	"github.com/arvoscan/arvo/pkg/config"
	"github.com/arvoscan/arvo/pkg/daemon"
	"github.com/arvoscan/arvo/pkg/logging"
	"github.com/arvoscan/arvo/pkg/scan"
)

func run() error {
	logger := logging.RootLogger.Sublogger("arvod")

	lock, err := daemon.AcquireLock(logger)
	if err != nil {
		return err
	}
	defer lock.Release()

	logFile, err := daemon.OpenLog()
	if err != nil {
		return err
	}
	defer logFile.Close()
	log.SetOutput(io.MultiWriter(logFile, os.Stderr))

	cfg, err := config.Load(os.Getenv("ARVO_CONFIG"))
	if err != nil {
		return err
	}

	registry, err := cfg.BuildRegistry()
	if err != nil {
		return err
	}

	engine := scan.Open(false)
	engine.SetWorkerCount(cfg.WorkerCount)
	engine.SetRegistry(registry)

	listener, err := daemon.NewListener()
	if err != nil {
		return err
	}
	defer listener.Close()

	terminationSignals := make(chan os.Signal, 1)
	signal.Notify(terminationSignals, cmd.TerminationSignals...)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- daemonserver.Serve(listener, engine, logger)
	}()

	select {
	case s := <-terminationSignals:
		logger.Printf("received termination signal: %v", s)
		return nil
	case err := <-serverErrors:
		return fmt.Errorf("daemon server terminated abnormally: %w", err)
	}
}

func main() {
	if err := run(); err != nil {
		cmd.Fatal(err)
	}
}
