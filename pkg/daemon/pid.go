package daemon

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// pidName is the name of the daemon PID file, written by the running daemon
// process and consulted by "arvo daemon stop" to locate it. It resides
// alongside the daemon lock.
const pidName = "daemon.pid"

// WritePID records the current process' PID to the daemon PID file.
func WritePID() error {
	path, err := subpath(pidName)
	if err != nil {
		return fmt.Errorf("unable to compute daemon PID path: %w", err)
	}
	contents := strconv.Itoa(os.Getpid())
	return os.WriteFile(path, []byte(contents), 0600)
}

// ReadPID reads the PID recorded by a running daemon, returning an error if
// no PID file exists.
func ReadPID() (int, error) {
	path, err := subpath(pidName)
	if err != nil {
		return 0, fmt.Errorf("unable to compute daemon PID path: %w", err)
	}
	contents, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(contents)))
}

// RemovePID removes the daemon PID file. It is not an error for the file to
// already be absent.
func RemovePID() error {
	path, err := subpath(pidName)
	if err != nil {
		return fmt.Errorf("unable to compute daemon PID path: %w", err)
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
