package daemon

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/arvoscan/arvo/pkg/filesystem"
)

const (
	// lockName is the name of the daemon lock. It resides within the daemon
	// subdirectory of the Arvo directory.
	lockName = "daemon.lock"
	// logName is the name of the daemon log file. It resides within the
	// daemon subdirectory of the Arvo directory.
	logName = "daemon.log"
	// endpointPrefix is the prefix used for the daemon's scan endpoint, per
	// the "<socket-dir>/scan-<user>" convention.
	endpointPrefix = "scan-"
)

// subpath computes a subpath of the daemon subdirectory, creating the daemon
// subdirectory in the process.
func subpath(name string) (string, error) {
	// Compute the daemon root directory path and ensure it exists.
	daemonRoot, err := filesystem.Arvo(true, filesystem.ArvoDaemonDirectoryName)
	if err != nil {
		return "", fmt.Errorf("unable to compute daemon directory: %w", err)
	}

	// Compute the combined path.
	return filepath.Join(daemonRoot, name), nil
}

// lockPath computes the path to the daemon lock, creating any intermediate
// directories as necessary.
func lockPath() (string, error) {
	return subpath(lockName)
}

// logPath computes the path to the daemon log file, creating any
// intermediate directories as necessary.
func logPath() (string, error) {
	return subpath(logName)
}

// currentUserName returns the name of the current user, preferring the USER
// environment variable (matching the original C implementation, which reads
// getenv("USER") unconditionally) and falling back to os/user.Current for
// platforms where USER is unset, such as Windows.
func currentUserName() (string, error) {
	if name := os.Getenv("USER"); name != "" {
		return name, nil
	}
	u, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("unable to determine current user: %w", err)
	}
	return u.Username, nil
}

// EndpointPath computes the path to the daemon's scan endpoint, creating any
// intermediate directories as necessary. It follows the
// "<socket-dir>/scan-<user>" naming convention.
func EndpointPath() (string, error) {
	userName, err := currentUserName()
	if err != nil {
		return "", err
	}
	return subpath(endpointPrefix + userName)
}
