package filesystem

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const (
	// arvoConfigurationName is the name of the Arvo configuration file inside
	// the user's home directory.
	arvoConfigurationName = ".arvo.toml"

	// ArvoDataDirectoryName is the name of the Arvo data directory inside the
	// user's home directory.
	ArvoDataDirectoryName = ".arvo"

	// ArvoDaemonDirectoryName is the name of the daemon subdirectory within
	// the Arvo data directory. It holds the daemon's lock file and scan
	// socket (or named pipe endpoint record on Windows).
	ArvoDaemonDirectoryName = "daemon"

	// ArvoQuarantineDirectoryName is the name of the quarantine subdirectory
	// within the Arvo data directory, used by the builtin quarantine
	// observer to relocate files carrying a QUARANTINE action.
	ArvoQuarantineDirectoryName = "quarantine"
)

// HomeDirectory is the cached path to the current user's home directory.
var HomeDirectory string

// ArvoDataDirectoryPath is the path to the Arvo data directory. It can be
// overridden by init functions, but should not be changed afterward. It is
// used as the base path for Arvo data storage.
var ArvoDataDirectoryPath string

// ArvoConfigurationPath is the path to the global Arvo configuration file.
var ArvoConfigurationPath string

// init performs global initialization.
func init() {
	// Grab the current user's home directory.
	if h, err := os.UserHomeDir(); err != nil {
		panic(errors.Wrap(err, "unable to query user's home directory"))
	} else if h == "" {
		panic(errors.New("home directory path empty"))
	} else {
		HomeDirectory = h
	}

	// Compute the path to the Arvo data directory.
	ArvoDataDirectoryPath = filepath.Join(HomeDirectory, ArvoDataDirectoryName)

	// Compute the path to the configuration file.
	ArvoConfigurationPath = filepath.Join(HomeDirectory, arvoConfigurationName)
}

// Arvo computes (and optionally creates) subdirectories inside the Arvo data
// directory.
func Arvo(create bool, pathComponents ...string) (string, error) {
	// Compute the target path.
	result := filepath.Join(ArvoDataDirectoryPath, filepath.Join(pathComponents...))

	// If requested, attempt to create the Arvo directory and the specified
	// subpath. Also ensure that the Arvo data directory is hidden.
	if create {
		if err := os.MkdirAll(result, 0700); err != nil {
			return "", errors.Wrap(err, "unable to create subpath")
		} else if err := MarkHidden(ArvoDataDirectoryPath); err != nil {
			return "", errors.Wrap(err, "unable to hide Arvo data directory")
		}
	}

	// Success.
	return result, nil
}
