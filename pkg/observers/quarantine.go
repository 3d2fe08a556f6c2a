package observers

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arvoscan/arvo/pkg/encoding"
	"github.com/arvoscan/arvo/pkg/filesystem"
	"github.com/arvoscan/arvo/pkg/logging"
	"github.com/arvoscan/arvo/pkg/random"
	"github.com/arvoscan/arvo/pkg/report"
)

// suffixLength is the number of random bytes appended to a quarantined
// file's name, to avoid collisions between files that share a base name
// from different source directories.
const suffixLength = 8

// Quarantine relocates any file whose report carries the QUARANTINE action
// into the Arvo quarantine directory, renaming it to avoid collisions.
// Relocation failures are logged rather than returned, since an observer
// has no way to surface an error to the scan that produced the report.
func Quarantine(logger *logging.Logger) func(*report.Report) {
	return func(r *report.Report) {
		if !r.Action.Has(report.ActionQuarantine) {
			return
		}

		destination, err := quarantinePath(r.Path)
		if err != nil {
			logger.Error(fmt.Errorf("unable to compute quarantine path for %s: %w", r.Path, err))
			return
		}

		if err := os.Rename(r.Path, destination); err != nil {
			logger.Error(fmt.Errorf("unable to quarantine %s: %w", r.Path, err))
			return
		}

		logger.Printf("quarantined %s -> %s", r.Path, destination)
	}
}

func quarantinePath(source string) (string, error) {
	directory, err := filesystem.Arvo(true, filesystem.ArvoQuarantineDirectoryName)
	if err != nil {
		return "", err
	}

	suffix, err := random.New(suffixLength)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s.%s", filepath.Base(source), encoding.EncodeBase62(suffix))
	return filepath.Join(directory, name), nil
}
