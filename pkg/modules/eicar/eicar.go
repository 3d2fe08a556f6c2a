// Package eicar implements a builtin module that detects the EICAR
// antivirus test file, the industry-standard benign string used to
// exercise detection pipelines without a real malware sample. The
// signature literal is grounded on
// _examples/other_examples/aa2e1853_torbencarstensbit-go-clamd__clamd.go.go's
// EICAR constant.
package eicar

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/arvoscan/arvo/pkg/module"
	"github.com/arvoscan/arvo/pkg/verdict"
)

// signature is the standard EICAR test string.
var signature = []byte(`X5O!P%@AP[4\PZX54(P^)7CC)7}$EICAR-STANDARD-ANTIVIRUS-TEST-FILE!$H+H*`)

// maxScanSize bounds how much of a file is read looking for the
// signature; the EICAR file is always tiny (under 128 bytes), so a large
// file containing it at an arbitrary offset past this bound is outside
// this reference module's scope.
const maxScanSize = 4096

// Module flags files containing the EICAR test string as Malware.
type Module struct{}

// New constructs the eicar module.
func New() *Module {
	return &Module{}
}

// Name implements module.Module.
func (m *Module) Name() string {
	return "eicar"
}

// Status implements module.Module.
func (m *Module) Status() module.Status {
	return module.StatusOK
}

// Scan implements module.Module.
func (m *Module) Scan(path string, _ string) (verdict.Verdict, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return verdict.Undecided, "", fmt.Errorf("unable to open file: %w", err)
	}
	defer f.Close()

	buffer := make([]byte, maxScanSize)
	n, err := f.Read(buffer)
	if err != nil && n == 0 {
		// An empty file is simply clean; any other read error is a
		// module-level failure distinct from "file doesn't contain the
		// signature."
		if errors.Is(err, io.EOF) {
			return verdict.Clean, "", nil
		}
		return verdict.Undecided, "", fmt.Errorf("unable to read file: %w", err)
	}

	if bytes.Contains(buffer[:n], signature) {
		return verdict.Malware, "EICAR test signature detected", nil
	}

	return verdict.Clean, "", nil
}
