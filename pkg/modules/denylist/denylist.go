// Package denylist implements a builtin module that flags files whose
// SHA-256 content hash appears in a static set of known-bad hashes.
package denylist

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/arvoscan/arvo/pkg/module"
	"github.com/arvoscan/arvo/pkg/stream"
	"github.com/arvoscan/arvo/pkg/verdict"
)

// Module flags files matching a hash in its denylist as Malware.
type Module struct {
	name   string
	hashes map[string]bool
}

// New constructs a denylist module named name from a set of lowercase
// hex-encoded SHA-256 hashes.
func New(name string, hashes []string) *Module {
	set := make(map[string]bool, len(hashes))
	for _, h := range hashes {
		set[h] = true
	}
	return &Module{name: name, hashes: set}
}

// Name implements module.Module.
func (m *Module) Name() string {
	return m.name
}

// Status implements module.Module.
func (m *Module) Status() module.Status {
	if m.hashes == nil {
		return module.StatusUnavailable
	}
	return module.StatusOK
}

// Scan implements module.Module.
func (m *Module) Scan(path string, _ string) (verdict.Verdict, string, error) {
	hash, err := hashFile(path)
	if err != nil {
		return verdict.Undecided, "", fmt.Errorf("unable to hash file: %w", err)
	}
	if m.hashes[hash] {
		return verdict.Malware, fmt.Sprintf("sha256 %s matched denylist", hash), nil
	}
	return verdict.Clean, "", nil
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	hasher := sha256.New()
	sink := stream.NewHashedWriter(io.Discard, hasher)
	if _, err := io.Copy(sink, f); err != nil {
		return "", err
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}
