// Package walker adapts the generic directory traversal in
// pkg/filesystem (grounded on the teacher's walk.go, a filepath.Walk-
// compatible implementation) into the three-case policy a scan driver
// needs: regular files become scan jobs, traversal errors become IERROR
// reports, everything else (directories, symlinks, devices) is ignored.
package walker

import (
	"os"
	"path/filepath"

	"github.com/arvoscan/arvo/pkg/filesystem"
)

// Walk traverses root according to the three-case policy described above.
// recurse controls descent only: a regular-file root is always enqueued
// directly, and a directory root is always walked, but when recurse is
// false only the directory's immediate entries are considered rather than
// its full subtree.
//
// onRegular is invoked once per regular file discovered, in traversal
// order (unspecified beyond that, per the underlying walker). onError is
// invoked once per entry that could not be stat'd or listed.
func Walk(root string, recurse bool, onRegular func(path string), onError func(path string, err error)) error {
	info, err := os.Lstat(root)
	if err != nil {
		onError(root, err)
		return nil
	}

	if !info.IsDir() {
		onRegular(root)
		return nil
	}

	if !recurse {
		return walkImmediate(root, onRegular, onError)
	}

	return filesystem.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			onError(path, err)
			return nil
		}
		if info == nil {
			onError(path, os.ErrInvalid)
			return nil
		}
		if info.Mode().IsRegular() {
			onRegular(path)
		}
		return nil
	})
}

// walkImmediate lists root's immediate entries (no descent into
// subdirectories) and invokes onRegular/onError for each, per the
// non-recursive case of Walk.
func walkImmediate(root string, onRegular func(path string), onError func(path string, err error)) error {
	entries, err := os.ReadDir(root)
	if err != nil {
		onError(root, err)
		return nil
	}

	for _, entry := range entries {
		path := filepath.Join(root, entry.Name())

		info, err := entry.Info()
		if err != nil {
			onError(path, err)
			continue
		}
		if info.Mode().IsRegular() {
			onRegular(path)
		}
	}

	return nil
}

// IsNotExist reports whether err indicates a missing path, for callers
// distinguishing PathInvalid at scan construction from a mid-walk
// TraversalError.
func IsNotExist(err error) bool {
	return os.IsNotExist(err) || err == filepath.SkipDir
}
