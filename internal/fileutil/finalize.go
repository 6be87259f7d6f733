// Package fileutil provides atomic file writes on an afero filesystem.
package fileutil

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// TempContext holds state for an atomic file write operation.
type TempContext struct {
	Fs      afero.Fs
	TmpFile afero.File
	TmpName string
	OutPath string

	closed bool
}

// NewTempContext creates a temp file next to outPath for atomic writing.
// Caller must defer CleanupOnError.
func NewTempContext(fsys afero.Fs, outPath string) (*TempContext, error) {
	tmpFile, err := afero.TempFile(fsys, filepath.Dir(outPath), ".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("creating temporary file: %w", err)
	}

	return &TempContext{
		Fs:      fsys,
		TmpFile: tmpFile,
		TmpName: tmpFile.Name(),
		OutPath: outPath,
	}, nil
}

// Write writes data to the temp file, then syncs and closes it.
func (tc *TempContext) Write(data []byte) error {
	if _, err := tc.TmpFile.Write(data); err != nil {
		return fmt.Errorf("writing temporary file: %w", err)
	}

	if err := tc.TmpFile.Sync(); err != nil {
		return fmt.Errorf("syncing temporary file: %w", err)
	}

	tc.closed = true

	if err := tc.TmpFile.Close(); err != nil {
		return fmt.Errorf("closing temporary file: %w", err)
	}

	return nil
}

// Commit renames the temp file to the output path and returns the output size.
func (tc *TempContext) Commit() (int64, error) {
	if !tc.closed {
		tc.closed = true

		if err := tc.TmpFile.Close(); err != nil {
			return 0, fmt.Errorf("closing temporary file: %w", err)
		}
	}

	if err := tc.Fs.Rename(tc.TmpName, tc.OutPath); err != nil {
		return 0, fmt.Errorf("renaming output file: %w", err)
	}

	outInfo, err := tc.Fs.Stat(tc.OutPath)
	if err != nil {
		return 0, fmt.Errorf("stat output %q: %w", tc.OutPath, err)
	}

	return outInfo.Size(), nil
}

// Discard closes and removes the temp file.
func (tc *TempContext) Discard() {
	if !tc.closed {
		tc.closed = true
		tc.TmpFile.Close() //nolint:errcheck,gosec // best-effort cleanup
	}

	tc.Fs.Remove(tc.TmpName) //nolint:errcheck,gosec // best-effort cleanup
}

// CleanupOnError discards the temp file if the write failed.
func (tc *TempContext) CleanupOnError(errp *error) {
	if *errp != nil {
		tc.Discard()
	}
}
