package fileio

import (
	"fmt"
	"os"
	"path/filepath"
)

// AtomicWriter writes to a temporary file next to the target and renames it
// into place on Commit, so readers see either the old or the new content.
type AtomicWriter struct {
	targetPath string
	perm       os.FileMode
	tempFile   *os.File
}

// NewAtomicWriter creates a new atomic writer for path. The temp file lives in
// the same directory so the final rename does not cross filesystems.
func NewAtomicWriter(path string, perm os.FileMode) (*AtomicWriter, error) {
	tempFile, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}

	return &AtomicWriter{
		targetPath: path,
		perm:       perm,
		tempFile:   tempFile,
	}, nil
}

// Write writes data to the temporary file
func (aw *AtomicWriter) Write(p []byte) (n int, err error) {
	return aw.tempFile.Write(p)
}

// Commit commits the write by renaming temp file to target
func (aw *AtomicWriter) Commit() error {
	if err := aw.tempFile.Chmod(aw.perm); err != nil {
		aw.Abort()
		return fmt.Errorf("failed to set temp file mode: %w", err)
	}

	if err := aw.tempFile.Sync(); err != nil {
		aw.Abort()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := aw.tempFile.Close(); err != nil {
		os.Remove(aw.tempFile.Name())
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(aw.tempFile.Name(), aw.targetPath); err != nil {
		os.Remove(aw.tempFile.Name())
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

// Abort aborts the write and removes temp file
func (aw *AtomicWriter) Abort() error {
	aw.tempFile.Close()
	return os.Remove(aw.tempFile.Name())
}

// WriteFile replaces the content of path atomically.
func WriteFile(path string, data []byte, perm os.FileMode) error {
	aw, err := NewAtomicWriter(path, perm)
	if err != nil {
		return err
	}

	if _, err := aw.Write(data); err != nil {
		aw.Abort()
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	return aw.Commit()
}
