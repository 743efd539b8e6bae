// Package jsonstore persists the product catalog as a JSON array in a flat
// file, fronted by an in-memory cache that hydrates lazily on first read.
package jsonstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// FileOperationError wraps a filesystem failure with the operation and path
// that caused it.
type FileOperationError struct {
	Op    string
	Path  string
	Cause error
}

func (e *FileOperationError) Error() string {
	return fmt.Sprintf("file %s %s: %v", e.Op, e.Path, e.Cause)
}

func (e *FileOperationError) Unwrap() error {
	return e.Cause
}

func newFileOperationError(op, path string, cause error) *FileOperationError {
	return &FileOperationError{Op: op, Path: path, Cause: cause}
}

// FileStore reads and writes JSON array files under a base directory.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) path(filename string) string {
	return filepath.Join(s.dir, filename)
}

// Read returns the raw elements of the JSON array stored in filename. A
// missing file, a blank file, or a file whose top-level value is not an
// array all read as an empty collection. Malformed JSON is an error.
func (s *FileStore) Read(ctx context.Context, filename string) ([]json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := s.path(filename)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, newFileOperationError("read", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		// a valid JSON document of another shape is treated as empty,
		// only a parse failure is fatal
		if json.Valid(data) {
			return nil, nil
		}
		return nil, newFileOperationError("parse", path, err)
	}
	return records, nil
}

// Write replaces the file contents with records marshaled as an indented
// JSON array, creating the base directory when needed.
func (s *FileStore) Write(ctx context.Context, filename string, records any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return newFileOperationError("mkdir", s.dir, err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return newFileOperationError("marshal", s.path(filename), err)
	}

	path := s.path(filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return newFileOperationError("write", path, err)
	}
	return nil
}

// Backup copies the current file to <filename>.backup.<epoch-millis>. A
// missing source file is a no-op.
func (s *FileStore) Backup(ctx context.Context, filename string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := s.path(filename)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return newFileOperationError("read", path, err)
	}

	backupPath := fmt.Sprintf("%s.backup.%d", path, time.Now().UnixMilli())
	if err := os.WriteFile(backupPath, data, 0o644); err != nil {
		return newFileOperationError("write", backupPath, err)
	}
	return nil
}
