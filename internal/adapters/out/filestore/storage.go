package filestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

const storeFileMode = 0o644

// DiskStorage reads store documents from disk and replaces them atomically.
// A write goes to a temporary file in the same directory which is then renamed over
// the target, so a crash leaves either the old or the new document, never a mix.
type DiskStorage struct {
	logger *log.Logger
}

// NewDiskStorage creates a DiskStorage that reports writes to logger.
func NewDiskStorage(logger *log.Logger) *DiskStorage {
	return &DiskStorage{logger: logger}
}

// ReadFile returns the document at path. A missing file yields an error matching fs.ErrNotExist.
func (s *DiskStorage) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

// WriteFile atomically replaces the document at path.
func (s *DiskStorage) WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tag := uuid.NewString()
	tmp, err := stageFile(path, data, tag)
	if err != nil {
		return err
	}
	if err = os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	s.logger.Debugj(log.JSON{"event": "store_written", "path": path, "bytes": len(data), "write": tag})
	return nil
}

// stageFile writes data to a fresh temporary file next to path and returns its name.
func stageFile(path string, data []byte, tag string) (string, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), tag))
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, storeFileMode)
	if err != nil {
		return "", err
	}

	if _, err = f.Write(data); err == nil {
		err = f.Sync()
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tmp)
		return "", err
	}

	return tmp, nil
}
