package files

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"briefly-ai/internal/contextutil"
)

// ErrTooLarge is returned when an upload exceeds the configured size limit.
var ErrTooLarge = errors.New("file exceeds maximum allowed size")

// Store saves uploads under a temporary directory with collision-free names.
type Store struct {
	dir      string
	maxBytes int64
}

// NewStore creates a file store rooted at dir. Uploads larger than maxBytes
// are rejected.
func NewStore(dir string, maxBytes int64) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Store{dir: dir, maxBytes: maxBytes}, nil
}

// Save writes the upload to a uniquely named file, preserving the original
// extension, and returns the path. The write is aborted and the partial file
// removed if the content exceeds the size limit.
func (s *Store) Save(ctx context.Context, r io.Reader, originalName string) (string, error) {
	logger := contextutil.LoggerFromContext(ctx)

	ext := strings.ToLower(filepath.Ext(originalName))
	path := filepath.Join(s.dir, uuid.New().String()+ext)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %w", err)
	}

	written, err := io.Copy(f, io.LimitReader(r, s.maxBytes+1))
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to save uploaded file: %w", err)
	}
	if written > s.maxBytes {
		_ = os.Remove(path)
		return "", fmt.Errorf("%w: limit is %d bytes", ErrTooLarge, s.maxBytes)
	}

	logger.Info("saved upload", "original_name", originalName, "path", path, "size_bytes", written)
	return path, nil
}

// Delete removes a saved file. A missing file is not an error.
func (s *Store) Delete(ctx context.Context, path string) {
	logger := contextutil.LoggerFromContext(ctx)

	if err := os.Remove(path); err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("failed to delete temporary file", "path", path, "error", err)
		}
		return
	}
	logger.Debug("deleted temporary file", "path", path)
}

// CleanupOld deletes files in the store older than maxAge and returns the
// number removed. Intended to run periodically in the background.
func (s *Store) CleanupOld(ctx context.Context, maxAge time.Duration) int {
	logger := contextutil.LoggerFromContext(ctx)

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		logger.Error("failed to scan upload directory", "dir", s.dir, "error", err)
		return 0
	}

	cutoff := time.Now().Add(-maxAge)
	deleted := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			s.Delete(ctx, filepath.Join(s.dir, entry.Name()))
			deleted++
		}
	}

	if deleted > 0 {
		logger.Info("cleaned up old uploads", "count", deleted)
	}
	return deleted
}
