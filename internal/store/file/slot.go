package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MrSnakeDoc/songjournal/internal/store"
	"github.com/MrSnakeDoc/songjournal/internal/utils"
)

// Slot persists the journal payload in a single file on disk.
type Slot struct {
	path string
}

// NewSlot creates a file slot. The parent directory is created on first write.
func NewSlot(path string) *Slot {
	return &Slot{path: path}
}

// Path returns the backing file path.
func (s *Slot) Path() string { return s.path }

// Read returns the file content, or store.ErrNotFound if it does not exist.
func (s *Slot) Read(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read journal file: %w", err)
	}
	return data, nil
}

// Write replaces the file content atomically (temp file + rename).
func (s *Slot) Write(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create journal directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName) // no-op after a successful rename
	}()

	if _, err := tmp.Write(data); err != nil {
		utils.Close(tmp)
		return fmt.Errorf("failed to write journal file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		utils.Close(tmp)
		return fmt.Errorf("failed to sync journal file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close journal file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace journal file: %w", err)
	}
	return nil
}

// Describe names the backend for status endpoints.
func (s *Slot) Describe() string { return "file:" + s.path }
