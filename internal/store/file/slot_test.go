package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MrSnakeDoc/songjournal/internal/store"
)

func TestSlotReadMissing(t *testing.T) {
	s := NewSlot(filepath.Join(t.TempDir(), "journal.json"))

	_, err := s.Read(context.Background())
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Read() error = %v, want store.ErrNotFound", err)
	}
}

func TestSlotWriteRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "journal.json")
	s := NewSlot(path)
	ctx := context.Background()

	if err := s.Write(ctx, []byte(`[{"id":1}]`)); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := s.Write(ctx, []byte(`[]`)); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := s.Read(ctx)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("Read() = %s, want []", data)
	}

	// no temp files left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("directory holds %d files, want only the journal", len(entries))
	}
}

func TestSlotWriteCancelled(t *testing.T) {
	s := NewSlot(filepath.Join(t.TempDir(), "journal.json"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.Write(ctx, []byte("[]")); err == nil {
		t.Error("Write() with cancelled context should fail")
	}
}

func TestSlotDescribe(t *testing.T) {
	s := NewSlot("/tmp/j.json")
	if got := s.Describe(); got != "file:/tmp/j.json" {
		t.Errorf("Describe() = %q", got)
	}
}
