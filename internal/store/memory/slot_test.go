package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/MrSnakeDoc/songjournal/internal/store"
)

func TestSlot(t *testing.T) {
	s := NewSlot()
	ctx := context.Background()

	if _, err := s.Read(ctx); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("Read() on new slot error = %v, want store.ErrNotFound", err)
	}

	payload := []byte("[]")
	if err := s.Write(ctx, payload); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	payload[0] = 'x'

	data, err := s.Read(ctx)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("Read() = %s, slot must copy what it stores", data)
	}

	s.FailWrites(true)
	if err := s.Write(ctx, []byte("{}")); !errors.Is(err, ErrWriteFailed) {
		t.Errorf("Write() error = %v, want ErrWriteFailed", err)
	}
	if s.Writes() != 1 {
		t.Errorf("Writes() = %d, want 1", s.Writes())
	}
}
