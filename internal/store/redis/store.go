package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/songjournal/internal/store"
)

// Store handles Redis operations for the journal slot and metadata cache
type Store struct {
	client  *redis.Client
	slotKey string
}

// NewStore creates a new Redis store. An empty slotKey uses store.DefaultSlotKey.
func NewStore(client *redis.Client, slotKey string) *Store {
	if slotKey == "" {
		slotKey = store.DefaultSlotKey
	}
	return &Store{
		client:  client,
		slotKey: slotKey,
	}
}

// SlotKey returns the key holding the serialized journal
func (s *Store) SlotKey() string {
	return s.slotKey
}

// Read returns the serialized journal, or store.ErrNotFound when the key is absent
func (s *Store) Read(ctx context.Context) ([]byte, error) {
	data, err := s.client.Get(ctx, s.slotKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read journal slot: %w", err)
	}
	return data, nil
}

// Write overwrites the serialized journal. The key never expires.
func (s *Store) Write(ctx context.Context, data []byte) error {
	if err := s.client.Set(ctx, s.slotKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write journal slot: %w", err)
	}
	return nil
}

// Describe names the backend for status endpoints
func (s *Store) Describe() string {
	return "redis:" + s.slotKey
}

// Ping checks the connection
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
