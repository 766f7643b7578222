// Package store holds what every durable slot backend shares.
package store

import "errors"

// DefaultSlotKey is the name of the slot holding the serialized journal.
const DefaultSlotKey = "songJournal.entries"

// ErrNotFound is returned by a slot that has never been written.
var ErrNotFound = errors.New("slot is empty")
