// Package store persists whole collections as JSON documents in named slots.
// A slot is read and written wholesale; there are no partial updates and no
// transactions spanning several slots.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/wealthpath/finance-tracker/internal/logger"
)

// Slot names, one per top-level collection.
const (
	KeyDebts      = "debts"
	KeyFixedBills = "fixedBills"
	KeyIncomes    = "incomes"
	KeyProjects   = "projects"
)

var ErrNotFound = errors.New("slot not found")

// Store is a flat key-value namespace of slots.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get returns the raw slot content, or ErrNotFound when the slot was never written.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set overwrites the slot.
	Set(ctx context.Context, key string, value []byte) error
}

// Load returns the decoded slot, or def when the slot is absent, unreadable
// or fails to parse. Failures are logged, never returned.
func Load[T any](ctx context.Context, s Store, key string, def T) T {
	v, err := Read(ctx, s, key, def)
	if err != nil {
		logger.FromContext(ctx).Warn("reading slot failed, using default",
			"key", key,
			"error", err,
		)
		return def
	}
	return v
}

// Read is Load for writers: an absent or unparsable slot still yields def,
// but a failing backend is reported so a read-modify-write cycle does not
// overwrite data it could not see.
func Read[T any](ctx context.Context, s Store, key string, def T) (T, error) {
	data, err := s.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return def, nil
	}
	if err != nil {
		return def, fmt.Errorf("reading slot %s: %w", key, err)
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		logger.FromContext(ctx).Warn("slot content is not valid, using default",
			"key", key,
			"error", err,
		)
		return def, nil
	}
	return v, nil
}

// Save encodes v and overwrites the slot.
func Save[T any](ctx context.Context, s Store, key string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding slot %s: %w", key, err)
	}
	if err := s.Set(ctx, key, data); err != nil {
		return fmt.Errorf("writing slot %s: %w", key, err)
	}
	return nil
}
