package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/wealthpath/finance-tracker/internal/store"
)

// collection is a typed view over one store slot. Every mutation reads the
// whole slot, changes it and writes it back while holding mu, so concurrent
// writers through the same collection never lose each other's updates.
type collection[T any] struct {
	store    store.Store
	key      string
	notFound error
	id       func(*T) *string
	mu       sync.Mutex
}

func newCollection[T any](s store.Store, key string, notFound error, id func(*T) *string) *collection[T] {
	return &collection[T]{store: s, key: key, notFound: notFound, id: id}
}

// List returns every record; an unreadable slot reads as empty.
func (c *collection[T]) List(ctx context.Context) ([]T, error) {
	items := store.Load(ctx, c.store, c.key, []T{})
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// ReadAll is List for callers that must not mistake a failing backend for an
// empty collection. Unparsable content still reads as empty.
func (c *collection[T]) ReadAll(ctx context.Context) ([]T, error) {
	return c.read(ctx)
}

func (c *collection[T]) GetByID(ctx context.Context, id string) (*T, error) {
	items, _ := c.List(ctx)
	if i := c.indexOf(items, id); i >= 0 {
		return &items[i], nil
	}
	return nil, c.notFound
}

// Create appends item, assigning a new id when it has none.
func (c *collection[T]) Create(ctx context.Context, item *T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.read(ctx)
	if err != nil {
		return err
	}

	if id := c.id(item); *id == "" {
		*id = uuid.NewString()
	}
	return c.write(ctx, append(items, *item))
}

// Update replaces the record with the same id.
func (c *collection[T]) Update(ctx context.Context, item *T) error {
	_, err := c.Modify(ctx, *c.id(item), func(existing *T) error {
		*existing = *item
		return nil
	})
	return err
}

// Modify applies fn to the record with the given id and saves the result.
// Nothing is written when fn fails.
func (c *collection[T]) Modify(ctx context.Context, id string, fn func(*T) error) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.read(ctx)
	if err != nil {
		return nil, err
	}

	i := c.indexOf(items, id)
	if i < 0 {
		return nil, c.notFound
	}
	if err := fn(&items[i]); err != nil {
		return nil, err
	}
	// fn may not change the id.
	*c.id(&items[i]) = id

	if err := c.write(ctx, items); err != nil {
		return nil, err
	}
	updated := items[i]
	return &updated, nil
}

// ModifyAll lets fn change records in place and writes them back when fn
// reports at least one change. It returns fn's count.
func (c *collection[T]) ModifyAll(ctx context.Context, fn func([]T) int) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.read(ctx)
	if err != nil {
		return 0, err
	}

	changed := fn(items)
	if changed == 0 {
		return 0, nil
	}
	if err := c.write(ctx, items); err != nil {
		return 0, err
	}
	return changed, nil
}

func (c *collection[T]) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.read(ctx)
	if err != nil {
		return err
	}

	i := c.indexOf(items, id)
	if i < 0 {
		return c.notFound
	}
	return c.write(ctx, append(items[:i], items[i+1:]...))
}

// ReplaceAll overwrites the whole collection.
func (c *collection[T]) ReplaceAll(ctx context.Context, items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if items == nil {
		items = []T{}
	}
	return c.write(ctx, items)
}

func (c *collection[T]) read(ctx context.Context) ([]T, error) {
	items, err := store.Read(ctx, c.store, c.key, []T{})
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", c.key, err)
	}
	return items, nil
}

func (c *collection[T]) write(ctx context.Context, items []T) error {
	return store.Save(ctx, c.store, c.key, items)
}

func (c *collection[T]) indexOf(items []T, id string) int {
	for i := range items {
		if *c.id(&items[i]) == id {
			return i
		}
	}
	return -1
}
