package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// table is a concurrency-safe map of entity values keyed by ID.
// Rows are stored and returned by value so callers never share state with the table.
type table[T any] struct {
	mu   sync.RWMutex
	rows map[uuid.UUID]T
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[uuid.UUID]T)}
}

func (t *table[T]) get(ctx context.Context, id uuid.UUID) (T, bool, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, false, err
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	return row, ok, nil
}

// list returns a snapshot of all rows sorted with cmp.
func (t *table[T]) list(ctx context.Context, cmp func(a, b T) int) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t.mu.RLock()
	rows := lo.Values(t.rows)
	t.mu.RUnlock()

	slices.SortStableFunc(rows, cmp)
	return rows, nil
}

func (t *table[T]) put(ctx context.Context, id uuid.UUID, row T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.rows[id] = row
	return nil
}

// remove deletes id and reports whether it existed.
func (t *table[T]) remove(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return false, nil
	}
	delete(t.rows, id)
	return true, nil
}

func (t *table[T]) len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}
