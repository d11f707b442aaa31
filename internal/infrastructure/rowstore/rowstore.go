// Package rowstore holds backend-independent helpers around output.RowStore.
package rowstore

import (
	"context"
	"fmt"
	"time"

	"slotbot/internal/domain/entities"
	"slotbot/internal/ports/output"
)

var _ output.RowStore = (*timeoutStore)(nil)

type timeoutStore struct {
	next    output.RowStore
	timeout time.Duration
}

// WithTimeout bounds every call to next by d. A zero d returns next as is.
func WithTimeout(next output.RowStore, d time.Duration) output.RowStore {
	if d <= 0 {
		return next
	}
	return &timeoutStore{next: next, timeout: d}
}

func (s *timeoutStore) ReadAll(ctx context.Context) ([][]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.next.ReadAll(ctx)
}

func (s *timeoutStore) Append(ctx context.Context, row []string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.next.Append(ctx, row)
}

func (s *timeoutStore) UpdateField(ctx context.Context, rowIndex, fieldIndex int, value string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.next.UpdateField(ctx, rowIndex, fieldIndex, value)
}

func (s *timeoutStore) ReplaceAll(ctx context.Context, rows [][]string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.next.ReplaceAll(ctx, rows)
}

// EnsureHeader writes the ledger header into an empty table.
// It reports whether the header was written.
func EnsureHeader(ctx context.Context, store output.RowStore) (bool, error) {
	rows, err := store.ReadAll(ctx)
	if err != nil {
		return false, fmt.Errorf("read table: %w", err)
	}
	if len(rows) > 0 {
		return false, nil
	}
	if err := store.Append(ctx, entities.Header); err != nil {
		return false, fmt.Errorf("write header: %w", err)
	}
	return true, nil
}
