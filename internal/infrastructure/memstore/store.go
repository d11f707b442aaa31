// Package memstore is an in-memory row store. It backs local runs without
// external credentials and the service tests.
package memstore

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"slotbot/internal/ports/output"
)

var _ output.RowStore = (*Store)(nil)

// Store keeps rows in memory. The mutex only protects the slice itself;
// like the real backends it offers no multi-call atomicity.
type Store struct {
	mu   sync.Mutex
	rows [][]string
}

// New returns a store holding a copy of rows.
func New(rows ...[]string) *Store {
	return &Store{rows: cloneRows(rows)}
}

func (s *Store) ReadAll(ctx context.Context) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneRows(s.rows), nil
}

func (s *Store) Append(ctx context.Context, row []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, slices.Clone(row))
	return nil
}

func (s *Store) UpdateField(ctx context.Context, rowIndex, fieldIndex int, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if rowIndex < 0 || rowIndex >= len(s.rows) {
		return fmt.Errorf("memstore: row %d out of range", rowIndex)
	}
	if fieldIndex < 0 {
		return fmt.Errorf("memstore: field %d out of range", fieldIndex)
	}
	row := s.rows[rowIndex]
	for len(row) <= fieldIndex {
		row = append(row, "")
	}
	row[fieldIndex] = value
	s.rows[rowIndex] = row
	return nil
}

func (s *Store) ReplaceAll(ctx context.Context, rows [][]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = cloneRows(rows)
	return nil
}

func cloneRows(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = slices.Clone(r)
	}
	return out
}
