package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"slotbot/internal/ports/output"
)

var _ output.RowStore = (*RowStore)(nil)

// RowStore implements output.RowStore on the ledger_rows table. Rows are
// ordered by position; row index i is the i-th row in that order.
type RowStore struct {
	pool *pgxpool.Pool
}

// NewRowStore creates a RowStore.
func NewRowStore(pool *pgxpool.Pool) *RowStore {
	return &RowStore{pool: pool}
}

func (r *RowStore) ReadAll(ctx context.Context) ([][]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT cells FROM ledger_rows ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("select ledger rows: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) ([]string, error) {
		var cells []pgtype.Text
		if err := row.Scan(&cells); err != nil {
			return nil, err
		}
		return cellsFromPG(cells), nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan ledger rows: %w", err)
	}
	return out, nil
}

func (r *RowStore) Append(ctx context.Context, row []string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO ledger_rows (position, cells)
		 SELECT COALESCE(MAX(position) + 1, 0), $1::text[] FROM ledger_rows`,
		row)
	if err != nil {
		return fmt.Errorf("append ledger row: %w", err)
	}
	return nil
}

func (r *RowStore) UpdateField(ctx context.Context, rowIndex, fieldIndex int, value string) error {
	if rowIndex < 0 || fieldIndex < 0 {
		return fmt.Errorf("update ledger cell (%d,%d): negative index", rowIndex, fieldIndex)
	}
	tag, err := r.pool.Exec(ctx,
		`UPDATE ledger_rows SET cells[$2] = $3
		 WHERE position = (SELECT position FROM ledger_rows ORDER BY position OFFSET $1 LIMIT 1)`,
		rowIndex, fieldIndex+1, value)
	if err != nil {
		return fmt.Errorf("update ledger cell (%d,%d): %w", rowIndex, fieldIndex, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update ledger cell (%d,%d): row not found", rowIndex, fieldIndex)
	}
	return nil
}

// ReplaceAll swaps the whole table in one transaction and renumbers positions.
func (r *RowStore) ReplaceAll(ctx context.Context, rows [][]string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin replace: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM ledger_rows`); err != nil {
		return fmt.Errorf("clear ledger rows: %w", err)
	}
	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"ledger_rows"},
		[]string{"position", "cells"},
		pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			return []any{int64(i), rows[i]}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("write ledger rows: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit replace: %w", err)
	}
	return nil
}
