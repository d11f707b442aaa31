package output

import "context"

// RowStore is the external tabular store holding the ledger. Row 0 is the
// header. Indexes are 0-based and rowIndex counts the header row.
//
// Implementations give no atomicity guarantee across concurrent callers.
type RowStore interface {
	ReadAll(ctx context.Context) ([][]string, error)
	Append(ctx context.Context, row []string) error
	UpdateField(ctx context.Context, rowIndex, fieldIndex int, value string) error
	// ReplaceAll clears the table and writes rows (header included).
	ReplaceAll(ctx context.Context, rows [][]string) error
}
