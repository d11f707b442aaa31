package application

import (
	"context"
	"fmt"

	"slotbot/internal/domain"
	"slotbot/internal/domain/entities"
	"slotbot/internal/ports/output"
)

func readLedger(ctx context.Context, store output.RowStore) (entities.Ledger, error) {
	rows, err := store.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStoreRead, err)
	}
	return entities.NewLedger(rows), nil
}
