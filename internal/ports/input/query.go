package input

import (
	"context"

	"slotbot/internal/domain/entities"
)

type QueryUseCase interface {
	ListActive(ctx context.Context) ([]entities.ActiveEntry, error)
	SlotSummary(ctx context.Context) ([]entities.SlotCount, error)
}
