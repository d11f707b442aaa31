package application

import (
	"context"

	"slotbot/internal/domain/entities"
	"slotbot/internal/ports/output"
)

// QueryService reads the ledger without taking the gate.
type QueryService struct {
	store    output.RowStore
	settings Settings
}

func NewQueryService(store output.RowStore, settings Settings) *QueryService {
	return &QueryService{store: store, settings: settings}
}

func (s *QueryService) ListActive(ctx context.Context) ([]entities.ActiveEntry, error) {
	ledger, err := readLedger(ctx, s.store)
	if err != nil {
		return nil, err
	}
	active := ledger.Active()
	out := make([]entities.ActiveEntry, len(active))
	for i, e := range active {
		out[i] = entities.ActiveEntry{DisplayName: e.DisplayName, Power: e.Power, Slot: e.Slot}
	}
	return out, nil
}

// SlotSummary returns the occupancy of every configured slot, in configured order.
func (s *QueryService) SlotSummary(ctx context.Context) ([]entities.SlotCount, error) {
	ledger, err := readLedger(ctx, s.store)
	if err != nil {
		return nil, err
	}
	out := make([]entities.SlotCount, len(s.settings.Slots))
	for i, slot := range s.settings.Slots {
		out[i] = entities.SlotCount{
			Slot:       slot,
			Registered: ledger.CountActive(slot),
			Capacity:   s.settings.MaxPerSlot,
		}
	}
	return out, nil
}
