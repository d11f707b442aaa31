package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-logr/logr"

	"slotbot/internal/domain"
	"slotbot/internal/domain/entities"
	"slotbot/internal/ports/output"
)

type RegistrationService struct {
	store    output.RowStore
	gate     *LedgerGate
	settings Settings
	logger   logr.Logger
}

func NewRegistrationService(
	store output.RowStore,
	gate *LedgerGate,
	settings Settings,
	logger logr.Logger,
) *RegistrationService {
	return &RegistrationService{
		store:    store,
		gate:     gate,
		settings: settings,
		logger:   logger.WithName("registration"),
	}
}

// Register appends a Registered record for participantID in slot, unless the
// participant already holds one or the slot is at capacity.
func (s *RegistrationService) Register(ctx context.Context, participantID, displayName, rawPower, slot string) (*entities.Confirmation, error) {
	if !s.settings.HasSlot(slot) {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSlot, slot)
	}
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, domain.ErrDisplayNameRequired
	}

	var confirmation *entities.Confirmation
	err := s.gate.Do(ctx, func(ctx context.Context) error {
		ledger, err := readLedger(ctx, s.store)
		if err != nil {
			return err
		}
		if existing, ok := ledger.ActiveFor(participantID); ok {
			return fmt.Errorf("%w: slot %s", domain.ErrAlreadyRegistered, existing.Slot)
		}
		if ledger.CountActive(slot) >= s.settings.MaxPerSlot {
			return fmt.Errorf("%w: %s", domain.ErrSlotFull, slot)
		}

		power := FormatPower(rawPower)
		if !power.Formatted {
			s.logger.V(1).Info("puissance conservée telle quelle", "participant", participantID, "power", rawPower)
		}
		record := entities.Registration{
			Seq:           len(ledger) + 1,
			ParticipantID: participantID,
			DisplayName:   displayName,
			Power:         power.Value,
			Slot:          slot,
			CreatedAt:     entities.FormatTimestamp(s.settings.now()),
			Status:        entities.StatusRegistered,
		}
		if err := s.store.Append(ctx, record.Row()); err != nil {
			return fmt.Errorf("%w: append: %w", domain.ErrStoreWrite, err)
		}
		confirmation = &entities.Confirmation{
			Seq:         record.Seq,
			DisplayName: record.DisplayName,
			Power:       record.Power,
			Slot:        record.Slot,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("✅ Inscription enregistrée", "participant", participantID, "slot", slot, "seq", confirmation.Seq)
	return confirmation, nil
}

// Cancel flips the first Registered record of participantID to Cancelled.
func (s *RegistrationService) Cancel(ctx context.Context, participantID string) (*entities.Registration, error) {
	var cancelled *entities.Registration
	err := s.gate.Do(ctx, func(ctx context.Context) error {
		ledger, err := readLedger(ctx, s.store)
		if err != nil {
			return err
		}
		entry, ok := ledger.ActiveFor(participantID)
		if !ok {
			return domain.ErrNoActiveRegistration
		}
		if err := s.store.UpdateField(ctx, entry.RowIndex, entities.ColStatus, string(entities.StatusCancelled)); err != nil {
			return fmt.Errorf("%w: update status: %w", domain.ErrStoreWrite, err)
		}
		rec := entry.Registration
		rec.Status = entities.StatusCancelled
		cancelled = &rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("🗑️ Inscription annulée", "participant", participantID, "slot", cancelled.Slot)
	return cancelled, nil
}
