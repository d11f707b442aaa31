package input

import (
	"context"

	"slotbot/internal/domain/entities"
)

type RegistrationUseCase interface {
	Register(ctx context.Context, participantID, displayName, rawPower, slot string) (*entities.Confirmation, error)
	Cancel(ctx context.Context, participantID string) (*entities.Registration, error)
}
