package input

import (
	"context"
	"time"

	"slotbot/internal/domain/entities"
)

type SweepUseCase interface {
	Sweep(ctx context.Context, now time.Time) (entities.SweepReport, error)
	// RunIfDue sweeps only on the configured weekday; ran reports whether it did.
	RunIfDue(ctx context.Context, now time.Time) (report entities.SweepReport, ran bool, err error)
}
