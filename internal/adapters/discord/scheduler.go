package discord

import (
	"context"
	"time"

	"github.com/go-logr/logr"

	"slotbot/internal/ports/input"
)

// RunSweeps checks the retention sweep once at start and then every
// interval until ctx is done. Sweep failures are logged and retried at the
// next tick.
func RunSweeps(ctx context.Context, sweeper input.SweepUseCase, interval time.Duration, logger logr.Logger) {
	logger = logger.WithName("scheduler")
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		if _, _, err := sweeper.RunIfDue(ctx, time.Now()); err != nil {
			logger.Error(err, "❌ Nettoyage des inscriptions échoué")
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
