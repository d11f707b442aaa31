package application

import (
	"context"
	"fmt"

	"golang.org/x/sync/semaphore"

	"slotbot/internal/domain"
)

// LedgerGate serializes every read-modify-write sequence against the row
// store. One gate must be shared by all services of a process.
type LedgerGate struct {
	sem *semaphore.Weighted
}

func NewLedgerGate() *LedgerGate {
	return &LedgerGate{sem: semaphore.NewWeighted(1)}
}

// Do runs fn while holding the gate. Waiting stops when ctx is done.
func (g *LedgerGate) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := g.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrBusy, err)
	}
	defer g.sem.Release(1)
	return fn(ctx)
}
