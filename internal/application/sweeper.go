package application

import (
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"slotbot/internal/domain"
	"slotbot/internal/domain/entities"
	"slotbot/internal/ports/output"
)

// Sweeper prunes records older than the retention window.
type Sweeper struct {
	store    output.RowStore
	gate     *LedgerGate
	settings Settings
	logger   logr.Logger
}

func NewSweeper(store output.RowStore, gate *LedgerGate, settings Settings, logger logr.Logger) *Sweeper {
	return &Sweeper{
		store:    store,
		gate:     gate,
		settings: settings,
		logger:   logger.WithName("sweeper"),
	}
}

// Sweep rewrites the table keeping the header, every record younger than the
// retention window and every record whose timestamp cannot be parsed.
// Nothing is written when no record expired.
func (s *Sweeper) Sweep(ctx context.Context, now time.Time) (entities.SweepReport, error) {
	var report entities.SweepReport
	loc := s.settings.location()
	err := s.gate.Do(ctx, func(ctx context.Context) error {
		rows, err := s.store.ReadAll(ctx)
		if err != nil {
			return fmt.Errorf("%w: %w", domain.ErrStoreRead, err)
		}
		if len(rows) == 0 {
			return nil
		}

		retained := [][]string{rows[0]}
		for _, row := range rows[1:] {
			rec := entities.RegistrationFromRow(row)
			createdAt, err := rec.CreatedAtTime(loc)
			if err != nil {
				report.Unparseable++
				s.logger.Info("⚠️ Date d'inscription illisible, ligne conservée", "seq", rec.Seq, "createdAt", rec.CreatedAt)
				retained = append(retained, row)
				continue
			}
			if now.Sub(createdAt) <= s.settings.Retention {
				retained = append(retained, row)
				continue
			}
			report.Removed++
		}
		report.Kept = len(retained) - 1

		if report.Removed == 0 {
			return nil
		}
		if err := s.store.ReplaceAll(ctx, retained); err != nil {
			return fmt.Errorf("%w: replace: %w", domain.ErrStoreWrite, err)
		}
		return nil
	})
	if err != nil {
		return entities.SweepReport{}, err
	}
	s.logger.Info("🧹 Anciennes inscriptions supprimées", "removed", report.Removed, "kept", report.Kept, "unparseable", report.Unparseable)
	return report, nil
}

// RunIfDue sweeps when now falls on the configured weekday.
func (s *Sweeper) RunIfDue(ctx context.Context, now time.Time) (entities.SweepReport, bool, error) {
	if now.In(s.settings.location()).Weekday() != s.settings.SweepDay {
		s.logger.V(1).Info("pas de nettoyage aujourd'hui", "weekday", now.Weekday(), "sweepDay", s.settings.SweepDay)
		return entities.SweepReport{}, false, nil
	}
	report, err := s.Sweep(ctx, now)
	if err != nil {
		return entities.SweepReport{}, false, err
	}
	return report, true, nil
}
