package application

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-logr/logr"

	"slotbot/internal/domain/entities"
	"slotbot/internal/infrastructure/memstore"
)

const (
	slotA = "UTC 13:00"
	slotB = "UTC 14:00"
)

// sunday 2026-10-18 12:00 UTC
var testNow = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func testSettings() Settings {
	return Settings{
		MaxPerSlot: 30,
		Slots:      []string{slotA, slotB},
		Retention:  14 * 24 * time.Hour,
		SweepDay:   time.Sunday,
		Location:   time.UTC,
		Clock:      func() time.Time { return testNow },
	}
}

type fixture struct {
	store    *memstore.Store
	gate     *LedgerGate
	register *RegistrationService
	query    *QueryService
	sweeper  *Sweeper
}

func newFixture(t *testing.T, settings Settings, rows ...[]string) *fixture {
	t.Helper()
	all := append([][]string{entities.Header}, rows...)
	store := memstore.New(all...)
	gate := NewLedgerGate()
	return &fixture{
		store:    store,
		gate:     gate,
		register: NewRegistrationService(store, gate, settings, logr.Discard()),
		query:    NewQueryService(store, settings),
		sweeper:  NewSweeper(store, gate, settings, logr.Discard()),
	}
}

func (f *fixture) rows(t *testing.T) [][]string {
	t.Helper()
	rows, err := f.store.ReadAll(context.Background())
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	return rows
}

func row(seq int, participant, slot, createdAt string, status entities.Status) []string {
	r := entities.Registration{
		Seq:           seq,
		ParticipantID: participant,
		DisplayName:   "name-" + participant,
		Power:         "1,000",
		Slot:          slot,
		CreatedAt:     createdAt,
		Status:        status,
	}
	return r.Row()
}

func daysAgo(d int) string {
	return entities.FormatTimestamp(testNow.Add(-time.Duration(d) * 24 * time.Hour))
}

var errBackend = errors.New("backend unavailable")

// failingStore fails the configured operations and delegates the rest.
type failingStore struct {
	*memstore.Store
	failRead, failAppend, failUpdate, failReplace bool
	replaceCalls                                  int
}

func (s *failingStore) ReadAll(ctx context.Context) ([][]string, error) {
	if s.failRead {
		return nil, fmt.Errorf("read: %w", errBackend)
	}
	return s.Store.ReadAll(ctx)
}

func (s *failingStore) Append(ctx context.Context, row []string) error {
	if s.failAppend {
		return errBackend
	}
	return s.Store.Append(ctx, row)
}

func (s *failingStore) UpdateField(ctx context.Context, rowIndex, fieldIndex int, value string) error {
	if s.failUpdate {
		return errBackend
	}
	return s.Store.UpdateField(ctx, rowIndex, fieldIndex, value)
}

func (s *failingStore) ReplaceAll(ctx context.Context, rows [][]string) error {
	s.replaceCalls++
	if s.failReplace {
		return errBackend
	}
	return s.Store.ReplaceAll(ctx, rows)
}
