package application

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotbot/internal/domain"
	"slotbot/internal/domain/entities"
	"slotbot/internal/infrastructure/memstore"
)

func TestSweep_RetentionWindow(t *testing.T) {
	f := newFixture(t, testSettings(),
		row(1, "old", slotA, daysAgo(20), entities.StatusRegistered),
		row(2, "recent", slotA, daysAgo(5), entities.StatusCancelled),
		row(3, "garbled", slotA, "not a date", entities.StatusRegistered),
		row(4, "edge", slotB, daysAgo(14), entities.StatusRegistered),
	)

	report, err := f.sweeper.Sweep(context.Background(), testNow)
	require.NoError(t, err)
	assert.Equal(t, entities.SweepReport{Kept: 3, Removed: 1, Unparseable: 1}, report)

	rows := f.rows(t)
	require.Len(t, rows, 4)
	assert.Equal(t, entities.Header, rows[0])
	ids := []string{rows[1][entities.ColParticipantID], rows[2][entities.ColParticipantID], rows[3][entities.ColParticipantID]}
	assert.Equal(t, []string{"recent", "garbled", "edge"}, ids)
}

func TestSweep_NothingExpiredSkipsWrite(t *testing.T) {
	store := &failingStore{Store: memstore.New(entities.Header, row(1, "a", slotA, daysAgo(1), entities.StatusRegistered))}
	sweeper := NewSweeper(store, NewLedgerGate(), testSettings(), logr.Discard())

	report, err := sweeper.Sweep(context.Background(), testNow)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Kept)
	assert.Zero(t, store.replaceCalls)
}

func TestSweep_StoreFailureAbortsWithoutWrite(t *testing.T) {
	ctx := context.Background()

	readFail := &failingStore{Store: memstore.New(entities.Header, row(1, "a", slotA, daysAgo(30), entities.StatusRegistered)), failRead: true}
	_, err := NewSweeper(readFail, NewLedgerGate(), testSettings(), logr.Discard()).Sweep(ctx, testNow)
	require.ErrorIs(t, err, domain.ErrStoreRead)
	assert.Zero(t, readFail.replaceCalls)

	writeFail := &failingStore{Store: memstore.New(entities.Header, row(1, "a", slotA, daysAgo(30), entities.StatusRegistered)), failReplace: true}
	_, err = NewSweeper(writeFail, NewLedgerGate(), testSettings(), logr.Discard()).Sweep(ctx, testNow)
	require.ErrorIs(t, err, domain.ErrStoreWrite)
	rows, err := writeFail.Store.ReadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestSweep_EmptyTable(t *testing.T) {
	sweeper := NewSweeper(memstore.New(), NewLedgerGate(), testSettings(), logr.Discard())
	report, err := sweeper.Sweep(context.Background(), testNow)
	require.NoError(t, err)
	assert.Equal(t, entities.SweepReport{}, report)
}

func TestRunIfDue(t *testing.T) {
	f := newFixture(t, testSettings(), row(1, "old", slotA, daysAgo(20), entities.StatusRegistered))
	ctx := context.Background()

	_, ran, err := f.sweeper.RunIfDue(ctx, testNow.Add(24*time.Hour)) // monday
	require.NoError(t, err)
	assert.False(t, ran)
	assert.Len(t, f.rows(t), 2)

	report, ran, err := f.sweeper.RunIfDue(ctx, testNow)
	require.NoError(t, err)
	assert.True(t, ran)
	assert.Equal(t, 1, report.Removed)
	assert.Len(t, f.rows(t), 1)
}

func TestRunIfDue_UsesLedgerLocation(t *testing.T) {
	settings := testSettings()
	settings.Location = time.FixedZone("UTC+10", 10*3600)
	settings.SweepDay = time.Monday
	f := newFixture(t, settings)

	// 2026-10-18 20:00 UTC is already monday in UTC+10
	_, ran, err := f.sweeper.RunIfDue(context.Background(), time.Date(2026, 10, 18, 20, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, ran)
}

func TestSweep_ConcurrentRegistersAreNeverLost(t *testing.T) {
	var stale [][]string
	for i := range 10 {
		stale = append(stale, row(i+1, fmt.Sprintf("old%d", i), slotA, daysAgo(30), entities.StatusCancelled))
	}
	f := newFixture(t, testSettings(), stale...)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.register.Register(ctx, fmt.Sprintf("p%d", i), "P", "1", slotB)
			assert.NoError(t, err)
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := f.sweeper.Sweep(ctx, testNow)
		assert.NoError(t, err)
	}()
	wg.Wait()

	ledger := entities.NewLedger(f.rows(t))
	assert.Equal(t, 20, ledger.CountActive(slotB))
	assert.Len(t, ledger, 20)
}
