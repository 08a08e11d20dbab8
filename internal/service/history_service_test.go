package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"parts-analyzer/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeHistoryStore struct {
	entries    []models.PriceHistoryEntry
	err        error
	partNumber string
	days       int
}

func (s *fakeHistoryStore) QueryHistory(_ context.Context, partNumber string, windowDays int) ([]models.PriceHistoryEntry, error) {
	s.partNumber = partNumber
	s.days = windowDays
	return s.entries, s.err
}

func entryOn(day int, price int64) models.PriceHistoryEntry {
	return models.PriceHistoryEntry{
		PartNumber: "BP-1",
		Supplier:   models.SupplierFactoryStock,
		Price:      price,
		FoundAt:    time.Date(2026, 3, day, 12, 0, 0, 0, time.UTC),
	}
}

func TestGroupHistoryByDate(t *testing.T) {
	entries := []models.PriceHistoryEntry{entryOn(9, 1), entryOn(9, 2), entryOn(8, 3), entryOn(7, 4)}

	days := GroupHistoryByDate(entries)

	require.Len(t, days, 3)
	assert.Equal(t, "2026-03-09", days[0].Date)
	assert.Len(t, days[0].Entries, 2)
	assert.Equal(t, int64(3), days[1].Entries[0].Price)
	assert.Equal(t, "2026-03-07", days[2].Date)
}

func TestGroupHistoryByDateLimits(t *testing.T) {
	var entries []models.PriceHistoryEntry
	for day := 20; day > 5; day-- {
		entries = append(entries, entryOn(day, int64(day)))
	}

	days := GroupHistoryByDate(entries)

	require.Len(t, days, historyMaxDays)
	assert.Equal(t, "2026-03-20", days[0].Date)
	assert.Equal(t, "2026-03-16", days[4].Date)

	var twelveOnOneDay []models.PriceHistoryEntry
	for i := 0; i < 12; i++ {
		twelveOnOneDay = append(twelveOnOneDay, entryOn(1, int64(i)))
	}
	days = GroupHistoryByDate(twelveOnOneDay)
	require.Len(t, days, 1)
	assert.Len(t, days[0].Entries, historyMaxEntries)
}

func TestGroupHistoryByDateEmpty(t *testing.T) {
	days := GroupHistoryByDate(nil)

	assert.NotNil(t, days)
	assert.Empty(t, days)
}

func TestPartHistoryDefaultsWindow(t *testing.T) {
	store := &fakeHistoryStore{entries: []models.PriceHistoryEntry{entryOn(1, 10)}}
	s := NewHistoryService(store, 30, zap.NewNop())

	days, err := s.PartHistory(context.Background(), " bp-1 ", 0)
	require.NoError(t, err)

	assert.Equal(t, "BP-1", store.partNumber)
	assert.Equal(t, 30, store.days)
	assert.Len(t, days, 1)

	_, err = s.PartHistory(context.Background(), "BP-1", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, store.days)
}

func TestPartHistoryStoreError(t *testing.T) {
	s := NewHistoryService(&fakeHistoryStore{err: errors.New("timeout")}, 30, zap.NewNop())

	_, err := s.PartHistory(context.Background(), "BP-1", 0)

	assert.ErrorContains(t, err, "timeout")
}
