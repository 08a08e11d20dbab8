package service

import (
	"context"
	"fmt"
	"strings"

	"parts-analyzer/internal/models"

	"go.uber.org/zap"
)

const (
	historyMaxEntries = 10
	historyMaxDays    = 5
)

type HistoryStore interface {
	QueryHistory(ctx context.Context, partNumber string, windowDays int) ([]models.PriceHistoryEntry, error)
}

type HistoryService struct {
	store      HistoryStore
	windowDays int
	logger     *zap.Logger
}

func NewHistoryService(store HistoryStore, windowDays int, logger *zap.Logger) *HistoryService {
	if windowDays < 1 {
		windowDays = 30
	}
	return &HistoryService{store: store, windowDays: windowDays, logger: logger}
}

func (s *HistoryService) WindowDays() int {
	return s.windowDays
}

// PartHistory returns the newest entries for a part grouped by day. days <= 0
// uses the configured window.
func (s *HistoryService) PartHistory(ctx context.Context, partNumber string, days int) ([]models.PriceHistoryDay, error) {
	if days <= 0 {
		days = s.windowDays
	}
	partNumber = strings.ToUpper(strings.TrimSpace(partNumber))

	entries, err := s.store.QueryHistory(ctx, partNumber, days)
	if err != nil {
		return nil, fmt.Errorf("failed to query price history: %w", err)
	}

	s.logger.Debug("Price history loaded", zap.String("part_number", partNumber), zap.Int("entries", len(entries)))
	return GroupHistoryByDate(entries), nil
}

// GroupHistoryByDate expects entries newest first. It keeps the first 10
// entries and at most 5 distinct dates, preserving order.
func GroupHistoryByDate(entries []models.PriceHistoryEntry) []models.PriceHistoryDay {
	if len(entries) > historyMaxEntries {
		entries = entries[:historyMaxEntries]
	}

	days := make([]models.PriceHistoryDay, 0)
	index := make(map[string]int)
	for _, e := range entries {
		date := e.FoundAt.Format("2006-01-02")
		i, ok := index[date]
		if !ok {
			if len(days) == historyMaxDays {
				continue
			}
			i = len(days)
			index[date] = i
			days = append(days, models.PriceHistoryDay{Date: date})
		}
		days[i].Entries = append(days[i].Entries, e)
	}
	return days
}
