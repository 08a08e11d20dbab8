package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"parts-analyzer/internal/models"
	"parts-analyzer/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func analysisFor(partNumber string) *models.PriceAnalysis {
	min := models.RankedQuote{Quote: models.Quote{Brand: "SKF", Price: 12000, DeliveryDays: 2}, Supplier: models.SupplierMachineParts, SupplierName: "MachineParts.com"}
	return &models.PriceAnalysis{
		PartNumber:  partNumber,
		Name:        "Bearing",
		Brands:      []string{"SKF", "FAG"},
		MinQuote:    min,
		MedianQuote: min,
		AllQuotes:   []models.RankedQuote{min},
	}
}

func TestSummarizeDisabledWithoutKey(t *testing.T) {
	s, err := NewSummaryService(&config.GigaChatConfig{}, zap.NewNop())
	require.NoError(t, err)

	assert.False(t, s.Enabled())
	assert.Nil(t, s.Summarize(context.Background(), []*models.PriceAnalysis{analysisFor("A")}))
	assert.NoError(t, s.Close())
}

func TestSummarizeFallsBackPerItem(t *testing.T) {
	complete := func(_ context.Context, prompt string) (string, error) {
		if strings.Contains(prompt, "Каталожный номер: B\n") {
			return "", errors.New("502 from upstream")
		}
		return "  Берите MachineParts.com.  ", nil
	}
	s := newSummaryService(complete, 5, time.Second, zap.NewNop())

	summaries := s.Summarize(context.Background(), []*models.PriceAnalysis{analysisFor("A"), analysisFor("B"), analysisFor("C")})

	require.Len(t, summaries, 3)
	assert.Equal(t, models.PartSummary{PartNumber: "A", Text: "Берите MachineParts.com."}, summaries[0])
	assert.Equal(t, models.PartSummary{PartNumber: "B", Text: SummaryFallback, Fallback: true}, summaries[1])
	assert.False(t, summaries[2].Fallback)
}

func TestSummarizeEmptyResponseFallsBack(t *testing.T) {
	s := newSummaryService(func(context.Context, string) (string, error) { return "   ", nil }, 5, 0, zap.NewNop())

	summaries := s.Summarize(context.Background(), []*models.PriceAnalysis{analysisFor("A")})

	require.Len(t, summaries, 1)
	assert.True(t, summaries[0].Fallback)
}

func TestSummarizeCapsAtMax(t *testing.T) {
	calls := 0
	s := newSummaryService(func(context.Context, string) (string, error) {
		calls++
		return "ok", nil
	}, 5, 0, zap.NewNop())

	var analyses []*models.PriceAnalysis
	for _, pn := range []string{"1", "2", "3", "4", "5", "6", "7"} {
		analyses = append(analyses, analysisFor(pn))
	}

	assert.Len(t, s.Summarize(context.Background(), analyses), 5)
	assert.Equal(t, 5, calls)
}

func TestSummarizeAppliesTimeout(t *testing.T) {
	s := newSummaryService(func(ctx context.Context, _ string) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	}, 5, 5*time.Millisecond, zap.NewNop())

	summaries := s.Summarize(context.Background(), []*models.PriceAnalysis{analysisFor("A")})

	require.Len(t, summaries, 1)
	assert.Equal(t, SummaryFallback, summaries[0].Text)
}

func TestBuildSummaryPrompt(t *testing.T) {
	prompt := buildSummaryPrompt(analysisFor("BP-1"))

	assert.Contains(t, prompt, "Каталожный номер: BP-1")
	assert.Contains(t, prompt, "- MachineParts.com: 12000 руб., 2 дней (SKF)")
	assert.Contains(t, prompt, "Минимальная цена: 12000 руб. (MachineParts.com)")
	assert.Contains(t, prompt, "Бренды: SKF, FAG")
}
