package service

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"parts-analyzer/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func reportAnalysis() *models.PriceAnalysis {
	minQ := models.RankedQuote{Quote: models.Quote{Brand: "FAG", Price: 23646, DeliveryDays: 13}, Supplier: models.SupplierIndustrialSupply, SupplierName: "IndustrialSupply.ru"}
	medQ := models.RankedQuote{Quote: models.Quote{Brand: "FAG", Price: 39330, DeliveryDays: 7}, Supplier: models.SupplierFactoryStock, SupplierName: "FactoryStock.eu"}
	other := models.RankedQuote{Quote: models.Quote{Brand: "SKF", Price: 48782, DeliveryDays: 5}, Supplier: models.SupplierIndustrialSupply, SupplierName: "IndustrialSupply.ru"}
	return &models.PriceAnalysis{
		PartNumber:  "BP-12345-67890",
		Name:        "Подшипник",
		Brands:      []string{"SKF", "FAG", "NSK"},
		MinQuote:    minQ,
		MedianQuote: medQ,
		AllQuotes:   []models.RankedQuote{other, minQ, medQ},
		AnalogEstimates: []models.AnalogEstimate{
			{PartNumber: "BP-6205-2RS", EstimatedPrice: decimal.RequireFromString("21581.4"), Availability: models.AvailabilityInStock},
		},
	}
}

func TestGenerateReport(t *testing.T) {
	dir := t.TempDir()
	s := NewReportService(dir, zap.NewNop())
	s.now = func() time.Time { return time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC) }

	name, err := s.Generate([]*models.PriceAnalysis{reportAnalysis()}, &models.Requester{UserID: 99, Username: "engineer"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(name, "parts_report_20260301_103000_"))
	assert.True(t, strings.HasSuffix(name, ".xlsx"))

	f, err := excelize.OpenFile(filepath.Join(dir, name))
	require.NoError(t, err)
	defer f.Close()

	cell := func(ref string) string {
		v, err := f.GetCellValue(reportSheet, ref)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Отчет анализа промышленных запчастей\n01.03.2026 10:30", cell("A1"))
	assert.Equal(t, "Пользователь: engineer", cell("A2"))
	assert.Equal(t, "ID: 99", cell("B2"))
	assert.Equal(t, "Запчасть: BP-12345-67890 - Подшипник", cell("A4"))
	assert.Equal(t, "SKF, FAG, NSK", cell("B5"))
	assert.Equal(t, "23646 руб. (IndustrialSupply.ru)", cell("B6"))
	assert.Equal(t, "39330 руб. (FactoryStock.eu)", cell("B7"))
	assert.Equal(t, "13 дней (мин.)", cell("B8"))
	assert.Equal(t, "Поставщик", cell("A10"))
	assert.Equal(t, "48782", cell("C11"))
	assert.Equal(t, "", cell("E11"))
	assert.Equal(t, "МИНИМАЛЬНАЯ ЦЕНА", cell("E12"))
	assert.Equal(t, "МЕДИАННАЯ ЦЕНА", cell("E13"))
	assert.Equal(t, "Доступные аналоги:", cell("A15"))
	assert.Equal(t, "BP-6205-2RS", cell("A16"))
	assert.Equal(t, "~21581 руб.", cell("B16"))
	assert.Equal(t, "in stock", cell("C16"))
}

func TestGenerateReportWithoutRequester(t *testing.T) {
	dir := t.TempDir()
	s := NewReportService(dir, zap.NewNop())

	name, err := s.Generate(nil, nil)
	require.NoError(t, err)

	f, err := excelize.OpenFile(filepath.Join(dir, name))
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue(reportSheet, "A2")
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestGenerateReportsDoNotCollide(t *testing.T) {
	s := NewReportService(t.TempDir(), zap.NewNop())
	s.now = func() time.Time { return time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC) }

	a, err := s.Generate(nil, nil)
	require.NoError(t, err)
	b, err := s.Generate(nil, nil)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
