package repository

import (
	"strings"
	"testing"
	"time"

	"parts-analyzer/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord() *models.PartRecord {
	return &models.PartRecord{
		PartNumber:  "BP-12345-67890",
		Name:        "Подшипник",
		Description: "Радиальный шарикоподшипник",
		Brands:      []string{"SKF", "FAG"},
		Analogs:     []string{"BP-6205-2RS"},
		Quotes: []models.SupplierQuotes{
			{Supplier: models.SupplierIndustrialSupply, Quotes: []models.Quote{{Brand: "SKF", Price: 48782, DeliveryDays: 5}, {Brand: "FAG", Price: 23646, DeliveryDays: 13}}},
			{Supplier: models.SupplierFactoryStock, Quotes: []models.Quote{{Brand: "SKF", Price: 43679, DeliveryDays: 8}}},
		},
	}
}

func TestUpsertPartQuery(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	sql, args, err := upsertPartQuery(testRecord(), now).ToSql()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(sql, "INSERT INTO parts (part_number,name,description,brands,analogs,created_at,updated_at) VALUES ($1,$2,$3,$4,$5,$6,$7)"))
	assert.Contains(t, sql, "ON CONFLICT (part_number) DO UPDATE SET")
	assert.NotContains(t, sql, "created_at = EXCLUDED.created_at")
	require.Len(t, args, 7)
	assert.Equal(t, "BP-12345-67890", args[0])
	assert.Equal(t, []string{"SKF", "FAG"}, args[3])
}

func TestInsertPricesQuery(t *testing.T) {
	foundAt := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	builder, ok := insertPricesQuery(testRecord(), foundAt)
	require.True(t, ok)
	sql, args, err := builder.ToSql()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(sql, "INSERT INTO price_history (part_number,supplier_code,brand,price,delivery_days,currency,found_at) VALUES"))
	assert.Contains(t, sql, "($15,$16,$17,$18,$19,$20,$21)")
	require.Len(t, args, 21)
	assert.Equal(t, []any{"BP-12345-67890", "industrialsupply", "SKF", int64(48782), 5, "RUB", foundAt}, args[:7])
	assert.Equal(t, "factorystock", args[15])
}

func TestInsertPricesQueryWithoutQuotes(t *testing.T) {
	_, ok := insertPricesQuery(&models.PartRecord{PartNumber: "X"}, time.Now())

	assert.False(t, ok)
}

func TestHistoryQuery(t *testing.T) {
	since := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	sql, args, err := historyQuery("BP-1", since).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "FROM price_history ph JOIN suppliers s ON ph.supplier_code = s.code")
	assert.Contains(t, sql, "WHERE ph.part_number = $1 AND ph.found_at >= $2")
	assert.True(t, strings.HasSuffix(sql, "ORDER BY ph.found_at DESC, ph.id DESC"))
	assert.Equal(t, []any{"BP-1", since}, args)
}

func TestHistorySince(t *testing.T) {
	now := time.Date(2026, 3, 31, 17, 45, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), historySince(now, 30))
	assert.Equal(t, time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), historySince(now, 0))
}

func TestCreateSearchRequestQuery(t *testing.T) {
	req := &models.SearchRequest{
		ID:           uuid.New(),
		UserID:       42,
		Username:     "engineer",
		PartNumbers:  []string{"BP-1"},
		Suppliers:    []models.SupplierCode{models.SupplierMachineParts},
		ResultsCount: 1,
		CreatedAt:    time.Now(),
	}

	sql, args, err := createSearchRequestQuery(req).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO search_requests (id,user_id,username,part_numbers,suppliers,results_count,created_at) VALUES ($1,$2,$3,$4,$5,$6,$7)", sql)
	assert.Equal(t, req.ID, args[0])
	assert.Equal(t, int64(42), args[1])
}

func TestSeedSuppliersQuery(t *testing.T) {
	sql, args, err := seedSuppliersQuery(models.DefaultSupplierRegistry().All()).ToSql()
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(sql, "ON CONFLICT (code) DO NOTHING"))
	require.Len(t, args, 9)
	assert.Equal(t, "industrialsupply", args[0])
	assert.Equal(t, "IndustrialSupply.ru", args[1])
}
