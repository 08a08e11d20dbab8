package repository

import (
	"context"
	"time"

	"parts-analyzer/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const defaultCurrency = "RUB"

type PriceHistoryRepository struct {
	db     *pgxpool.Pool
	now    func() time.Time
	logger *zap.Logger
}

func NewPriceHistoryRepository(db *pgxpool.Pool, logger *zap.Logger) *PriceHistoryRepository {
	return &PriceHistoryRepository{
		db:     db,
		now:    time.Now,
		logger: logger,
	}
}

// insertPricesQuery returns false when the record carries no quotes.
func insertPricesQuery(record *models.PartRecord, foundAt time.Time) (squirrel.InsertBuilder, bool) {
	builder := squirrel.Insert("price_history").
		Columns("part_number", "supplier_code", "brand", "price", "delivery_days", "currency", "found_at").
		PlaceholderFormat(squirrel.Dollar)

	n := 0
	for _, sq := range record.Quotes {
		for _, q := range sq.Quotes {
			builder = builder.Values(record.PartNumber, string(sq.Supplier), q.Brand, q.Price, q.DeliveryDays, defaultCurrency, foundAt)
			n++
		}
	}
	return builder, n > 0
}

func (r *PriceHistoryRepository) append(ctx context.Context, db DBTX, record *models.PartRecord, foundAt time.Time) error {
	builder, ok := insertPricesQuery(record, foundAt)
	if !ok {
		return nil
	}
	return execBuilder(ctx, db, builder)
}

func historyQuery(partNumber string, since time.Time) squirrel.SelectBuilder {
	return squirrel.Select(
		"ph.part_number", "ph.supplier_code", "s.name", "ph.brand",
		"ph.price", "ph.delivery_days", "ph.currency", "ph.found_at",
	).
		From("price_history ph").
		Join("suppliers s ON ph.supplier_code = s.code").
		Where(squirrel.Eq{"ph.part_number": partNumber}).
		Where(squirrel.GtOrEq{"ph.found_at": since}).
		OrderBy("ph.found_at DESC", "ph.id DESC").
		PlaceholderFormat(squirrel.Dollar)
}

// historySince is the start of the day windowDays before now.
func historySince(now time.Time, windowDays int) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location()).AddDate(0, 0, -windowDays)
}

// QueryHistory returns entries for the part found within the window, newest first.
func (r *PriceHistoryRepository) QueryHistory(ctx context.Context, partNumber string, windowDays int) ([]models.PriceHistoryEntry, error) {
	sql, args, err := historyQuery(partNumber, historySince(r.now(), windowDays)).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.PriceHistoryEntry
	for rows.Next() {
		var e models.PriceHistoryEntry
		if err := rows.Scan(
			&e.PartNumber, &e.Supplier, &e.SupplierName, &e.Brand,
			&e.Price, &e.DeliveryDays, &e.Currency, &e.FoundAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
