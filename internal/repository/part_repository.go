package repository

import (
	"context"
	"fmt"
	"time"

	"parts-analyzer/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type PartRepository struct {
	db      *pgxpool.Pool
	history *PriceHistoryRepository
	logger  *zap.Logger
}

func NewPartRepository(db *pgxpool.Pool, history *PriceHistoryRepository, logger *zap.Logger) *PartRepository {
	return &PartRepository{
		db:      db,
		history: history,
		logger:  logger,
	}
}

func upsertPartQuery(record *models.PartRecord, now time.Time) squirrel.InsertBuilder {
	return squirrel.Insert("parts").
		Columns("part_number", "name", "description", "brands", "analogs", "created_at", "updated_at").
		Values(record.PartNumber, record.Name, record.Description, record.Brands, record.Analogs, now, now).
		Suffix(`ON CONFLICT (part_number) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			brands = EXCLUDED.brands,
			analogs = EXCLUDED.analogs,
			updated_at = EXCLUDED.updated_at`).
		PlaceholderFormat(squirrel.Dollar)
}

// Save upserts the part (created_at is kept on conflict) and appends its quotes
// to price history in one transaction. History rows are never updated.
func (r *PartRepository) Save(ctx context.Context, record *models.PartRecord) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	now := time.Now()
	if err := execBuilder(ctx, tx, upsertPartQuery(record, now)); err != nil {
		return fmt.Errorf("failed to upsert part %s: %w", record.PartNumber, err)
	}
	if err := r.history.append(ctx, tx, record, now); err != nil {
		return fmt.Errorf("failed to append prices for %s: %w", record.PartNumber, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit part %s: %w", record.PartNumber, err)
	}

	r.logger.Debug("Part saved",
		zap.String("part_number", record.PartNumber),
		zap.Int("quotes", record.QuoteCount()),
	)
	return nil
}
