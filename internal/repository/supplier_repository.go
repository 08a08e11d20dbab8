package repository

import (
	"context"

	"parts-analyzer/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type SupplierRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewSupplierRepository(db *pgxpool.Pool, logger *zap.Logger) *SupplierRepository {
	return &SupplierRepository{
		db:     db,
		logger: logger,
	}
}

func seedSuppliersQuery(suppliers []models.Supplier) squirrel.InsertBuilder {
	builder := squirrel.Insert("suppliers").
		Columns("code", "name", "website").
		Suffix("ON CONFLICT (code) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	for _, s := range suppliers {
		builder = builder.Values(string(s.Code), s.Name, s.Website)
	}
	return builder
}

// Seed inserts registry suppliers that are missing; existing rows are left alone.
func (r *SupplierRepository) Seed(ctx context.Context, registry *models.SupplierRegistry) error {
	suppliers := registry.All()
	if len(suppliers) == 0 {
		return nil
	}

	if err := execBuilder(ctx, r.db, seedSuppliersQuery(suppliers)); err != nil {
		return err
	}

	r.logger.Info("Suppliers seeded", zap.Int("count", len(suppliers)))
	return nil
}
