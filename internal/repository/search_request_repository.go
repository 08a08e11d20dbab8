package repository

import (
	"context"

	"parts-analyzer/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type SearchRequestRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewSearchRequestRepository(db *pgxpool.Pool, logger *zap.Logger) *SearchRequestRepository {
	return &SearchRequestRepository{
		db:     db,
		logger: logger,
	}
}

func createSearchRequestQuery(req *models.SearchRequest) squirrel.InsertBuilder {
	return squirrel.Insert("search_requests").
		Columns("id", "user_id", "username", "part_numbers", "suppliers", "results_count", "created_at").
		Values(req.ID, req.UserID, req.Username, req.PartNumbers, req.Suppliers, req.ResultsCount, req.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *SearchRequestRepository) Create(ctx context.Context, req *models.SearchRequest) error {
	return execBuilder(ctx, r.db, createSearchRequestQuery(req))
}
