package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"parts-analyzer/internal/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// CachedGateway stores quotes in Redis. Gateways are deterministic, so a cached
// answer is always the answer the supplier would give. Redis failures are
// logged and the call falls through to the supplier.
type CachedGateway struct {
	next   SupplierGateway
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func WithCache(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) func(SupplierGateway) SupplierGateway {
	return func(next SupplierGateway) SupplierGateway {
		if rdb == nil {
			return next
		}
		return &CachedGateway{next: next, rdb: rdb, ttl: ttl, logger: logger}
	}
}

func quoteCacheKey(supplier models.SupplierCode, partNumber string) string {
	return fmt.Sprintf("quotes:%s:%s", supplier, partNumber)
}

func (g *CachedGateway) Supplier() models.SupplierCode {
	return g.next.Supplier()
}

func (g *CachedGateway) Quote(ctx context.Context, partNumber string) ([]models.Quote, error) {
	key := quoteCacheKey(g.next.Supplier(), partNumber)

	raw, err := g.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var quotes []models.Quote
		if err := json.Unmarshal(raw, &quotes); err == nil {
			return quotes, nil
		}
		g.logger.Warn("Discarding malformed cached quotes", zap.String("key", key))
	case !errors.Is(err, redis.Nil):
		g.logger.Warn("Quote cache read failed", zap.String("key", key), zap.Error(err))
	}

	quotes, err := g.next.Quote(ctx, partNumber)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(quotes)
	if err != nil {
		return quotes, nil
	}
	if err := g.rdb.Set(ctx, key, data, g.ttl).Err(); err != nil {
		g.logger.Warn("Quote cache write failed", zap.String("key", key), zap.Error(err))
	}
	return quotes, nil
}
