package service

import (
	"context"
	"fmt"

	"parts-analyzer/internal/models"

	"golang.org/x/time/rate"
)

// RateLimitedGateway throttles calls to a supplier. Waiting honours ctx.
type RateLimitedGateway struct {
	next    SupplierGateway
	limiter *rate.Limiter
}

// WithRateLimit returns a wrapper giving each supplier its own limiter.
func WithRateLimit(rps float64, burst int) func(SupplierGateway) SupplierGateway {
	return func(next SupplierGateway) SupplierGateway {
		if rps <= 0 {
			return next
		}
		if burst < 1 {
			burst = 1
		}
		return &RateLimitedGateway{
			next:    next,
			limiter: rate.NewLimiter(rate.Limit(rps), burst),
		}
	}
}

func (g *RateLimitedGateway) Supplier() models.SupplierCode {
	return g.next.Supplier()
}

func (g *RateLimitedGateway) Quote(ctx context.Context, partNumber string) ([]models.Quote, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait for %s: %w", g.next.Supplier(), err)
	}
	return g.next.Quote(ctx, partNumber)
}
