package service

import (
	"context"
	"crypto/md5"
	"math/big"
	"strconv"
	"time"

	"parts-analyzer/internal/models"
	"parts-analyzer/pkg/metrics"
)

const (
	maxQuotedBrands = 2
	basePrice       = 10000
	priceSpread     = 40000
	maxDeliveryDays = 14
)

// SupplierGateway is one supplier's price lookup.
type SupplierGateway interface {
	Supplier() models.SupplierCode
	Quote(ctx context.Context, partNumber string) ([]models.Quote, error)
}

// DeterministicGateway simulates a supplier: quotes depend only on
// (part number, supplier, brand, brand index).
type DeterministicGateway struct {
	supplier models.SupplierCode
	catalog  Catalog
}

func NewDeterministicGateway(supplier models.SupplierCode, catalog Catalog) *DeterministicGateway {
	return &DeterministicGateway{supplier: supplier, catalog: catalog}
}

func (g *DeterministicGateway) Supplier() models.SupplierCode {
	return g.supplier
}

// Quote returns one quote per brand for the first two canonical brands.
func (g *DeterministicGateway) Quote(ctx context.Context, partNumber string) ([]models.Quote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	brands := g.catalog.Lookup(partNumber).Brands
	if len(brands) > maxQuotedBrands {
		brands = brands[:maxQuotedBrands]
	}

	quotes := make([]models.Quote, 0, len(brands))
	for i, brand := range brands {
		quotes = append(quotes, DeterministicQuote(partNumber, g.supplier, brand, i))
	}
	return quotes, nil
}

// DeterministicQuote derives price and delivery from the MD5 digest of
// partNumber+supplier+brand+index, read as an unsigned big-endian integer.
func DeterministicQuote(partNumber string, supplier models.SupplierCode, brand string, index int) models.Quote {
	sum := md5.Sum([]byte(partNumber + string(supplier) + brand + strconv.Itoa(index)))
	h := new(big.Int).SetBytes(sum[:])

	price := new(big.Int).Mod(h, big.NewInt(priceSpread)).Int64()
	delivery := new(big.Int).Mod(h, big.NewInt(maxDeliveryDays)).Int64()

	return models.Quote{
		Brand:        brand,
		Price:        basePrice + price,
		DeliveryDays: 1 + int(delivery),
	}
}

// GatewaySet indexes gateways by supplier code.
type GatewaySet map[models.SupplierCode]SupplierGateway

// NewGatewaySet builds one deterministic gateway per registered supplier,
// passing each through the given wrappers in order.
func NewGatewaySet(registry *models.SupplierRegistry, catalog Catalog, wrappers ...func(SupplierGateway) SupplierGateway) GatewaySet {
	set := make(GatewaySet)
	for _, code := range registry.Codes() {
		var g SupplierGateway = NewDeterministicGateway(code, catalog)
		for _, wrap := range wrappers {
			g = wrap(g)
		}
		set[code] = g
	}
	return set
}

// InstrumentedGateway records call latency per supplier.
type InstrumentedGateway struct {
	next SupplierGateway
}

func WithInstrumentation(next SupplierGateway) SupplierGateway {
	return &InstrumentedGateway{next: next}
}

func (g *InstrumentedGateway) Supplier() models.SupplierCode {
	return g.next.Supplier()
}

func (g *InstrumentedGateway) Quote(ctx context.Context, partNumber string) ([]models.Quote, error) {
	start := time.Now()
	quotes, err := g.next.Quote(ctx, partNumber)
	metrics.RecordGatewayCall(string(g.next.Supplier()), err, time.Since(start))
	return quotes, err
}
