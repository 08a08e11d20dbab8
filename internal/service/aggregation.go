package service

import (
	"sort"

	"parts-analyzer/internal/models"

	"github.com/cespare/xxhash/v2"
	"github.com/shopspring/decimal"
)

const (
	maxAnalogEstimates = 3
	analogSpread       = 2000
)

var analogDiscount = decimal.RequireFromString("0.9")

// AggregationEngine ranks the quotes of a PartRecord.
type AggregationEngine struct {
	registry *models.SupplierRegistry
}

func NewAggregationEngine(registry *models.SupplierRegistry) *AggregationEngine {
	return &AggregationEngine{registry: registry}
}

// Analyze returns nil when the record carries no quotes at all.
// The median is the element at index len/2 of the price-sorted quotes, so for an
// even count it is the upper of the two middle quotes.
func (e *AggregationEngine) Analyze(record *models.PartRecord) *models.PriceAnalysis {
	all := e.flatten(record)
	if len(all) == 0 {
		return nil
	}

	sorted := make([]models.RankedQuote, len(all))
	copy(sorted, all)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Price < sorted[j].Price
	})

	minQuote := sorted[0]
	medianQuote := sorted[len(sorted)/2]

	return &models.PriceAnalysis{
		PartNumber:      record.PartNumber,
		Name:            record.Name,
		Brands:          append([]string(nil), record.Brands...),
		MinQuote:        minQuote,
		MedianQuote:     medianQuote,
		AllQuotes:       all,
		AnalogEstimates: estimateAnalogs(record.Analogs, minQuote.Price),
	}
}

// flatten walks suppliers in record order, then brands in quote order.
func (e *AggregationEngine) flatten(record *models.PartRecord) []models.RankedQuote {
	var all []models.RankedQuote
	for _, sq := range record.Quotes {
		name := e.registry.DisplayName(sq.Supplier)
		for _, q := range sq.Quotes {
			all = append(all, models.RankedQuote{
				Quote:        q,
				Supplier:     sq.Supplier,
				SupplierName: name,
			})
		}
	}
	return all
}

func estimateAnalogs(analogs []string, minPrice int64) []models.AnalogEstimate {
	if len(analogs) > maxAnalogEstimates {
		analogs = analogs[:maxAnalogEstimates]
	}

	base := decimal.NewFromInt(minPrice).Mul(analogDiscount)
	estimates := make([]models.AnalogEstimate, 0, len(analogs))
	for _, analog := range analogs {
		h := AnalogHash(analog)
		availability := models.AvailabilityOnOrder
		if h%2 == 0 {
			availability = models.AvailabilityInStock
		}
		estimates = append(estimates, models.AnalogEstimate{
			PartNumber:     analog,
			EstimatedPrice: base.Add(decimal.NewFromInt(int64(h % analogSpread))),
			Availability:   availability,
		})
	}
	return estimates
}

// AnalogHash is the xxHash64 of the analog id. It is independent of the quote digest.
func AnalogHash(analog string) uint64 {
	return xxhash.Sum64String(analog)
}
