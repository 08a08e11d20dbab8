package service

import (
	"context"
	"fmt"

	"parts-analyzer/internal/models"
	"parts-analyzer/pkg/logger"
	"parts-analyzer/pkg/metrics"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// PartStore persists a searched part: descriptive fields are upserted by part
// number, quotes are appended to the price history.
type PartStore interface {
	Save(ctx context.Context, record *models.PartRecord) error
}

// SearchOrchestrator fans a batch of part numbers out to the supplier gateways.
type SearchOrchestrator struct {
	catalog  Catalog
	gateways GatewaySet
	store    PartStore
	workers  int
	logger   *zap.Logger
}

func NewSearchOrchestrator(catalog Catalog, gateways GatewaySet, store PartStore, workers int, logger *zap.Logger) *SearchOrchestrator {
	if workers < 1 {
		workers = 1
	}
	return &SearchOrchestrator{
		catalog:  catalog,
		gateways: gateways,
		store:    store,
		workers:  workers,
		logger:   logger,
	}
}

// Run processes every part number and returns the records that succeeded, in
// input order. A failing part is logged and left out; callers detect partial
// failure by comparing lengths.
func (o *SearchOrchestrator) Run(ctx context.Context, partNumbers []string, suppliers []models.SupplierCode) []*models.PartRecord {
	log := logger.FromContext(ctx, o.logger)
	results := make([]*models.PartRecord, len(partNumbers))

	var g errgroup.Group
	g.SetLimit(o.workers)
	for i, partNumber := range partNumbers {
		g.Go(func() error {
			record, err := o.processPart(ctx, partNumber, suppliers)
			if err != nil {
				metrics.RecordPart("failed")
				log.Error("Error searching part", zap.String("part_number", partNumber), zap.Error(err))
				return nil
			}
			results[i] = record
			return nil
		})
	}
	_ = g.Wait()

	records := make([]*models.PartRecord, 0, len(results))
	for _, r := range results {
		if r != nil {
			records = append(records, r)
		}
	}
	return records
}

func (o *SearchOrchestrator) processPart(ctx context.Context, partNumber string, suppliers []models.SupplierCode) (record *models.PartRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			record, err = nil, fmt.Errorf("panic while processing part: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entry := o.catalog.Lookup(partNumber)
	quotes, err := o.collectQuotes(ctx, partNumber, suppliers)
	if err != nil {
		return nil, err
	}

	record = &models.PartRecord{
		PartNumber:  partNumber,
		Name:        entry.Name,
		Description: entry.Description,
		Brands:      entry.Brands,
		Analogs:     entry.Analogs,
		Quotes:      quotes,
	}

	if err := o.store.Save(ctx, record); err != nil {
		metrics.RecordPart("persist_failed")
		logger.FromContext(ctx, o.logger).Warn("Failed to save part data",
			zap.String("part_number", partNumber), zap.Error(err))
		return record, nil
	}

	metrics.RecordPart("ok")
	return record, nil
}

// collectQuotes queries all suppliers concurrently; the first failure cancels the rest.
func (o *SearchOrchestrator) collectQuotes(ctx context.Context, partNumber string, suppliers []models.SupplierCode) ([]models.SupplierQuotes, error) {
	gateways := make([]SupplierGateway, len(suppliers))
	for i, code := range suppliers {
		gateway, ok := o.gateways[code]
		if !ok {
			return nil, fmt.Errorf("no gateway registered for supplier %q", code)
		}
		gateways[i] = gateway
	}

	out := make([]models.SupplierQuotes, len(suppliers))
	g, gctx := errgroup.WithContext(ctx)
	for i, code := range suppliers {
		gateway := gateways[i]
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("supplier %s panicked: %v", code, r)
				}
			}()
			quotes, err := gateway.Quote(gctx, partNumber)
			if err != nil {
				return fmt.Errorf("supplier %s: %w", code, err)
			}
			out[i] = models.SupplierQuotes{Supplier: code, Quotes: quotes}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
