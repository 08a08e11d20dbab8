package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"parts-analyzer/internal/models"
	"parts-analyzer/pkg/logger"
	"parts-analyzer/pkg/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrNoPartNumbers = errors.New("no part numbers found in message")
	ErrNoResults     = errors.New("no results for requested parts")
)

// DisplayedSummaries is how many summaries a reply shows.
const DisplayedSummaries = 3

// PartSearcher fans a query out to suppliers and merges the quotes per part.
type PartSearcher interface {
	Run(ctx context.Context, partNumbers []string, suppliers []models.SupplierCode) []*models.PartRecord
}

// ReportRenderer writes a spreadsheet report and returns its file name.
type ReportRenderer interface {
	Generate(analyses []*models.PriceAnalysis, requester *models.Requester) (string, error)
}

// SearchRequestLog persists the audit record of a completed search.
type SearchRequestLog interface {
	Create(ctx context.Context, req *models.SearchRequest) error
}

// SearchResult is everything a transport needs to answer one chat message.
type SearchResult struct {
	RequestID   uuid.UUID
	Query       models.SearchQuery
	Analyses    []*models.PriceAnalysis
	Summaries   []models.PartSummary
	ReportFile  string
	PartialFail bool
}

type AnalyzerService struct {
	registry   *models.SupplierRegistry
	extractor  *ParameterExtractor
	searcher   PartSearcher
	aggregator *AggregationEngine
	summarizer Summarizer
	reports    ReportRenderer
	requests   SearchRequestLog
	logger     *zap.Logger
}

func NewAnalyzerService(
	registry *models.SupplierRegistry,
	extractor *ParameterExtractor,
	searcher PartSearcher,
	aggregator *AggregationEngine,
	summarizer Summarizer,
	reports ReportRenderer,
	requests SearchRequestLog,
	logger *zap.Logger,
) *AnalyzerService {
	return &AnalyzerService{
		registry:   registry,
		extractor:  extractor,
		searcher:   searcher,
		aggregator: aggregator,
		summarizer: summarizer,
		reports:    reports,
		requests:   requests,
		logger:     logger,
	}
}

// HandleMessage processes a chat message: extract -> search -> analyze -> summarize -> report -> audit log
func (s *AnalyzerService) HandleMessage(ctx context.Context, requester models.Requester, text string) (*SearchResult, error) {
	log := logger.FromContext(ctx, s.logger).With(zap.Int64("user_id", requester.UserID))
	log.Info("Message received", zap.String("text", text))

	// 1. Extract search parameters
	query := s.extractor.Parse(text)
	if len(query.PartNumbers) == 0 {
		metrics.RecordSearch("no_part_numbers")
		return nil, ErrNoPartNumbers
	}

	log.Info("Searching parts",
		zap.Int("parts", len(query.PartNumbers)),
		zap.Strings("suppliers", s.registry.Names(query.Suppliers)),
	)

	// 2. Search suppliers
	records := s.searcher.Run(ctx, query.PartNumbers, query.Suppliers)
	if len(records) == 0 {
		metrics.RecordSearch("no_results")
		return nil, ErrNoResults
	}
	if len(records) < len(query.PartNumbers) {
		log.Warn("Some parts were not found",
			zap.Int("requested", len(query.PartNumbers)),
			zap.Int("found", len(records)),
		)
	}

	// 3. Analyze prices
	analyses := make([]*models.PriceAnalysis, 0, len(records))
	for _, record := range records {
		if analysis := s.aggregator.Analyze(record); analysis != nil {
			analyses = append(analyses, analysis)
		}
	}
	if len(analyses) == 0 {
		metrics.RecordSearch("no_results")
		return nil, ErrNoResults
	}

	// 4. AI summaries
	var summaries []models.PartSummary
	if s.summarizer != nil {
		summaries = s.summarizer.Summarize(ctx, analyses)
	}
	if len(summaries) > DisplayedSummaries {
		summaries = summaries[:DisplayedSummaries]
	}

	// 5. Spreadsheet report
	reportFile, err := s.reports.Generate(analyses, &requester)
	if err != nil {
		metrics.RecordSearch("error")
		return nil, fmt.Errorf("failed to generate report: %w", err)
	}

	// 6. Audit log
	req := &models.SearchRequest{
		ID:           uuid.New(),
		UserID:       requester.UserID,
		Username:     requester.Username,
		PartNumbers:  query.PartNumbers,
		Suppliers:    query.Suppliers,
		ResultsCount: len(analyses),
		CreatedAt:    time.Now(),
	}
	if s.requests != nil {
		if err := s.requests.Create(ctx, req); err != nil {
			log.Error("Error logging search request", zap.Error(err))
		}
	}

	metrics.RecordSearch("ok")
	log.Info("Search completed",
		zap.String("request_id", req.ID.String()),
		zap.Int("parts", len(analyses)),
		zap.String("report", reportFile),
	)

	return &SearchResult{
		RequestID:   req.ID,
		Query:       query,
		Analyses:    analyses,
		Summaries:   summaries,
		ReportFile:  reportFile,
		PartialFail: len(records) < len(query.PartNumbers),
	}, nil
}
