package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"parts-analyzer/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSummarizer struct {
	calls int
}

func (s *stubSummarizer) Summarize(_ context.Context, analyses []*models.PriceAnalysis) []models.PartSummary {
	s.calls++
	out := make([]models.PartSummary, 0, len(analyses))
	for _, a := range analyses {
		out = append(out, models.PartSummary{PartNumber: a.PartNumber, Text: "ok"})
	}
	return out
}

type stubReports struct {
	analyses  []*models.PriceAnalysis
	requester *models.Requester
	err       error
}

func (r *stubReports) Generate(analyses []*models.PriceAnalysis, requester *models.Requester) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	r.analyses = analyses
	r.requester = requester
	return "report.xlsx", nil
}

type stubRequestLog struct {
	mu   sync.Mutex
	reqs []*models.SearchRequest
	err  error
}

func (l *stubRequestLog) Create(_ context.Context, req *models.SearchRequest) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return l.err
	}
	l.reqs = append(l.reqs, req)
	return nil
}

type analyzerDeps struct {
	summarizer *stubSummarizer
	reports    *stubReports
	requests   *stubRequestLog
}

func newTestAnalyzer(wrappers ...func(SupplierGateway) SupplierGateway) (*AnalyzerService, *analyzerDeps) {
	registry := models.DefaultSupplierRegistry()
	deps := &analyzerDeps{
		summarizer: &stubSummarizer{},
		reports:    &stubReports{},
		requests:   &stubRequestLog{},
	}
	s := NewAnalyzerService(
		registry,
		NewParameterExtractor(registry),
		newTestOrchestrator(&fakeStore{}, zap.NewNop(), wrappers...),
		NewAggregationEngine(registry),
		deps.summarizer,
		deps.reports,
		deps.requests,
		zap.NewNop(),
	)
	return s, deps
}

var testRequester = models.Requester{UserID: 42, Username: "engineer"}

func TestHandleMessageTwoParts(t *testing.T) {
	s, deps := newTestAnalyzer()

	result, err := s.HandleMessage(context.Background(), testRequester, "BP-12345-67890, MC-54321-09876")
	require.NoError(t, err)

	assert.Equal(t, []string{"BP-12345-67890", "MC-54321-09876"}, result.Query.PartNumbers)
	assert.Equal(t, allSuppliers(), result.Query.Suppliers)
	require.Len(t, result.Analyses, 2)
	for _, a := range result.Analyses {
		assert.Len(t, a.AllQuotes, 6)
	}
	assert.Equal(t, int64(23646), result.Analyses[0].MinQuote.Price)
	assert.Equal(t, int64(14298), result.Analyses[1].MinQuote.Price)
	assert.Equal(t, "report.xlsx", result.ReportFile)
	assert.False(t, result.PartialFail)

	assert.Equal(t, &testRequester, deps.reports.requester)
	require.Len(t, deps.requests.reqs, 1)
	logged := deps.requests.reqs[0]
	assert.Equal(t, result.RequestID, logged.ID)
	assert.Equal(t, int64(42), logged.UserID)
	assert.Equal(t, 2, logged.ResultsCount)
}

func TestHandleMessageSupplierTag(t *testing.T) {
	s, _ := newTestAnalyzer()

	result, err := s.HandleMessage(context.Background(), testRequester, "!isup BP-12345-67890")
	require.NoError(t, err)

	assert.Equal(t, []models.SupplierCode{models.SupplierIndustrialSupply}, result.Query.Suppliers)
	assert.Equal(t, []string{"BP-12345-67890"}, result.Query.PartNumbers)
	require.Len(t, result.Analyses, 1)
	assert.Len(t, result.Analyses[0].AllQuotes, 2)
}

func TestHandleMessageBlankText(t *testing.T) {
	s, deps := newTestAnalyzer()

	for _, text := range []string{"", "   ", "\n\t"} {
		result, err := s.HandleMessage(context.Background(), testRequester, text)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrNoPartNumbers)
	}
	assert.Empty(t, deps.requests.reqs)
}

func TestHandleMessageTagsOnly(t *testing.T) {
	s, deps := newTestAnalyzer()

	result, err := s.HandleMessage(context.Background(), testRequester, "!industrialsupply !machineparts")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrNoPartNumbers)
	assert.Zero(t, deps.summarizer.calls)
	assert.Empty(t, deps.requests.reqs)
}

func TestHandleMessageNoResults(t *testing.T) {
	allFail := func(g SupplierGateway) SupplierGateway {
		return &failingGateway{SupplierGateway: g, failOn: map[string]error{"X-1": errors.New("down")}}
	}
	s, deps := newTestAnalyzer(allFail)

	_, err := s.HandleMessage(context.Background(), testRequester, "X-1")

	assert.ErrorIs(t, err, ErrNoResults)
	assert.Nil(t, deps.reports.analyses)
}

func TestHandleMessagePartialFailure(t *testing.T) {
	failSecond := func(g SupplierGateway) SupplierGateway {
		return &failingGateway{SupplierGateway: g, failOn: map[string]error{"B-2": errors.New("timeout")}}
	}
	s, deps := newTestAnalyzer(failSecond)

	result, err := s.HandleMessage(context.Background(), testRequester, "A-1, B-2, C-3")
	require.NoError(t, err)

	assert.True(t, result.PartialFail)
	require.Len(t, result.Analyses, 2)
	assert.Equal(t, "A-1", result.Analyses[0].PartNumber)
	assert.Equal(t, "C-3", result.Analyses[1].PartNumber)
	assert.Equal(t, 2, deps.requests.reqs[0].ResultsCount)
	assert.Equal(t, []string{"A-1", "B-2", "C-3"}, deps.requests.reqs[0].PartNumbers)
}

func TestHandleMessageShowsThreeSummaries(t *testing.T) {
	s, _ := newTestAnalyzer()

	result, err := s.HandleMessage(context.Background(), testRequester, "P-1, P-2, P-3, P-4, P-5")
	require.NoError(t, err)

	require.Len(t, result.Summaries, DisplayedSummaries)
	assert.Equal(t, "P-1", result.Summaries[0].PartNumber)
	assert.Len(t, result.Analyses, 5)
}

func TestHandleMessageReportFailure(t *testing.T) {
	s, deps := newTestAnalyzer()
	deps.reports.err = errors.New("disk full")

	_, err := s.HandleMessage(context.Background(), testRequester, "BP-12345-67890")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoResults)
	assert.Empty(t, deps.requests.reqs)
}

func TestHandleMessageAuditFailureIsNotFatal(t *testing.T) {
	s, deps := newTestAnalyzer()
	deps.requests.err = errors.New("db unreachable")

	result, err := s.HandleMessage(context.Background(), testRequester, "BP-12345-67890")

	require.NoError(t, err)
	assert.Len(t, result.Analyses, 1)
}
