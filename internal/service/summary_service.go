package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"parts-analyzer/internal/models"
	"parts-analyzer/pkg/config"
	"parts-analyzer/pkg/logger"
	"parts-analyzer/pkg/metrics"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"
)

// SummaryFallback replaces a summary whenever the LLM call fails.
const SummaryFallback = "AI анализ временно недоступен."

// Summarizer produces natural-language commentary for price analyses.
type Summarizer interface {
	Summarize(ctx context.Context, analyses []*models.PriceAnalysis) []models.PartSummary
}

type completer func(ctx context.Context, prompt string) (string, error)

type SummaryService struct {
	client   *gigago.Client
	complete completer
	max      int
	timeout  time.Duration
	logger   *zap.Logger
}

func buildSystemInstruction() string {
	return `Ты эксперт по промышленным запчастям и закупкам. Ты получаешь цены нескольких поставщиков на одну запчасть и помогаешь инженеру выбрать предложение.

Правила:
- Отвечай на русском языке, 3-4 предложения.
- Учитывай соотношение цена / срок поставки / бренд.
- Называй конкретного поставщика и бренд, которые рекомендуешь.
- Не выдумывай цены, которых нет в данных.`
}

// NewSummaryService connects to GigaChat. Without an API key it returns a
// service that produces no summaries.
func NewSummaryService(cfg *config.GigaChatConfig, logger *zap.Logger) (*SummaryService, error) {
	if cfg.APIKey == "" {
		logger.Warn("GIGACHAT_API_KEY is empty, AI summaries are disabled")
		return &SummaryService{logger: logger}, nil
	}

	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(context.Background(), cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	model := client.GenerativeModel(cfg.Model)
	model.SystemInstruction = buildSystemInstruction()
	model.Temperature = 0.3

	complete := func(ctx context.Context, prompt string) (string, error) {
		resp, err := model.Generate(ctx, []gigago.Message{
			{Role: gigago.RoleUser, Content: prompt},
		})
		if err != nil {
			return "", fmt.Errorf("failed to generate summary: %w", err)
		}
		if len(resp.Choices) == 0 {
			return "", errors.New("no response from LLM")
		}
		return resp.Choices[0].Message.Content, nil
	}

	logger.Info("Using GigaChat model", zap.String("model", cfg.Model))

	s := newSummaryService(complete, cfg.MaxSummaries, cfg.RequestTimeout, logger)
	s.client = client
	return s, nil
}

func newSummaryService(complete completer, max int, timeout time.Duration, logger *zap.Logger) *SummaryService {
	return &SummaryService{
		complete: complete,
		max:      max,
		timeout:  timeout,
		logger:   logger,
	}
}

func (s *SummaryService) Enabled() bool {
	return s.complete != nil
}

// Summarize handles at most the configured number of analyses. Each failing
// item gets SummaryFallback; the batch never fails.
func (s *SummaryService) Summarize(ctx context.Context, analyses []*models.PriceAnalysis) []models.PartSummary {
	if !s.Enabled() {
		return nil
	}
	if s.max > 0 && len(analyses) > s.max {
		analyses = analyses[:s.max]
	}

	log := logger.FromContext(ctx, s.logger)
	summaries := make([]models.PartSummary, 0, len(analyses))
	for _, a := range analyses {
		text, err := s.summarizeOne(ctx, a)
		if err != nil {
			metrics.RecordSummaryFallback()
			log.Error("GigaChat summary failed", zap.String("part_number", a.PartNumber), zap.Error(err))
			summaries = append(summaries, models.PartSummary{PartNumber: a.PartNumber, Text: SummaryFallback, Fallback: true})
			continue
		}
		summaries = append(summaries, models.PartSummary{PartNumber: a.PartNumber, Text: text})
	}
	return summaries
}

func (s *SummaryService) summarizeOne(ctx context.Context, a *models.PriceAnalysis) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	text, err := s.complete(ctx, buildSummaryPrompt(a))
	if err != nil {
		return "", err
	}
	text = cleanModelText(text)
	if text == "" {
		return "", errors.New("empty response from LLM")
	}
	return text, nil
}

func buildSummaryPrompt(a *models.PriceAnalysis) string {
	var prices strings.Builder
	for _, q := range a.AllQuotes {
		fmt.Fprintf(&prices, "- %s: %d руб., %d дней (%s)\n", q.SupplierName, q.Price, q.DeliveryDays, q.Brand)
	}

	return fmt.Sprintf(`Проанализируй данные по промышленной запчасти:

Каталожный номер: %s
Наименование: %s
Бренды: %s

Цены от поставщиков:
%s
Минимальная цена: %d руб. (%s)
Медианная цена: %d руб. (%s)

Сделай краткий анализ (3-4 предложения) с рекомендацией по выбору оптимального варианта.`,
		a.PartNumber,
		a.Name,
		strings.Join(a.Brands, ", "),
		prices.String(),
		a.MinQuote.Price, a.MinQuote.SupplierName,
		a.MedianQuote.Price, a.MedianQuote.SupplierName,
	)
}

func (s *SummaryService) Close() error {
	if s.client != nil {
		s.client.Close()
	}
	return nil
}
