package handlers

import (
	"context"
	"errors"
	"strings"

	"parts-analyzer/internal/dto"
	"parts-analyzer/internal/models"
	"parts-analyzer/internal/service"
	"parts-analyzer/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type MessageAnalyzer interface {
	HandleMessage(ctx context.Context, requester models.Requester, text string) (*service.SearchResult, error)
}

type SearchHandler struct {
	analyzer   MessageAnalyzer
	registry   *models.SupplierRegistry
	reportsURL string
	logger     *zap.Logger
}

func NewSearchHandler(analyzer MessageAnalyzer, registry *models.SupplierRegistry, reportsURL string, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		analyzer:   analyzer,
		registry:   registry,
		reportsURL: strings.TrimSuffix(reportsURL, "/"),
		logger:     logger,
	}
}

// Search godoc
// @Summary Search parts
// @Description Extract part numbers and supplier tags from a chat message, collect quotes, analyze prices and build a report
// @Tags search
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.SearchRequest true "Chat message"
// @Success 200 {object} dto.SearchResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /search [post]
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	requester, err := getRequester(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "unauthorized"})
	}

	var req dto.SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid_request", Message: "Invalid request body"})
	}

	result, err := h.analyzer.HandleMessage(c.UserContext(), requester, req.Text)
	switch {
	case errors.Is(err, service.ErrNoPartNumbers):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Error:   "no_part_numbers",
			Message: "Не найдены каталожные номера запчастей. Пример: BP-12345-67890, MC-54321-09876",
		})
	case errors.Is(err, service.ErrNoResults):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error:   "no_results",
			Message: "Не удалось найти информацию по указанным запчастям.",
		})
	case err != nil:
		h.logger.Error("Failed to process search", zap.Error(err), zap.Int64("user_id", requester.UserID))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error:   "processing_error",
			Message: "Произошла ошибка при обработке запроса. Попробуйте позже.",
		})
	}

	suppliers := make([]dto.SupplierResponse, 0, len(result.Query.Suppliers))
	for _, code := range result.Query.Suppliers {
		suppliers = append(suppliers, h.supplierResponse(code))
	}

	return c.JSON(dto.SearchResponse{
		RequestID:      result.RequestID.String(),
		PartNumbers:    result.Query.PartNumbers,
		Suppliers:      suppliers,
		ReportURL:      h.reportsURL + "/" + result.ReportFile,
		PartialFailure: result.PartialFail,
		Analyses:       result.Analyses,
		Summaries:      result.Summaries,
	})
}

func (h *SearchHandler) supplierResponse(code models.SupplierCode) dto.SupplierResponse {
	s, ok := h.registry.Get(code)
	if !ok {
		return dto.SupplierResponse{Code: string(code), Name: string(code)}
	}
	return toSupplierResponse(s)
}

func getRequester(c *fiber.Ctx) (models.Requester, error) {
	userID, ok := c.Locals(middleware.LocalUserID).(int64)
	if !ok {
		return models.Requester{}, fiber.ErrUnauthorized
	}
	username, _ := c.Locals(middleware.LocalUsername).(string)
	return models.Requester{UserID: userID, Username: username}, nil
}
