package handlers

import (
	"context"
	"strings"
	"time"

	"parts-analyzer/internal/dto"
	"parts-analyzer/internal/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type HistoryReader interface {
	PartHistory(ctx context.Context, partNumber string, days int) ([]models.PriceHistoryDay, error)
	WindowDays() int
}

type HistoryHandler struct {
	history HistoryReader
	logger  *zap.Logger
}

func NewHistoryHandler(history HistoryReader, logger *zap.Logger) *HistoryHandler {
	return &HistoryHandler{
		history: history,
		logger:  logger,
	}
}

// GetHistory godoc
// @Summary Get price history
// @Description Price history of a part for the last N days, grouped by date (at most 10 records across 5 dates)
// @Tags history
// @Produce json
// @Security Bearer
// @Param part_number path string true "Part number"
// @Param days query int false "Window in days (1-365)" default(30)
// @Success 200 {object} dto.HistoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /history/{part_number} [get]
func (h *HistoryHandler) GetHistory(c *fiber.Ctx) error {
	partNumber := c.Params("part_number")
	if partNumber == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid_request", Message: "part_number is required"})
	}

	days := c.QueryInt("days", h.history.WindowDays())
	if days < 1 || days > 365 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid_request", Message: "days must be between 1 and 365"})
	}

	history, err := h.history.PartHistory(c.UserContext(), partNumber, days)
	if err != nil {
		h.logger.Error("Failed to get price history", zap.String("part_number", partNumber), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error:   "processing_error",
			Message: "Ошибка при получении истории.",
		})
	}

	resp := dto.HistoryResponse{
		PartNumber: strings.ToUpper(strings.TrimSpace(partNumber)),
		Days:       days,
		History:    make([]dto.HistoryDayResponse, 0, len(history)),
	}
	for _, day := range history {
		d := dto.HistoryDayResponse{Date: day.Date, Entries: make([]dto.HistoryEntryResponse, 0, len(day.Entries))}
		for _, e := range day.Entries {
			d.Entries = append(d.Entries, dto.HistoryEntryResponse{
				Supplier:     string(e.Supplier),
				SupplierName: e.SupplierName,
				Brand:        e.Brand,
				Price:        e.Price,
				DeliveryDays: e.DeliveryDays,
				Currency:     e.Currency,
				FoundAt:      e.FoundAt.Format(time.RFC3339),
			})
		}
		resp.History = append(resp.History, d)
	}

	return c.JSON(resp)
}
