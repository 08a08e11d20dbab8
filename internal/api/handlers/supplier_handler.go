package handlers

import (
	"parts-analyzer/internal/dto"
	"parts-analyzer/internal/models"

	"github.com/gofiber/fiber/v2"
)

type SupplierHandler struct {
	registry *models.SupplierRegistry
}

func NewSupplierHandler(registry *models.SupplierRegistry) *SupplierHandler {
	return &SupplierHandler{registry: registry}
}

// ListSuppliers godoc
// @Summary List suppliers
// @Description Registered suppliers and the tags that select them
// @Tags suppliers
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.SupplierResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /suppliers [get]
func (h *SupplierHandler) ListSuppliers(c *fiber.Ctx) error {
	all := h.registry.All()
	resp := make([]dto.SupplierResponse, 0, len(all))
	for _, s := range all {
		resp = append(resp, toSupplierResponse(s))
	}
	return c.JSON(resp)
}

func toSupplierResponse(s models.Supplier) dto.SupplierResponse {
	tags := make([]string, len(s.Aliases))
	for i, a := range s.Aliases {
		tags[i] = "!" + a
	}
	return dto.SupplierResponse{
		Code:    string(s.Code),
		Name:    s.Name,
		Website: s.Website,
		Tags:    tags,
	}
}
