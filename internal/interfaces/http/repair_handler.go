package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/refnet-api/internal/application/dto"
	"github.com/jhoicas/refnet-api/internal/application/finance"
)

// RepairHandler acciones del técnico.
type RepairHandler struct {
	uc *finance.UseCase
}

// NewRepairHandler construye el handler.
func NewRepairHandler(uc *finance.UseCase) *RepairHandler {
	return &RepairHandler{uc: uc}
}

// Complete godoc
// @Summary      Completar reparación
// @Tags         repairs
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la reparación"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/repairs/{id}/complete [post]
func (h *RepairHandler) Complete(c *fiber.Ctx) error {
	if err := h.uc.CompleteRepair(c.UserContext(), GetSession(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Repair marked as completed"})
}
