package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/refnet-api/internal/application/dispatch"
	"github.com/jhoicas/refnet-api/internal/application/dto"
)

// DriverHandler asignaciones del conductor autenticado.
type DriverHandler struct {
	uc *dispatch.UseCase
}

// NewDriverHandler construye el handler.
func NewDriverHandler(uc *dispatch.UseCase) *DriverHandler {
	return &DriverHandler{uc: uc}
}

// List godoc
// @Summary      Mis despachos
// @Tags         driver
// @Security     Bearer
// @Produce      json
// @Param        page  query  int  false  "Página (desde 1)"
// @Success      200  {object}  dto.DispatchListResponse
// @Router       /api/driver/dispatches [get]
func (h *DriverHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListForDriver(c.UserContext(), GetSession(c), c.QueryInt("page", 1))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DispatchListResponse{
		Items: dto.NewDispatchResponses(out.Page.Items),
		Page:  pageOf(out.Page),
		Stats: dto.DispatchStatsResponse{
			Total:     out.Stats.Total,
			Pending:   out.Stats.Pending,
			InTransit: out.Stats.InTransit,
			Delivered: out.Stats.Delivered,
		},
	})
}

// Accept godoc
// @Summary      Aceptar despacho
// @Tags         driver
// @Security     Bearer
// @Produce      json
// @Param        order_id  path  string  true  "ID del pedido"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/driver/dispatches/{order_id}/accept [post]
func (h *DriverHandler) Accept(c *fiber.Ctx) error {
	if err := h.uc.Accept(c.UserContext(), GetSession(c), c.Params("order_id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: dispatch.MsgAccepted})
}

// Decline godoc
// @Summary      Rechazar despacho
// @Tags         driver
// @Security     Bearer
// @Produce      json
// @Param        order_id  path  string  true  "ID del pedido"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/driver/dispatches/{order_id}/decline [post]
func (h *DriverHandler) Decline(c *fiber.Ctx) error {
	if err := h.uc.Decline(c.UserContext(), GetSession(c), c.Params("order_id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: dispatch.MsgDeclined})
}

// Complete godoc
// @Summary      Marcar como entregado
// @Tags         driver
// @Security     Bearer
// @Produce      json
// @Param        order_id  path  string  true  "ID del pedido"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/driver/dispatches/{order_id}/complete [post]
func (h *DriverHandler) Complete(c *fiber.Ctx) error {
	if err := h.uc.Complete(c.UserContext(), GetSession(c), c.Params("order_id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: dispatch.MsgCompleted})
}
