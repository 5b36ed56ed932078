package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/refnet-api/internal/application/dto"
	"github.com/jhoicas/refnet-api/internal/application/restock"
	"github.com/jhoicas/refnet-api/internal/domain/entity"
)

// SupplierHandler solicitudes de reposición del proveedor.
type SupplierHandler struct {
	uc *restock.UseCase
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *restock.UseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

// List godoc
// @Summary      Listar reposiciones (proveedor)
// @Tags         supplier
// @Security     Bearer
// @Produce      json
// @Param        filter  query  string  false  "All | pending | accepted | rejected | completed"
// @Success      200  {object}  dto.SupplierRestockListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/supplier/restocks [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("filter", "All"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SupplierRestockListResponse{
		Items: dto.NewRestockResponses(out.Items),
		Stats: dto.SupplierStatsResponse{
			Total:     out.Stats.Total,
			Pending:   out.Stats.Pending,
			Accepted:  out.Stats.Accepted,
			Completed: out.Stats.Completed,
		},
	})
}

// Create godoc
// @Summary      Pedir reposición
// @Tags         supplier
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRestockRequest  true  "Producto y cantidad"
// @Success      201   {object}  dto.RestockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/supplier/restocks [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRestockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateRequest(c.UserContext(), GetSession(c), in.ProductID, in.Amount)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewRestockResponse(out))
}

// UpdateStatus godoc
// @Summary      Cambiar estado logístico
// @Description  Al aceptar se suma la cantidad al stock del producto.
// @Tags         supplier
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                          true  "ID de la solicitud"
// @Param        body  body  dto.UpdateRestockStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.RestockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/supplier/restocks/{id}/status [patch]
func (h *SupplierHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateRestockStatusRequest
	if ok, err := bindBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.UpdateStatus(c.UserContext(), GetSession(c), c.Params("id"), entity.RestockStatus(in.Status))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewRestockResponse(out))
}
