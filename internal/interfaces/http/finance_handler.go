package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/refnet-api/internal/application/dto"
	"github.com/jhoicas/refnet-api/internal/application/finance"
	"github.com/jhoicas/refnet-api/internal/application/ledger"
)

// FinanceHandler pantalla del gerente financiero: reposiciones, libro, pedidos y reparaciones.
type FinanceHandler struct {
	ledger  *ledger.UseCase
	finance *finance.UseCase
}

// NewFinanceHandler construye el handler.
func NewFinanceHandler(l *ledger.UseCase, f *finance.UseCase) *FinanceHandler {
	return &FinanceHandler{ledger: l, finance: f}
}

// ListRestocks godoc
// @Summary      Listar solicitudes de reposición
// @Description  Filtro por aprobación financiera (All, pending, approved, declined); 3 por página.
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        filter  query  string  false  "All | pending | approved | declined"
// @Param        page    query  int     false  "Página (desde 1)"
// @Success      200  {object}  dto.RestockListResponse
// @Router       /api/finance/restocks [get]
func (h *FinanceHandler) ListRestocks(c *fiber.Ctx) error {
	out, err := h.ledger.ListRestocks(c.UserContext(), c.Query("filter", "All"), c.QueryInt("page", 1))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.RestockListResponse{
		Items: dto.NewRestockResponses(out.Page.Items),
		Page:  pageOf(out.Page),
		Stats: dto.RestockStatsResponse{
			Total:    out.Stats.Total,
			Pending:  out.Stats.Pending,
			Approved: out.Stats.Approved,
			Declined: out.Stats.Declined,
		},
	})
}

// ApproveRestock godoc
// @Summary      Aprobar reposición
// @Description  Registra el costo en el libro y marca la solicitud como aprobada.
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.ApprovalResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse  "RECONCILIATION: asiento escrito, estado sin cambiar"
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/finance/restocks/{id}/approve [post]
func (h *FinanceHandler) ApproveRestock(c *fiber.Ctx) error {
	res, err := h.ledger.ApproveRestock(c.UserContext(), GetSession(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ApprovalResponse{
		Message: ledger.MsgApproved,
		Request: dto.NewRestockResponse(res.Request),
		Record:  dto.NewFinancialRecordResponse(res.Record),
		Resumed: res.Resumed,
	})
}

// DeclineRestock godoc
// @Summary      Rechazar reposición
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/finance/restocks/{id}/decline [post]
func (h *FinanceHandler) DeclineRestock(c *fiber.Ctx) error {
	if err := h.ledger.DeclineRestock(c.UserContext(), GetSession(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: ledger.MsgDeclined})
}

// Ledger godoc
// @Summary      Libro contable
// @Description  Asientos del más reciente al más antiguo.
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.FinancialRecordResponse
// @Router       /api/finance/ledger [get]
func (h *FinanceHandler) Ledger(c *fiber.Ctx) error {
	recs, err := h.ledger.ListRecords(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewFinancialRecordResponses(recs))
}

// Summary godoc
// @Summary      Resumen financiero
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SummaryResponse
// @Router       /api/finance/summary [get]
func (h *FinanceHandler) Summary(c *fiber.Ctx) error {
	s, err := h.ledger.Summary(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SummaryResponse{
		Balance:      s.Balance,
		Revenue:      s.Revenue,
		Expenses:     s.Expenses,
		Profit:       s.Profit,
		RevenuePct:   s.RevenuePct,
		ExpensesPct:  s.ExpensesPct,
		BalanceLabel: s.BalanceLabel,
		ProfitLabel:  s.ProfitLabel,
		Records:      s.Records,
	})
}

// ListOrders godoc
// @Summary      Listar pedidos
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        filter  query  string  false  "all-orders | pending | approved | declined"
// @Param        page    query  int     false  "Página (desde 1)"
// @Success      200  {object}  dto.OrderListResponse
// @Router       /api/finance/orders [get]
func (h *FinanceHandler) ListOrders(c *fiber.Ctx) error {
	p, err := h.finance.ListOrders(c.UserContext(), c.Query("filter", finance.FilterAllOrders), c.QueryInt("page", 1))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OrderListResponse{Items: dto.NewOrderResponses(p.Items), Page: pageOf(p)})
}

// UpdateOrderStatus godoc
// @Summary      Cambiar estado de pedido
// @Tags         finance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID del pedido"
// @Param        body  body  dto.UpdateOrderStatusRequest  true  "Nuevo estado"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/finance/orders/{id}/status [patch]
func (h *FinanceHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if ok, err := bindBody(c, &in); !ok {
		return err
	}
	if err := h.finance.UpdateOrderStatus(c.UserContext(), GetSession(c), c.Params("id"), in.Status); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Order status updated to " + in.Status})
}

// ListRepairs godoc
// @Summary      Listar reparaciones
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        filter  query  string  false  "All | pending | inprogress | completed"
// @Param        page    query  int     false  "Página (desde 1)"
// @Success      200  {object}  dto.RepairListResponse
// @Router       /api/finance/repairs [get]
func (h *FinanceHandler) ListRepairs(c *fiber.Ctx) error {
	p, err := h.finance.ListRepairs(c.UserContext(), c.Query("filter", "All"), c.QueryInt("page", 1))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.RepairListResponse{Items: dto.NewRepairResponses(p.Items), Page: pageOf(p)})
}

// ApproveRepair godoc
// @Summary      Aprobar reparación
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la reparación"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/finance/repairs/{id}/approve [post]
func (h *FinanceHandler) ApproveRepair(c *fiber.Ctx) error {
	if err := h.finance.ApproveRepair(c.UserContext(), GetSession(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: finance.MsgRepairApproved})
}
