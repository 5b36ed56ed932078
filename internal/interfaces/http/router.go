package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/refnet-api/internal/application/dispatch"
	"github.com/jhoicas/refnet-api/internal/application/finance"
	"github.com/jhoicas/refnet-api/internal/application/ledger"
	"github.com/jhoicas/refnet-api/internal/application/restock"
	"github.com/jhoicas/refnet-api/internal/application/session"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LedgerUC   *ledger.UseCase
	FinanceUC  *finance.UseCase
	RestockUC  *restock.UseCase
	DispatchUC *dispatch.UseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Todas requieren Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Finanzas
	fin := api.Group("/finance", RequireRole(session.RoleFinanceManager))
	financeHandler := NewFinanceHandler(deps.LedgerUC, deps.FinanceUC)
	fin.Get("/restocks", financeHandler.ListRestocks)
	fin.Post("/restocks/:id/approve", financeHandler.ApproveRestock)
	fin.Post("/restocks/:id/decline", financeHandler.DeclineRestock)
	fin.Get("/ledger", financeHandler.Ledger)
	fin.Get("/summary", financeHandler.Summary)
	fin.Get("/orders", financeHandler.ListOrders)
	fin.Patch("/orders/:id/status", financeHandler.UpdateOrderStatus)
	fin.Get("/repairs", financeHandler.ListRepairs)
	fin.Post("/repairs/:id/approve", financeHandler.ApproveRepair)

	// Técnico
	repairs := api.Group("/repairs", RequireRole(session.RoleTechnician))
	repairHandler := NewRepairHandler(deps.FinanceUC)
	repairs.Post("/:id/complete", repairHandler.Complete)

	// Proveedor
	sup := api.Group("/supplier", RequireRole(session.RoleSupplier))
	supplierHandler := NewSupplierHandler(deps.RestockUC)
	sup.Get("/restocks", supplierHandler.List)
	sup.Post("/restocks", supplierHandler.Create)
	sup.Patch("/restocks/:id/status", supplierHandler.UpdateStatus)

	// Conductor
	drv := api.Group("/driver", RequireRole(session.RoleDriver))
	driverHandler := NewDriverHandler(deps.DispatchUC)
	drv.Get("/dispatches", driverHandler.List)
	drv.Post("/dispatches/:order_id/accept", driverHandler.Accept)
	drv.Post("/dispatches/:order_id/decline", driverHandler.Decline)
	drv.Post("/dispatches/:order_id/complete", driverHandler.Complete)
}
