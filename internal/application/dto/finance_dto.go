package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/refnet-api/internal/domain/entity"
)

// UpdateOrderStatusRequest nuevo estado del pedido: pending o approved.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved"`
}

// OrderResponse pedido de cliente.
type OrderResponse struct {
	ID              string          `json:"order_id"`
	ProductID       string          `json:"product_id"`
	UserID          string          `json:"user_id"`
	Quantity        int64           `json:"quantity"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	Status          string          `json:"status"`
	FinanceApproval string          `json:"finance_approval"`
	DispatchStatus  string          `json:"dispatch_status"`
	CreatedAt       time.Time       `json:"created_at"`
}

// OrderListResponse página de pedidos.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// RepairResponse servicio técnico.
type RepairResponse struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"product_id"`
	CustomerID    string          `json:"customer_id"`
	TechnicianID  string          `json:"technician_id"`
	Description   string          `json:"description"`
	Cost          decimal.Decimal `json:"cost"`
	Status        string          `json:"status"`
	FinanceStatus string          `json:"finance_status"`
	CreatedAt     time.Time       `json:"created_at"`
}

// RepairListResponse página de reparaciones.
type RepairListResponse struct {
	Items []RepairResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// NewOrderResponses mapea una lista; nunca devuelve nil.
func NewOrderResponses(items []*entity.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(items))
	for _, o := range items {
		out = append(out, OrderResponse{
			ID:              o.ID,
			ProductID:       o.ProductID,
			UserID:          o.UserID,
			Quantity:        o.Quantity,
			TotalPrice:      o.TotalPrice,
			Status:          o.Status,
			FinanceApproval: o.FinanceApproval,
			DispatchStatus:  o.DispatchStatus,
			CreatedAt:       o.CreatedAt,
		})
	}
	return out
}

// NewRepairResponses mapea una lista; nunca devuelve nil.
func NewRepairResponses(items []*entity.Repair) []RepairResponse {
	out := make([]RepairResponse, 0, len(items))
	for _, r := range items {
		out = append(out, RepairResponse{
			ID:            r.ID,
			ProductID:     r.ProductID,
			CustomerID:    r.CustomerID,
			TechnicianID:  r.TechnicianID,
			Description:   r.Description,
			Cost:          r.Cost,
			Status:        r.Status,
			FinanceStatus: r.FinanceStatus,
			CreatedAt:     r.CreatedAt,
		})
	}
	return out
}
