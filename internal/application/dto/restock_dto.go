package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/refnet-api/internal/domain/entity"
)

// CreateRestockRequest entrada para pedir reposición. Amount llega como texto desde el formulario.
type CreateRestockRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Amount    string `json:"amount" validate:"required"`
}

// UpdateRestockStatusRequest nuevo estado logístico: accepted, rejected o completed.
type UpdateRestockStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected completed"`
}

// ProductSummary producto embebido en la solicitud.
type ProductSummary struct {
	ID            string          `json:"product_id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int64           `json:"stock_quantity"`
}

// RestockResponse salida de una solicitud de reposición.
type RestockResponse struct {
	ID              string          `json:"id"`
	ProductID       string          `json:"product_id"`
	StockAmount     int64           `json:"stock_amount"`
	FinanceApproval string          `json:"finance_approval"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	Product         *ProductSummary `json:"product,omitempty"`
}

// RestockStatsResponse conteos por aprobación financiera.
type RestockStatsResponse struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Declined int `json:"declined"`
}

// RestockListResponse página de solicitudes para finanzas.
type RestockListResponse struct {
	Items []RestockResponse    `json:"items"`
	Page  PageResponse         `json:"page"`
	Stats RestockStatsResponse `json:"stats"`
}

// SupplierStatsResponse conteos por estado logístico.
type SupplierStatsResponse struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Accepted  int `json:"accepted"`
	Completed int `json:"completed"`
}

// SupplierRestockListResponse solicitudes vistas por el proveedor.
type SupplierRestockListResponse struct {
	Items []RestockResponse     `json:"items"`
	Stats SupplierStatsResponse `json:"stats"`
}

// NewRestockResponse mapea la entidad.
func NewRestockResponse(r *entity.RestockRequest) RestockResponse {
	out := RestockResponse{
		ID:              r.ID,
		ProductID:       r.ProductID,
		StockAmount:     r.StockAmount,
		FinanceApproval: string(r.FinanceApproval),
		Status:          string(r.Status),
		CreatedAt:       r.CreatedAt,
	}
	if p := r.Product; p != nil {
		out.Product = &ProductSummary{ID: p.ID, Name: p.Name, Price: p.Price, StockQuantity: p.StockQuantity}
	}
	return out
}

// NewRestockResponses mapea una lista; nunca devuelve nil.
func NewRestockResponses(items []*entity.RestockRequest) []RestockResponse {
	out := make([]RestockResponse, 0, len(items))
	for _, r := range items {
		out = append(out, NewRestockResponse(r))
	}
	return out
}
