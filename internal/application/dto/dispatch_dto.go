package dto

import (
	"time"

	"github.com/jhoicas/refnet-api/internal/domain/entity"
)

// DispatchResponse asignación de entrega.
type DispatchResponse struct {
	ID              string     `json:"dispatch_id"`
	OrderID         string     `json:"order_id"`
	DriverID        string     `json:"driver_id"`
	Status          string     `json:"status"`
	DriverStatus    string     `json:"driver_status"`
	DeliveryAddress string     `json:"delivery_address"`
	TrackingNumber  string     `json:"tracking_number"`
	DispatchDate    *time.Time `json:"dispatch_date,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// DispatchStatsResponse tarjetas del conductor.
type DispatchStatsResponse struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	InTransit int `json:"in_transit"`
	Delivered int `json:"delivered"`
}

// DispatchListResponse página de asignaciones.
type DispatchListResponse struct {
	Items []DispatchResponse    `json:"items"`
	Page  PageResponse          `json:"page"`
	Stats DispatchStatsResponse `json:"stats"`
}

// NewDispatchResponses mapea una lista; nunca devuelve nil.
func NewDispatchResponses(items []*entity.Dispatch) []DispatchResponse {
	out := make([]DispatchResponse, 0, len(items))
	for _, d := range items {
		out = append(out, DispatchResponse{
			ID:              d.ID,
			OrderID:         d.OrderID,
			DriverID:        d.DriverID,
			Status:          d.Status,
			DriverStatus:    d.DriverStatus,
			DeliveryAddress: d.DeliveryAddress,
			TrackingNumber:  d.TrackingNumber,
			DispatchDate:    d.DispatchDate,
			CreatedAt:       d.CreatedAt,
		})
	}
	return out
}
