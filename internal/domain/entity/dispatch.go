package entity

import "time"

// Estados de despacho (columna status) y del conductor (driver_status).
const (
	DispatchStatusPending   = "pending"
	DispatchStatusAccepted  = "accepted"
	DispatchStatusInTransit = "in transit"
	DispatchStatusComplete  = "complete"

	DriverStatusPending   = "pending"
	DriverStatusDeclined  = "declined"
	DriverStatusDelivered = "delivered"
)

// Dispatch entrega asignada a un conductor.
type Dispatch struct {
	ID              string
	OrderID         string
	DriverID        string
	Status          string
	DriverStatus    string
	DeliveryAddress string
	TrackingNumber  string
	DispatchDate    *time.Time
	CreatedAt       time.Time
}

// DispatchPatch campos modificables de un despacho; nil = sin cambio.
type DispatchPatch struct {
	Status       *string
	DriverStatus *string
}
