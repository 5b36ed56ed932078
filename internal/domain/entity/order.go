package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pedido.
const (
	OrderStatusPending  = "pending"
	OrderStatusApproved = "approved"
	OrderStatusDeclined = "declined"

	OrderDispatchDelivered = "delivered"
)

// Order pedido de cliente.
type Order struct {
	ID              string
	ProductID       string
	UserID          string
	Quantity        int64
	TotalPrice      decimal.Decimal
	Status          string
	FinanceApproval string
	DispatchStatus  string
	CreatedAt       time.Time
}
