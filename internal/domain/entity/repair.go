package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de reparación.
const (
	RepairStatusPending    = "pending"
	RepairStatusInProgress = "inprogress"
	RepairStatusCompleted  = "completed"

	RepairFinanceApproved = "approved"
)

// Repair servicio técnico sobre un producto.
type Repair struct {
	ID            string
	ProductID     string
	CustomerID    string
	TechnicianID  string
	Description   string
	Cost          decimal.Decimal
	Status        string
	FinanceStatus string
	CreatedAt     time.Time
}
