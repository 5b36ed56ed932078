package entity

import (
	"strings"
	"time"
)

// FinanceApproval estado financiero de una solicitud de reposición.
type FinanceApproval string

const (
	FinanceApprovalPending  FinanceApproval = "pending"
	FinanceApprovalApproved FinanceApproval = "approved"
	FinanceApprovalDeclined FinanceApproval = "declined"
)

// Valid indica si el valor es uno de los estados conocidos.
func (a FinanceApproval) Valid() bool {
	switch a {
	case FinanceApprovalPending, FinanceApprovalApproved, FinanceApprovalDeclined:
		return true
	}
	return false
}

// ParseFinanceApproval normaliza mayúsculas y espacios; acepta la forma heredada "decline".
func ParseFinanceApproval(s string) (FinanceApproval, bool) {
	a := FinanceApproval(strings.ToLower(strings.TrimSpace(s)))
	if a == "decline" {
		a = FinanceApprovalDeclined
	}
	return a, a.Valid()
}

// RestockStatus estado del lado proveedor; independiente de FinanceApproval.
type RestockStatus string

const (
	RestockStatusPending   RestockStatus = "pending"
	RestockStatusAccepted  RestockStatus = "accepted"
	RestockStatusRejected  RestockStatus = "rejected"
	RestockStatusCompleted RestockStatus = "completed"
)

// Valid indica si el valor es uno de los estados conocidos.
func (s RestockStatus) Valid() bool {
	switch s {
	case RestockStatusPending, RestockStatusAccepted, RestockStatusRejected, RestockStatusCompleted:
		return true
	}
	return false
}

// RestockRequest solicitud de reposición de un producto. Nunca se elimina.
type RestockRequest struct {
	ID              string
	ProductID       string
	StockAmount     int64
	FinanceApproval FinanceApproval
	Status          RestockStatus
	CreatedAt       time.Time

	// Product se completa cuando el caso de uso necesita nombre y precio.
	Product *Product

	// DefaultedFields columnas leídas como cero o truncadas (stock_amount fraccionario).
	DefaultedFields []string
}
