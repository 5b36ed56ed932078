package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentType sentido del movimiento en el libro.
type PaymentType string

const (
	PaymentIncoming PaymentType = "incoming"
	PaymentOutgoing PaymentType = "outgoing"
)

// FinancialRecord asiento del libro contable (solo inserción).
// Balance es el saldo corrido después de aplicar Amount; el del asiento más reciente es el saldo vigente.
type FinancialRecord struct {
	ID          string
	Amount      decimal.Decimal
	Balance     decimal.Decimal
	PaymentType PaymentType
	Description string
	EmployeeID  string
	RestockID   *string
	CreatedAt   time.Time
}

// RestockDescription texto del asiento generado por una reposición aprobada.
func RestockDescription(quantity int64, productName string) string {
	return fmt.Sprintf("Restock of %d units of %s", quantity, productName)
}
