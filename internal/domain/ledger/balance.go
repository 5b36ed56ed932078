package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/refnet-api/internal/domain/entity"
)

// RestockCost costo total de una reposición (servicio de dominio).
// Costo = PrecioVigente * Cantidad
func RestockCost(price decimal.Decimal, quantity int64) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(quantity))
}

// NextBalance saldo corrido tras aplicar un asiento: entradas suman, salidas restan.
func NextBalance(current, amount decimal.Decimal, pt entity.PaymentType) decimal.Decimal {
	if pt == entity.PaymentIncoming {
		return current.Add(amount)
	}
	return current.Sub(amount)
}
