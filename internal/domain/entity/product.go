package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. Price es el precio vigente que usa
// la aprobación financiera de reposiciones; StockQuantity solo lo modifica el proveedor.
type Product struct {
	ID            string
	Name          string
	Description   string
	Price         decimal.Decimal
	StockQuantity int64
	CreatedAt     time.Time

	// DefaultedFields columnas ausentes o no numéricas que se leyeron como cero, o enteras truncadas.
	DefaultedFields []string
}
