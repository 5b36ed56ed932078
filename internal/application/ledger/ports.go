package ledger

import (
	"context"

	"github.com/jhoicas/refnet-api/internal/domain/repository"
)

// TxRunner ejecuta fn con repositorios atados a una transacción del almacén.
// Atomic() == false significa que los pasos corren como llamadas independientes.
type TxRunner interface {
	RunLedger(ctx context.Context, fn func(
		restockRepo repository.RestockRepository,
		productRepo repository.ProductRepository,
		recordRepo repository.FinancialRecordRepository,
	) error) error
	Atomic() bool
}
