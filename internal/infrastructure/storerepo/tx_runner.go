package storerepo

import (
	"context"

	"github.com/jhoicas/refnet-api/internal/domain/repository"
	"github.com/jhoicas/refnet-api/internal/domain/store"
)

// TxRunner ejecuta callbacks con repositorios atados a una transacción del almacén.
// Si el cliente no soporta transacciones, el callback corre sobre el cliente plano y
// Atomic() devuelve false (modo best-effort).
type TxRunner struct {
	c store.Client
}

// NewTxRunner construye el runner.
func NewTxRunner(c store.Client) *TxRunner {
	return &TxRunner{c: c}
}

// Atomic indica si los callbacks corren dentro de una transacción real.
func (r *TxRunner) Atomic() bool {
	_, ok := r.c.(store.Transactor)
	return ok
}

func (r *TxRunner) run(ctx context.Context, fn func(c store.Client) error) error {
	if t, ok := r.c.(store.Transactor); ok {
		return t.WithTx(ctx, func(tx store.Tx) error { return fn(tx) })
	}
	return fn(r.c)
}

// RunLedger repos de reposición, productos y libro (aprobación financiera).
func (r *TxRunner) RunLedger(ctx context.Context, fn func(
	restockRepo repository.RestockRepository,
	productRepo repository.ProductRepository,
	recordRepo repository.FinancialRecordRepository,
) error) error {
	return r.run(ctx, func(c store.Client) error {
		return fn(NewRestockRepository(c), NewProductRepository(c), NewFinancialRecordRepository(c))
	})
}

// RunRestock repos de reposición y productos (aceptación del proveedor).
func (r *TxRunner) RunRestock(ctx context.Context, fn func(
	restockRepo repository.RestockRepository,
	productRepo repository.ProductRepository,
) error) error {
	return r.run(ctx, func(c store.Client) error {
		return fn(NewRestockRepository(c), NewProductRepository(c))
	})
}

// RunDispatch repos de despachos y pedidos (entrega completada).
func (r *TxRunner) RunDispatch(ctx context.Context, fn func(
	dispatchRepo repository.DispatchRepository,
	orderRepo repository.OrderRepository,
) error) error {
	return r.run(ctx, func(c store.Client) error {
		return fn(NewDispatchRepository(c), NewOrderRepository(c))
	})
}
