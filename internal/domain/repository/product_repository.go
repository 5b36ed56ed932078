package repository

import (
	"context"

	"github.com/jhoicas/refnet-api/internal/domain/entity"
)

// ProductRepository puerto de productos.
type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetByIDForUpdate bloquea la fila hasta el fin de la transacción (si la hay).
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	UpdateStockQuantity(ctx context.Context, id string, quantity int64) error
}
