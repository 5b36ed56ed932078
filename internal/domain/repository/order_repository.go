package repository

import (
	"context"

	"github.com/jhoicas/refnet-api/internal/domain/entity"
)

// OrderRepository puerto de pedidos.
type OrderRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	List(ctx context.Context) ([]*entity.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
	UpdateDispatchStatus(ctx context.Context, id, status string) error
}
