package repository

import (
	"context"

	"github.com/jhoicas/refnet-api/internal/domain/entity"
)

// DispatchRepository puerto de despachos.
type DispatchRepository interface {
	ListByDriver(ctx context.Context, driverID string) ([]*entity.Dispatch, error)
	GetByOrderID(ctx context.Context, orderID string) (*entity.Dispatch, error)
	UpdateByOrderID(ctx context.Context, orderID string, patch entity.DispatchPatch) error
}
