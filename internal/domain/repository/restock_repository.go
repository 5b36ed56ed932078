package repository

import (
	"context"

	"github.com/jhoicas/refnet-api/internal/domain/entity"
)

// RestockFilter filtros que se delegan al almacén. Campos vacíos = sin filtro.
type RestockFilter struct {
	FinanceApproval entity.FinanceApproval
	Status          entity.RestockStatus
}

// RestockRepository puerto de solicitudes de reposición.
// GetByID devuelve (nil, nil) si no existe.
type RestockRepository interface {
	GetByID(ctx context.Context, id string) (*entity.RestockRequest, error)
	// GetByIDForUpdate bloquea la fila cuando corre dentro de una transacción.
	GetByIDForUpdate(ctx context.Context, id string) (*entity.RestockRequest, error)
	List(ctx context.Context, filter RestockFilter) ([]*entity.RestockRequest, error)
	Create(ctx context.Context, r *entity.RestockRequest) error
	UpdateFinanceApproval(ctx context.Context, id string, approval entity.FinanceApproval) error
	UpdateStatus(ctx context.Context, id string, status entity.RestockStatus) error
}
