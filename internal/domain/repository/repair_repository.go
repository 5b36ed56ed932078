package repository

import (
	"context"

	"github.com/jhoicas/refnet-api/internal/domain/entity"
)

// RepairRepository puerto de reparaciones.
type RepairRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Repair, error)
	List(ctx context.Context) ([]*entity.Repair, error)
	UpdateFinanceStatus(ctx context.Context, id, status string) error
	UpdateStatus(ctx context.Context, id, status string) error
}
