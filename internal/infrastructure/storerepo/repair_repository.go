package storerepo

import (
	"context"
	"fmt"

	"github.com/jhoicas/refnet-api/internal/domain/entity"
	"github.com/jhoicas/refnet-api/internal/domain/repository"
	"github.com/jhoicas/refnet-api/internal/domain/store"
)

var _ repository.RepairRepository = (*RepairRepo)(nil)

// RepairRepo reparaciones sobre store.Client.
type RepairRepo struct {
	c store.Client
}

// NewRepairRepository construye el repositorio.
func NewRepairRepository(c store.Client) *RepairRepo {
	return &RepairRepo{c: c}
}

func (r *RepairRepo) GetByID(ctx context.Context, id string) (*entity.Repair, error) {
	rows, err := r.c.Select(ctx, store.TableRepairs, store.Query{Filter: store.Filter{"id": id}, Limit: 1})
	if err != nil {
		return nil, fmt.Errorf("get repair: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return parseRepair(rows[0]), nil
}

func (r *RepairRepo) List(ctx context.Context) ([]*entity.Repair, error) {
	rows, err := r.c.Select(ctx, store.TableRepairs, store.Query{Order: newestFirst})
	if err != nil {
		return nil, fmt.Errorf("list repairs: %w", err)
	}
	out := make([]*entity.Repair, len(rows))
	for i, row := range rows {
		out[i] = parseRepair(row)
	}
	return out, nil
}

func (r *RepairRepo) UpdateFinanceStatus(ctx context.Context, id, status string) error {
	return updateOne(ctx, r.c, store.TableRepairs, store.Row{"finance_status": status}, store.Filter{"id": id})
}

func (r *RepairRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return updateOne(ctx, r.c, store.TableRepairs, store.Row{"status": status}, store.Filter{"id": id})
}

func parseRepair(row store.Row) *entity.Repair {
	rd := newReader(row)
	return &entity.Repair{
		ID:            rd.str("id"),
		ProductID:     rd.str("product_id"),
		CustomerID:    rd.str("customer_id"),
		TechnicianID:  rd.str("technician_id"),
		Description:   rd.str("description"),
		Cost:          rd.decimal("cost"),
		Status:        rd.str("status"),
		FinanceStatus: rd.str("finance_status"),
		CreatedAt:     rd.time("created_at"),
	}
}
