package storerepo

import (
	"context"
	"fmt"

	"github.com/jhoicas/refnet-api/internal/domain/entity"
	"github.com/jhoicas/refnet-api/internal/domain/repository"
	"github.com/jhoicas/refnet-api/internal/domain/store"
)

var _ repository.DispatchRepository = (*DispatchRepo)(nil)

// DispatchRepo despachos sobre store.Client.
type DispatchRepo struct {
	c store.Client
}

// NewDispatchRepository construye el repositorio.
func NewDispatchRepository(c store.Client) *DispatchRepo {
	return &DispatchRepo{c: c}
}

func (r *DispatchRepo) ListByDriver(ctx context.Context, driverID string) ([]*entity.Dispatch, error) {
	rows, err := r.c.Select(ctx, store.TableDispatches, store.Query{
		Filter: store.Filter{"driver_id": driverID},
		Order:  newestFirst,
	})
	if err != nil {
		return nil, fmt.Errorf("list dispatches: %w", err)
	}
	out := make([]*entity.Dispatch, len(rows))
	for i, row := range rows {
		out[i] = parseDispatch(row)
	}
	return out, nil
}

func (r *DispatchRepo) GetByOrderID(ctx context.Context, orderID string) (*entity.Dispatch, error) {
	rows, err := r.c.Select(ctx, store.TableDispatches, store.Query{
		Filter: store.Filter{"order_id": orderID},
		Order:  newestFirst,
		Limit:  1,
	})
	if err != nil {
		return nil, fmt.Errorf("get dispatch: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return parseDispatch(rows[0]), nil
}

func (r *DispatchRepo) UpdateByOrderID(ctx context.Context, orderID string, p entity.DispatchPatch) error {
	patch := store.Row{}
	if p.Status != nil {
		patch["status"] = *p.Status
	}
	if p.DriverStatus != nil {
		patch["driver_status"] = *p.DriverStatus
	}
	if len(patch) == 0 {
		return nil
	}
	return updateOne(ctx, r.c, store.TableDispatches, patch, store.Filter{"order_id": orderID})
}

func parseDispatch(row store.Row) *entity.Dispatch {
	rd := newReader(row)
	return &entity.Dispatch{
		ID:              rd.str("dispatch_id"),
		OrderID:         rd.str("order_id"),
		DriverID:        rd.str("driver_id"),
		Status:          rd.str("status"),
		DriverStatus:    rd.str("driver_status"),
		DeliveryAddress: rd.str("delivery_address"),
		TrackingNumber:  rd.str("tracking_number"),
		DispatchDate:    rd.optTime("dispatch_date"),
		CreatedAt:       rd.time("created_at"),
	}
}
