package storerepo

import (
	"context"
	"fmt"

	"github.com/jhoicas/refnet-api/internal/domain/entity"
	"github.com/jhoicas/refnet-api/internal/domain/repository"
	"github.com/jhoicas/refnet-api/internal/domain/store"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo pedidos sobre store.Client.
type OrderRepo struct {
	c store.Client
}

// NewOrderRepository construye el repositorio.
func NewOrderRepository(c store.Client) *OrderRepo {
	return &OrderRepo{c: c}
}

func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	rows, err := r.c.Select(ctx, store.TableOrders, store.Query{Filter: store.Filter{"order_id": id}, Limit: 1})
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return parseOrder(rows[0]), nil
}

func (r *OrderRepo) List(ctx context.Context) ([]*entity.Order, error) {
	rows, err := r.c.Select(ctx, store.TableOrders, store.Query{Order: newestFirst})
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	out := make([]*entity.Order, len(rows))
	for i, row := range rows {
		out[i] = parseOrder(row)
	}
	return out, nil
}

func (r *OrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return updateOne(ctx, r.c, store.TableOrders, store.Row{"status": status}, store.Filter{"order_id": id})
}

func (r *OrderRepo) UpdateDispatchStatus(ctx context.Context, id, status string) error {
	return updateOne(ctx, r.c, store.TableOrders, store.Row{"dispatch_status": status}, store.Filter{"order_id": id})
}

func parseOrder(row store.Row) *entity.Order {
	rd := newReader(row)
	return &entity.Order{
		ID:              rd.str("order_id"),
		ProductID:       rd.str("product_id"),
		UserID:          rd.str("user_id"),
		Quantity:        rd.int64("quantity"),
		TotalPrice:      rd.decimal("total_price"),
		Status:          rd.str("status"),
		FinanceApproval: rd.str("finance_approval"),
		DispatchStatus:  rd.str("dispatch_status"),
		CreatedAt:       rd.time("created_at"),
	}
}
