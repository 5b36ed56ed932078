package storerepo

import (
	"context"
	"fmt"

	"github.com/jhoicas/refnet-api/internal/domain/entity"
	"github.com/jhoicas/refnet-api/internal/domain/repository"
	"github.com/jhoicas/refnet-api/internal/domain/store"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo productos sobre store.Client.
type ProductRepo struct {
	c store.Client
}

// NewProductRepository construye el repositorio.
func NewProductRepository(c store.Client) *ProductRepo {
	return &ProductRepo{c: c}
}

func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return r.get(ctx, id, false)
}

func (r *ProductRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.get(ctx, id, true)
}

func (r *ProductRepo) get(ctx context.Context, id string, forUpdate bool) (*entity.Product, error) {
	rows, err := r.c.Select(ctx, store.TableProducts, store.Query{
		Filter:    store.Filter{"product_id": id},
		Limit:     1,
		ForUpdate: forUpdate,
	})
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return parseProduct(rows[0]), nil
}

func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.c.Select(ctx, store.TableProducts, store.Query{Order: &store.Order{Column: "name", Ascending: true}})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	out := make([]*entity.Product, len(rows))
	for i, row := range rows {
		out[i] = parseProduct(row)
	}
	return out, nil
}

func (r *ProductRepo) UpdateStockQuantity(ctx context.Context, id string, quantity int64) error {
	return updateOne(ctx, r.c, store.TableProducts, store.Row{"stock_quantity": quantity}, store.Filter{"product_id": id})
}

func parseProduct(row store.Row) *entity.Product {
	rd := newReader(row)
	p := &entity.Product{
		ID:            rd.str("product_id"),
		Name:          rd.str("name"),
		Description:   rd.str("description"),
		Price:         rd.decimal("price"),
		StockQuantity: rd.int64("stock_quantity"),
		CreatedAt:     rd.time("created_at"),
	}
	p.DefaultedFields = rd.defaulted
	return p
}
