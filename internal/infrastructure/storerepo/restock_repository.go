package storerepo

import (
	"context"
	"fmt"

	"github.com/jhoicas/refnet-api/internal/domain"
	"github.com/jhoicas/refnet-api/internal/domain/entity"
	"github.com/jhoicas/refnet-api/internal/domain/repository"
	"github.com/jhoicas/refnet-api/internal/domain/store"
)

var _ repository.RestockRepository = (*RestockRepo)(nil)

// RestockRepo solicitudes de reposición sobre store.Client (cliente plano o tx).
type RestockRepo struct {
	c store.Client
}

// NewRestockRepository construye el repositorio.
func NewRestockRepository(c store.Client) *RestockRepo {
	return &RestockRepo{c: c}
}

func (r *RestockRepo) GetByID(ctx context.Context, id string) (*entity.RestockRequest, error) {
	return r.get(ctx, id, false)
}

func (r *RestockRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.RestockRequest, error) {
	return r.get(ctx, id, true)
}

func (r *RestockRepo) get(ctx context.Context, id string, forUpdate bool) (*entity.RestockRequest, error) {
	rows, err := r.c.Select(ctx, store.TableRestock, store.Query{
		Filter:    store.Filter{"id": id},
		Limit:     1,
		ForUpdate: forUpdate,
	})
	if err != nil {
		return nil, fmt.Errorf("get restock request: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return parseRestock(rows[0]), nil
}

// List ordenado por created_at descendente.
func (r *RestockRepo) List(ctx context.Context, f repository.RestockFilter) ([]*entity.RestockRequest, error) {
	filter := store.Filter{}
	if f.FinanceApproval != "" {
		filter["finance_approval"] = string(f.FinanceApproval)
	}
	if f.Status != "" {
		filter["status"] = string(f.Status)
	}
	rows, err := r.c.Select(ctx, store.TableRestock, store.Query{Filter: filter, Order: newestFirst})
	if err != nil {
		return nil, fmt.Errorf("list restock requests: %w", err)
	}
	out := make([]*entity.RestockRequest, len(rows))
	for i, row := range rows {
		out[i] = parseRestock(row)
	}
	return out, nil
}

// Create inserta la solicitud y completa ID y CreatedAt con lo que devolvió el almacén.
func (r *RestockRepo) Create(ctx context.Context, req *entity.RestockRequest) error {
	row := store.Row{
		"product_id":       req.ProductID,
		"stock_amount":     req.StockAmount,
		"finance_approval": string(req.FinanceApproval),
		"status":           string(req.Status),
	}
	if req.ID != "" {
		row["id"] = req.ID
	}
	if !req.CreatedAt.IsZero() {
		row["created_at"] = req.CreatedAt
	}
	saved, err := r.c.Insert(ctx, store.TableRestock, row)
	if err != nil {
		return fmt.Errorf("create restock request: %w", err)
	}
	created := parseRestock(saved)
	req.ID = created.ID
	req.CreatedAt = created.CreatedAt
	return nil
}

func (r *RestockRepo) UpdateFinanceApproval(ctx context.Context, id string, approval entity.FinanceApproval) error {
	return updateOne(ctx, r.c, store.TableRestock, store.Row{"finance_approval": string(approval)}, store.Filter{"id": id})
}

func (r *RestockRepo) UpdateStatus(ctx context.Context, id string, status entity.RestockStatus) error {
	return updateOne(ctx, r.c, store.TableRestock, store.Row{"status": string(status)}, store.Filter{"id": id})
}

func parseRestock(row store.Row) *entity.RestockRequest {
	rd := newReader(row)
	req := &entity.RestockRequest{
		ID:              rd.str("id"),
		ProductID:       rd.str("product_id"),
		StockAmount:     rd.int64("stock_amount"),
		FinanceApproval: entity.FinanceApproval(rd.str("finance_approval")),
		Status:          entity.RestockStatus(rd.str("status")),
		CreatedAt:       rd.time("created_at"),
	}
	if req.FinanceApproval == "" {
		req.FinanceApproval = entity.FinanceApprovalPending
	}
	// Filas antiguas guardan "decline".
	if a, ok := entity.ParseFinanceApproval(string(req.FinanceApproval)); ok {
		req.FinanceApproval = a
	}
	if req.Status == "" {
		req.Status = entity.RestockStatusPending
	}
	req.DefaultedFields = rd.defaulted
	return req
}

var newestFirst = &store.Order{Column: "created_at", Ascending: false}

// updateOne actualiza por filtro y traduce "ninguna fila" a domain.ErrNotFound.
func updateOne(ctx context.Context, c store.Client, table string, patch store.Row, filter store.Filter) error {
	n, err := c.Update(ctx, table, patch, filter)
	if err != nil {
		return fmt.Errorf("update %s: %w", table, err)
	}
	if n == 0 {
		return fmt.Errorf("update %s: %w", table, domain.ErrNotFound)
	}
	return nil
}
