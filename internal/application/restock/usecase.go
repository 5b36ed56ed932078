// Package restock solicitudes de reposición del lado del proveedor.
package restock

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/refnet-api/internal/application/notify"
	"github.com/jhoicas/refnet-api/internal/application/session"
	"github.com/jhoicas/refnet-api/internal/domain"
	"github.com/jhoicas/refnet-api/internal/domain/entity"
	"github.com/jhoicas/refnet-api/internal/domain/repository"
	"github.com/jhoicas/refnet-api/pkg/listing"
	"github.com/jhoicas/refnet-api/pkg/logger"
)

// Mensajes de aviso al usuario.
const (
	MsgInvalidAmount = "Please enter a valid restock amount"
	MsgPlaced        = "Restock order placed successfully"
)

// TxRunner ejecuta fn con repositorios de reposición y productos en una transacción.
type TxRunner interface {
	RunRestock(ctx context.Context, fn func(
		restockRepo repository.RestockRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// UseCase casos de uso del proveedor.
type UseCase struct {
	tx       TxRunner
	restocks repository.RestockRepository
	products repository.ProductRepository
	notifier notify.Notifier
	log      *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(tx TxRunner, restocks repository.RestockRepository, products repository.ProductRepository, notifier notify.Notifier, log *logger.Logger) *UseCase {
	return &UseCase{tx: tx, restocks: restocks, products: products, notifier: notifier, log: log.Named("restock")}
}

// Stats conteos por estado logístico.
type Stats struct {
	Total     int
	Pending   int
	Accepted  int
	Completed int
}

// List solicitudes con producto y conteos.
type List struct {
	Items []*entity.RestockRequest
	Stats Stats
}

// CreateRequest crea una solicitud pendiente. amount debe ser un entero positivo.
func (uc *UseCase) CreateRequest(ctx context.Context, sess session.Session, productID, amount string) (*entity.RestockRequest, error) {
	if err := sess.Validate(); err != nil {
		return nil, err
	}
	n, err := strconv.ParseInt(strings.TrimSpace(amount), 10, 64)
	if err != nil || n <= 0 {
		uc.notifier.Notify(ctx, sess, MsgInvalidAmount, notify.KindError)
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, MsgInvalidAmount)
	}
	if productID == "" {
		return nil, fmt.Errorf("%w: product id required", domain.ErrInvalidInput)
	}
	p, err := uc.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: product %s", domain.ErrNotFound, productID)
	}

	req := &entity.RestockRequest{
		ProductID:       productID,
		StockAmount:     n,
		FinanceApproval: entity.FinanceApprovalPending,
		Status:          entity.RestockStatusPending,
	}
	if err := uc.restocks.Create(ctx, req); err != nil {
		uc.notifier.Notify(ctx, sess, "Failed to place restock order", notify.KindError)
		return nil, fmt.Errorf("%w: %w", domain.ErrRemoteWrite, err)
	}
	req.Product = p
	uc.log.Info().Str("restock_id", req.ID).Str("product_id", productID).Int64("amount", n).Msg("solicitud de reposición creada")
	uc.notifier.Notify(ctx, sess, MsgPlaced, notify.KindSuccess)
	return req, nil
}

// List solicitudes filtradas por estado ("All" o vacío = todas), más reciente primero.
func (uc *UseCase) List(ctx context.Context, filter string) (*List, error) {
	all, err := uc.restocks.List(ctx, repository.RestockFilter{})
	if err != nil {
		return nil, err
	}
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	for _, r := range all {
		r.Product = byID[r.ProductID]
	}

	out := &List{
		Items: all,
		Stats: Stats{
			Total:     len(all),
			Pending:   listing.Tally(all, statusIs(entity.RestockStatusPending)),
			Accepted:  listing.Tally(all, statusIs(entity.RestockStatusAccepted)),
			Completed: listing.Tally(all, statusIs(entity.RestockStatusCompleted)),
		},
	}
	if f := strings.ToLower(strings.TrimSpace(filter)); f != "" && f != "all" {
		st := entity.RestockStatus(f)
		if !st.Valid() {
			return nil, fmt.Errorf("%w: status filter %q", domain.ErrInvalidInput, filter)
		}
		out.Items = listing.Filter(all, statusIs(st))
	}
	return out, nil
}

// transitions estados alcanzables desde cada estado.
var transitions = map[entity.RestockStatus][]entity.RestockStatus{
	entity.RestockStatusPending:  {entity.RestockStatusAccepted, entity.RestockStatusRejected},
	entity.RestockStatusAccepted: {entity.RestockStatusCompleted},
}

// UpdateStatus avanza el estado logístico. Al aceptar, suma stock_amount al stock del
// producto en la misma transacción. No modifica finance_approval.
func (uc *UseCase) UpdateStatus(ctx context.Context, sess session.Session, id string, status entity.RestockStatus) (*entity.RestockRequest, error) {
	if err := sess.Validate(); err != nil {
		return nil, err
	}
	if !status.Valid() || status == entity.RestockStatusPending {
		return nil, fmt.Errorf("%w: status %q", domain.ErrInvalidInput, status)
	}

	var out *entity.RestockRequest
	err := uc.tx.RunRestock(ctx, func(restockRepo repository.RestockRepository, productRepo repository.ProductRepository) error {
		req, err := restockRepo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if req == nil {
			return fmt.Errorf("%w: restock request %s", domain.ErrNotFound, id)
		}
		if !allowed(req.Status, status) {
			return fmt.Errorf("%w: restock request %s is %s", domain.ErrConflict, id, req.Status)
		}
		if err := restockRepo.UpdateStatus(ctx, id, status); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrRemoteWrite, err)
		}
		if status == entity.RestockStatusAccepted {
			p, err := productRepo.GetByIDForUpdate(ctx, req.ProductID)
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("%w: product %s", domain.ErrNotFound, req.ProductID)
			}
			p.StockQuantity += req.StockAmount
			if err := productRepo.UpdateStockQuantity(ctx, p.ID, p.StockQuantity); err != nil {
				return fmt.Errorf("%w: %w", domain.ErrRemoteWrite, err)
			}
			req.Product = p
		}
		req.Status = status
		out = req
		return nil
	})
	if err != nil {
		uc.notifier.Notify(ctx, sess, err.Error(), notify.KindError)
		return nil, err
	}
	uc.log.Info().Str("restock_id", id).Str("status", string(status)).Msg("estado de reposición actualizado")
	uc.notifier.Notify(ctx, sess, fmt.Sprintf("Restock request %s successfully", status), notify.KindSuccess)
	return out, nil
}

func allowed(from, to entity.RestockStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func statusIs(s entity.RestockStatus) func(*entity.RestockRequest) bool {
	return func(r *entity.RestockRequest) bool { return r.Status == s }
}
