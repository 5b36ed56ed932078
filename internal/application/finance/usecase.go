// Package finance pedidos y reparaciones vistos por el gerente financiero.
package finance

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/refnet-api/internal/application/notify"
	"github.com/jhoicas/refnet-api/internal/application/session"
	"github.com/jhoicas/refnet-api/internal/domain"
	"github.com/jhoicas/refnet-api/internal/domain/entity"
	"github.com/jhoicas/refnet-api/internal/domain/repository"
	"github.com/jhoicas/refnet-api/pkg/listing"
	"github.com/jhoicas/refnet-api/pkg/logger"
)

// FilterAllOrders valor del filtro de pedidos que muestra todos.
const FilterAllOrders = "all-orders"

const MsgRepairApproved = "Repair has been approved"

// UseCase pedidos y reparaciones.
type UseCase struct {
	orders   repository.OrderRepository
	repairs  repository.RepairRepository
	notifier notify.Notifier
	log      *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(orders repository.OrderRepository, repairs repository.RepairRepository, notifier notify.Notifier, log *logger.Logger) *UseCase {
	return &UseCase{orders: orders, repairs: repairs, notifier: notifier, log: log.Named("finance")}
}

// ListOrders pedidos filtrados por aprobación financiera, de a listing.OrderPageSize.
func (uc *UseCase) ListOrders(ctx context.Context, filter string, page int) (listing.Page[*entity.Order], error) {
	all, err := uc.orders.List(ctx)
	if err != nil {
		return listing.Page[*entity.Order]{}, err
	}
	shown := all
	switch f := strings.ToLower(strings.TrimSpace(filter)); f {
	case "", "all", FilterAllOrders:
	case entity.OrderStatusPending, entity.OrderStatusApproved, entity.OrderStatusDeclined:
		shown = listing.Filter(all, func(o *entity.Order) bool { return o.FinanceApproval == f })
	default:
		return listing.Page[*entity.Order]{}, fmt.Errorf("%w: order filter %q", domain.ErrInvalidInput, filter)
	}
	return listing.NewPage(shown, listing.OrderPageSize, page), nil
}

// UpdateOrderStatus cambia el estado del pedido a pending o approved.
func (uc *UseCase) UpdateOrderStatus(ctx context.Context, sess session.Session, id, status string) error {
	if err := sess.Validate(); err != nil {
		return err
	}
	if status != entity.OrderStatusPending && status != entity.OrderStatusApproved {
		return fmt.Errorf("%w: order status %q", domain.ErrInvalidInput, status)
	}
	if err := uc.orders.UpdateStatus(ctx, id, status); err != nil {
		uc.notifier.Notify(ctx, sess, err.Error(), notify.KindError)
		return wrapWrite(err)
	}
	uc.log.Info().Str("order_id", id).Str("status", status).Msg("estado de pedido actualizado")
	uc.notifier.Notify(ctx, sess, "Order status updated to "+status, notify.KindSuccess)
	return nil
}

// ListRepairs reparaciones filtradas por estado financiero ("All" = todas), de a listing.RepairPageSize.
func (uc *UseCase) ListRepairs(ctx context.Context, filter string, page int) (listing.Page[*entity.Repair], error) {
	all, err := uc.repairs.List(ctx)
	if err != nil {
		return listing.Page[*entity.Repair]{}, err
	}
	shown := all
	switch f := strings.ToLower(strings.TrimSpace(filter)); f {
	case "", "all":
	case entity.RepairStatusPending, entity.RepairStatusInProgress, entity.RepairStatusCompleted:
		shown = listing.Filter(all, func(r *entity.Repair) bool { return r.FinanceStatus == f })
	default:
		return listing.Page[*entity.Repair]{}, fmt.Errorf("%w: repair filter %q", domain.ErrInvalidInput, filter)
	}
	return listing.NewPage(shown, listing.RepairPageSize, page), nil
}

// ApproveRepair finance_status = approved.
func (uc *UseCase) ApproveRepair(ctx context.Context, sess session.Session, id string) error {
	if err := sess.Validate(); err != nil {
		return err
	}
	if err := uc.repairs.UpdateFinanceStatus(ctx, id, entity.RepairFinanceApproved); err != nil {
		uc.notifier.Notify(ctx, sess, err.Error(), notify.KindError)
		return wrapWrite(err)
	}
	uc.log.Info().Str("repair_id", id).Msg("reparación aprobada")
	uc.notifier.Notify(ctx, sess, MsgRepairApproved, notify.KindSuccess)
	return nil
}

// CompleteRepair el técnico cierra la reparación (status = completed).
func (uc *UseCase) CompleteRepair(ctx context.Context, sess session.Session, id string) error {
	if err := sess.Validate(); err != nil {
		return err
	}
	r, err := uc.repairs.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("%w: repair %s", domain.ErrNotFound, id)
	}
	if r.TechnicianID != "" && r.TechnicianID != sess.UserID {
		return fmt.Errorf("%w: repair %s is assigned to another technician", domain.ErrForbidden, id)
	}
	if err := uc.repairs.UpdateStatus(ctx, id, entity.RepairStatusCompleted); err != nil {
		uc.notifier.Notify(ctx, sess, err.Error(), notify.KindError)
		return wrapWrite(err)
	}
	uc.log.Info().Str("repair_id", id).Str("technician_id", sess.UserID).Msg("reparación completada")
	uc.notifier.Notify(ctx, sess, "Repair marked as completed", notify.KindSuccess)
	return nil
}

// wrapWrite conserva ErrNotFound y clasifica el resto como fallo de escritura remota.
func wrapWrite(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrRemoteWrite, err)
}
