// Package dispatch asignaciones de entrega del conductor.
package dispatch

import (
	"context"
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

const (
	MsgAccepted  = "Assignment accepted successfully!"
	MsgDeclined  = "Dispatch marked as declined"
	MsgCompleted = "Dispatch marked as complete"
)

// TxRunner ejecuta fn con repositorios de despachos y pedidos en una transacción.
type TxRunner interface {
	RunDispatch(ctx context.Context, fn func(
		dispatchRepo repository.DispatchRepository,
		orderRepo repository.OrderRepository,
	) error) error
}

// UseCase casos de uso del conductor.
type UseCase struct {
	tx         TxRunner
	dispatches repository.DispatchRepository
	notifier   notify.Notifier
	log        *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(tx TxRunner, dispatches repository.DispatchRepository, notifier notify.Notifier, log *logger.Logger) *UseCase {
	return &UseCase{tx: tx, dispatches: dispatches, notifier: notifier, log: log.Named("dispatch")}
}

// Stats tarjetas del conductor.
type Stats struct {
	Total     int
	Pending   int
	InTransit int
	Delivered int
}

// Assignments página de despachos del conductor y sus conteos.
type Assignments struct {
	Page  listing.Page[*entity.Dispatch]
	Stats Stats
}

// ListForDriver despachos asignados al usuario de la sesión, más reciente primero.
func (uc *UseCase) ListForDriver(ctx context.Context, sess session.Session, page int) (*Assignments, error) {
	if err := sess.Validate(); err != nil {
		return nil, err
	}
	all, err := uc.dispatches.ListByDriver(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}
	return &Assignments{
		Page: listing.NewPage(all, listing.DispatchPageSize, page),
		Stats: Stats{
			Total:     len(all),
			Pending:   listing.Tally(all, statusIs(entity.DispatchStatusPending)),
			InTransit: listing.Tally(all, statusIs(entity.DispatchStatusInTransit)),
			Delivered: listing.Tally(all, delivered),
		},
	}, nil
}

// Accept marca el despacho como aceptado por el conductor.
func (uc *UseCase) Accept(ctx context.Context, sess session.Session, orderID string) error {
	st := entity.DispatchStatusAccepted
	return uc.patch(ctx, sess, orderID, entity.DispatchPatch{Status: &st}, MsgAccepted)
}

// Decline marca driver_status = declined; el estado del despacho no cambia.
func (uc *UseCase) Decline(ctx context.Context, sess session.Session, orderID string) error {
	ds := entity.DriverStatusDeclined
	return uc.patch(ctx, sess, orderID, entity.DispatchPatch{DriverStatus: &ds}, MsgDeclined)
}

func (uc *UseCase) patch(ctx context.Context, sess session.Session, orderID string, p entity.DispatchPatch, msg string) error {
	err := uc.tx.RunDispatch(ctx, func(dispatchRepo repository.DispatchRepository, _ repository.OrderRepository) error {
		if _, err := owned(ctx, dispatchRepo, sess, orderID); err != nil {
			return err
		}
		if err := dispatchRepo.UpdateByOrderID(ctx, orderID, p); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrRemoteWrite, err)
		}
		return nil
	})
	return uc.finish(ctx, sess, orderID, err, msg)
}

// Complete cierra el despacho (complete / delivered) y marca el pedido como entregado.
func (uc *UseCase) Complete(ctx context.Context, sess session.Session, orderID string) error {
	err := uc.tx.RunDispatch(ctx, func(dispatchRepo repository.DispatchRepository, orderRepo repository.OrderRepository) error {
		if _, err := owned(ctx, dispatchRepo, sess, orderID); err != nil {
			return err
		}
		st, ds := entity.DispatchStatusComplete, entity.DriverStatusDelivered
		if err := dispatchRepo.UpdateByOrderID(ctx, orderID, entity.DispatchPatch{Status: &st, DriverStatus: &ds}); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrRemoteWrite, err)
		}
		if err := orderRepo.UpdateDispatchStatus(ctx, orderID, entity.OrderDispatchDelivered); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrRemoteWrite, err)
		}
		return nil
	})
	return uc.finish(ctx, sess, orderID, err, MsgCompleted)
}

func (uc *UseCase) finish(ctx context.Context, sess session.Session, orderID string, err error, msg string) error {
	if err != nil {
		uc.log.Warn().Err(err).Str("order_id", orderID).Str("driver_id", sess.UserID).Msg("operación de despacho fallida")
		uc.notifier.Notify(ctx, sess, err.Error(), notify.KindDanger)
		return err
	}
	uc.log.Info().Str("order_id", orderID).Str("driver_id", sess.UserID).Msg(msg)
	uc.notifier.Notify(ctx, sess, msg, notify.KindSuccess)
	return nil
}

// owned carga el despacho del pedido y verifica que esté asignado al conductor de la sesión.
func owned(ctx context.Context, repo repository.DispatchRepository, sess session.Session, orderID string) (*entity.Dispatch, error) {
	if err := sess.Validate(); err != nil {
		return nil, err
	}
	if orderID == "" {
		return nil, fmt.Errorf("%w: order id required", domain.ErrInvalidInput)
	}
	d, err := repo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, fmt.Errorf("%w: dispatch for order %s", domain.ErrNotFound, orderID)
	}
	if d.DriverID != sess.UserID {
		return nil, fmt.Errorf("%w: dispatch for order %s is assigned to another driver", domain.ErrForbidden, orderID)
	}
	return d, nil
}

func statusIs(s string) func(*entity.Dispatch) bool {
	return func(d *entity.Dispatch) bool { return strings.EqualFold(d.Status, s) }
}

func delivered(d *entity.Dispatch) bool {
	return strings.EqualFold(d.DriverStatus, entity.DriverStatusDelivered) ||
		strings.EqualFold(d.Status, entity.DispatchStatusComplete)
}
