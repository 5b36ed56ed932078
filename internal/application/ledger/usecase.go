// Package ledger aprobación financiera de reposiciones y lecturas del libro contable.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/refnet-api/internal/application/notify"
	"github.com/jhoicas/refnet-api/internal/application/session"
	"github.com/jhoicas/refnet-api/internal/domain"
	"github.com/jhoicas/refnet-api/internal/domain/entity"
	domledger "github.com/jhoicas/refnet-api/internal/domain/ledger"
	"github.com/jhoicas/refnet-api/internal/domain/repository"
	"github.com/jhoicas/refnet-api/pkg/logger"
)

// Mensajes de aviso al usuario.
const (
	MsgApproved = "Restock request approved"
	MsgDeclined = "Restock request declined"
)

// UseCase flujo de posteo: costo -> saldo vigente -> asiento -> aprobación.
type UseCase struct {
	tx       TxRunner
	restocks repository.RestockRepository
	products repository.ProductRepository
	records  repository.FinancialRecordRepository
	notifier notify.Notifier
	log      *logger.Logger
}

// NewUseCase construye el caso de uso. Los repositorios planos se usan para lecturas.
func NewUseCase(
	tx TxRunner,
	restocks repository.RestockRepository,
	products repository.ProductRepository,
	records repository.FinancialRecordRepository,
	notifier notify.Notifier,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		tx:       tx,
		restocks: restocks,
		products: products,
		records:  records,
		notifier: notifier,
		log:      log.Named("ledger"),
	}
}

// ApprovalResult resultado de una aprobación. Resumed indica que el asiento ya existía
// (aprobación previa interrumpida) y solo se cambió el estado.
type ApprovalResult struct {
	Request *entity.RestockRequest
	Record  *entity.FinancialRecord
	Resumed bool
}

// ApproveRestock registra el costo de la reposición en el libro y marca la solicitud como aprobada.
// El asiento siempre se escribe antes del cambio de estado. Con almacén transaccional ambos pasos
// son atómicos; sin él, un fallo del segundo paso devuelve domain.ErrReconciliation.
func (uc *UseCase) ApproveRestock(ctx context.Context, sess session.Session, requestID string) (*ApprovalResult, error) {
	if err := sess.Validate(); err != nil {
		return nil, err
	}
	if requestID == "" {
		return nil, fmt.Errorf("%w: restock request id required", domain.ErrInvalidInput)
	}

	var result *ApprovalResult
	err := uc.tx.RunLedger(ctx, func(
		restockRepo repository.RestockRepository,
		productRepo repository.ProductRepository,
		recordRepo repository.FinancialRecordRepository,
	) error {
		result = nil
		if err := recordRepo.LockForPosting(ctx); err != nil {
			return fmt.Errorf("%w: lock ledger: %w", domain.ErrRemoteWrite, err)
		}

		req, err := restockRepo.GetByIDForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if req == nil {
			return fmt.Errorf("%w: restock request %s", domain.ErrNotFound, requestID)
		}
		if req.FinanceApproval != entity.FinanceApprovalPending {
			return fmt.Errorf("%w: restock request %s is %s", domain.ErrAlreadyProcessed, requestID, req.FinanceApproval)
		}

		// Un asiento previo para esta solicitud significa que una aprobación anterior
		// no llegó a cambiar el estado: se completa sin volver a postear.
		posted, err := recordRepo.FindByRestockID(ctx, requestID)
		if err != nil {
			return err
		}
		if posted != nil {
			if err := restockRepo.UpdateFinanceApproval(ctx, requestID, entity.FinanceApprovalApproved); err != nil {
				return uc.statusFlipFailed(req, posted, err)
			}
			req.FinanceApproval = entity.FinanceApprovalApproved
			result = &ApprovalResult{Request: req, Record: posted, Resumed: true}
			return nil
		}

		product, err := productRepo.GetByID(ctx, req.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return fmt.Errorf("%w: product %s", domain.ErrNotFound, req.ProductID)
		}
		req.Product = product
		uc.warnDefaults(req, product)

		cost := domledger.RestockCost(product.Price, req.StockAmount)
		latest, err := recordRepo.Latest(ctx)
		if err != nil {
			return err
		}
		current := latestBalance(latest)

		rid := req.ID
		rec := &entity.FinancialRecord{
			Amount:      cost,
			Balance:     domledger.NextBalance(current, cost, entity.PaymentOutgoing),
			PaymentType: entity.PaymentOutgoing,
			Description: entity.RestockDescription(req.StockAmount, product.Name),
			EmployeeID:  sess.UserID,
			RestockID:   &rid,
			CreatedAt:   stampAfter(latest, time.Now().UTC()),
		}
		if err := recordRepo.Append(ctx, rec); err != nil {
			if errors.Is(err, domain.ErrAlreadyProcessed) {
				return err
			}
			return fmt.Errorf("%w: %w", domain.ErrRemoteWrite, err)
		}

		if err := restockRepo.UpdateFinanceApproval(ctx, requestID, entity.FinanceApprovalApproved); err != nil {
			return uc.statusFlipFailed(req, rec, err)
		}
		req.FinanceApproval = entity.FinanceApprovalApproved
		result = &ApprovalResult{Request: req, Record: rec}
		return nil
	})
	if err != nil {
		uc.log.Warn().Err(err).Str("restock_id", requestID).Msg("aprobación de reposición fallida")
		uc.notifier.Notify(ctx, sess, err.Error(), notify.KindError)
		return nil, err
	}

	uc.log.Info().
		Str("restock_id", requestID).
		Str("ledger_record_id", result.Record.ID).
		Str("amount", result.Record.Amount.String()).
		Str("balance", result.Record.Balance.String()).
		Bool("resumed", result.Resumed).
		Msg("reposición aprobada")
	uc.notifier.Notify(ctx, sess, MsgApproved, notify.KindSuccess)
	return result, nil
}

// stampStep menor paso representable por todos los drivers (Mongo guarda milisegundos).
const stampStep = time.Millisecond

// stampAfter fecha del nuevo asiento, tomada bajo el candado: nunca anterior ni igual al último,
// para que Latest siga devolviendo el asiento con el saldo vigente.
func stampAfter(latest *entity.FinancialRecord, now time.Time) time.Time {
	now = now.Truncate(stampStep)
	if latest != nil && !now.After(latest.CreatedAt) {
		return latest.CreatedAt.Truncate(stampStep).Add(stampStep)
	}
	return now
}

// statusFlipFailed clasifica el fallo del cambio de estado posterior al asiento.
func (uc *UseCase) statusFlipFailed(req *entity.RestockRequest, rec *entity.FinancialRecord, err error) error {
	if uc.tx.Atomic() {
		return fmt.Errorf("%w: approve restock request %s: %w", domain.ErrRemoteWrite, req.ID, err)
	}
	uc.log.Error().Err(err).
		Str("restock_id", req.ID).
		Str("ledger_record_id", rec.ID).
		Msg("asiento registrado pero la solicitud sigue pendiente")
	return fmt.Errorf("%w: ledger record %s posted but restock request %s not approved: %w",
		domain.ErrReconciliation, rec.ID, req.ID, err)
}

func (uc *UseCase) warnDefaults(req *entity.RestockRequest, product *entity.Product) {
	for _, f := range req.DefaultedFields {
		if f == "stock_amount" {
			uc.log.Warn().Str("restock_id", req.ID).Str("field", f).Msg("cantidad ausente, no numérica o fraccionaria; se usa la parte entera o 0")
		}
	}
	for _, f := range product.DefaultedFields {
		if f == "price" {
			uc.log.Warn().Str("product_id", product.ID).Str("field", f).Msg("valor ausente o no numérico, se usa 0")
		}
	}
}

// DeclineRestock marca la solicitud como rechazada sin tocar el libro. Rechazar dos veces es válido;
// rechazar una solicitud aprobada devuelve domain.ErrAlreadyProcessed.
func (uc *UseCase) DeclineRestock(ctx context.Context, sess session.Session, requestID string) error {
	if err := sess.Validate(); err != nil {
		return err
	}
	if requestID == "" {
		return fmt.Errorf("%w: restock request id required", domain.ErrInvalidInput)
	}
	err := uc.tx.RunLedger(ctx, func(
		restockRepo repository.RestockRepository,
		_ repository.ProductRepository,
		recordRepo repository.FinancialRecordRepository,
	) error {
		if err := recordRepo.LockForPosting(ctx); err != nil {
			return fmt.Errorf("%w: lock ledger: %w", domain.ErrRemoteWrite, err)
		}
		req, err := restockRepo.GetByIDForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if req == nil {
			return fmt.Errorf("%w: restock request %s", domain.ErrNotFound, requestID)
		}
		switch req.FinanceApproval {
		case entity.FinanceApprovalDeclined:
			return nil
		case entity.FinanceApprovalApproved:
			return fmt.Errorf("%w: restock request %s is approved", domain.ErrAlreadyProcessed, requestID)
		}
		if err := restockRepo.UpdateFinanceApproval(ctx, requestID, entity.FinanceApprovalDeclined); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrRemoteWrite, err)
		}
		return nil
	})
	if err != nil {
		uc.notifier.Notify(ctx, sess, err.Error(), notify.KindError)
		return err
	}
	uc.log.Info().Str("restock_id", requestID).Msg("reposición rechazada")
	uc.notifier.Notify(ctx, sess, MsgDeclined, notify.KindDanger)
	return nil
}
