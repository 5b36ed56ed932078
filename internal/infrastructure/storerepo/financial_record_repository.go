package storerepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/refnet-api/internal/domain"
	"github.com/jhoicas/refnet-api/internal/domain/entity"
	"github.com/jhoicas/refnet-api/internal/domain/repository"
	"github.com/jhoicas/refnet-api/internal/domain/store"
)

var _ repository.FinancialRecordRepository = (*FinancialRecordRepo)(nil)

// LedgerLockKey clave del candado que serializa los asientos.
const LedgerLockKey = "ledger:financial_records"

// FinancialRecordRepo libro contable sobre store.Client.
type FinancialRecordRepo struct {
	c store.Client
}

// NewFinancialRecordRepository construye el repositorio.
func NewFinancialRecordRepository(c store.Client) *FinancialRecordRepo {
	return &FinancialRecordRepo{c: c}
}

func (r *FinancialRecordRepo) Latest(ctx context.Context) (*entity.FinancialRecord, error) {
	rows, err := r.c.Select(ctx, store.TableFinancialRecords, store.Query{Order: newestFirst, Limit: 1})
	if err != nil {
		return nil, fmt.Errorf("latest financial record: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return parseFinancialRecord(rows[0]), nil
}

func (r *FinancialRecordRepo) List(ctx context.Context) ([]*entity.FinancialRecord, error) {
	rows, err := r.c.Select(ctx, store.TableFinancialRecords, store.Query{Order: newestFirst})
	if err != nil {
		return nil, fmt.Errorf("list financial records: %w", err)
	}
	out := make([]*entity.FinancialRecord, len(rows))
	for i, row := range rows {
		out[i] = parseFinancialRecord(row)
	}
	return out, nil
}

// Append inserta el asiento y completa ID y CreatedAt. Un segundo asiento para la misma
// solicitud devuelve domain.ErrAlreadyProcessed.
func (r *FinancialRecordRepo) Append(ctx context.Context, rec *entity.FinancialRecord) error {
	row := store.Row{
		"amount":       rec.Amount,
		"balance":      rec.Balance,
		"payment_type": string(rec.PaymentType),
		"description":  rec.Description,
		"employee_id":  rec.EmployeeID,
	}
	if rec.RestockID != nil {
		row["restock_id"] = *rec.RestockID
	}
	if !rec.CreatedAt.IsZero() {
		row["created_at"] = rec.CreatedAt
	}
	saved, err := r.c.Insert(ctx, store.TableFinancialRecords, row)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) && rec.RestockID != nil {
			return fmt.Errorf("%w: restock request %s already posted: %w", domain.ErrAlreadyProcessed, *rec.RestockID, err)
		}
		return fmt.Errorf("append financial record: %w", err)
	}
	stored := parseFinancialRecord(saved)
	rec.ID = stored.ID
	rec.CreatedAt = stored.CreatedAt
	return nil
}

func (r *FinancialRecordRepo) FindByRestockID(ctx context.Context, restockID string) (*entity.FinancialRecord, error) {
	rows, err := r.c.Select(ctx, store.TableFinancialRecords, store.Query{
		Filter: store.Filter{"restock_id": restockID},
		Limit:  1,
	})
	if err != nil {
		return nil, fmt.Errorf("find financial record by restock: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return parseFinancialRecord(rows[0]), nil
}

// LockForPosting toma el candado del libro si el cliente es una transacción.
func (r *FinancialRecordRepo) LockForPosting(ctx context.Context) error {
	tx, ok := r.c.(store.Tx)
	if !ok {
		return nil
	}
	return tx.Lock(ctx, LedgerLockKey)
}

func parseFinancialRecord(row store.Row) *entity.FinancialRecord {
	rd := newReader(row)
	return &entity.FinancialRecord{
		ID:          rd.str("id"),
		Amount:      rd.decimal("amount"),
		Balance:     rd.decimal("balance"),
		PaymentType: entity.PaymentType(rd.str("payment_type")),
		Description: rd.str("description"),
		EmployeeID:  rd.str("employee_id"),
		RestockID:   rd.optStr("restock_id"),
		CreatedAt:   rd.time("created_at"),
	}
}
