package repository

import (
	"context"

	"github.com/jhoicas/refnet-api/internal/domain/entity"
)

// FinancialRecordRepository puerto del libro contable (solo inserción).
type FinancialRecordRepository interface {
	// Latest devuelve el asiento más reciente o (nil, nil) si el libro está vacío.
	Latest(ctx context.Context) (*entity.FinancialRecord, error)
	List(ctx context.Context) ([]*entity.FinancialRecord, error)
	Append(ctx context.Context, rec *entity.FinancialRecord) error
	FindByRestockID(ctx context.Context, restockID string) (*entity.FinancialRecord, error)
	// LockForPosting serializa a quienes registran asientos; sin transacción no hace nada.
	LockForPosting(ctx context.Context) error
}
