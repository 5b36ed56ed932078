package storerepo_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/refnet-api/internal/domain"
	"github.com/jhoicas/refnet-api/internal/domain/entity"
	"github.com/jhoicas/refnet-api/internal/domain/store"
	"github.com/jhoicas/refnet-api/internal/infrastructure/memstore"
	"github.com/jhoicas/refnet-api/internal/infrastructure/storerepo"
)

func outgoing(restockID string) *entity.FinancialRecord {
	return &entity.FinancialRecord{
		Amount:      decimal.NewFromInt(200),
		Balance:     decimal.NewFromInt(800),
		PaymentType: entity.PaymentOutgoing,
		Description: "Restock",
		EmployeeID:  "emp-1",
		RestockID:   &restockID,
	}
}

// ─── Append ──────────────────────────────────────────────────────────────────

func TestAppend_SegundoAsientoDeLaMismaSolicitudYaProcesado(t *testing.T) {
	repo := storerepo.NewFinancialRecordRepository(memstore.New())

	require.NoError(t, repo.Append(context.Background(), outgoing("r1")))
	err := repo.Append(context.Background(), outgoing("r1"))
	assert.ErrorIs(t, err, domain.ErrAlreadyProcessed)
	assert.ErrorIs(t, err, store.ErrDuplicate)

	require.NoError(t, repo.Append(context.Background(), outgoing("r2")))
	recs, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, recs, 2)
}
