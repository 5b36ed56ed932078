package restock_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/refnet-api/internal/application/notify"
	"github.com/jhoicas/refnet-api/internal/application/restock"
	"github.com/jhoicas/refnet-api/internal/application/session"
	"github.com/jhoicas/refnet-api/internal/domain"
	"github.com/jhoicas/refnet-api/internal/domain/entity"
	"github.com/jhoicas/refnet-api/internal/domain/store"
	"github.com/jhoicas/refnet-api/internal/domain/store/storetest"
	"github.com/jhoicas/refnet-api/internal/infrastructure/memstore"
	"github.com/jhoicas/refnet-api/internal/infrastructure/storerepo"
	"github.com/jhoicas/refnet-api/pkg/logger"
)

var supplier = session.Session{UserID: "sup-1", Role: session.RoleSupplier}

func setup(t *testing.T) (*memstore.Store, *storetest.TxClient, *restock.UseCase, *notify.Recorder) {
	t.Helper()
	mem := memstore.New()
	c := storetest.NewTxClient(mem)
	rec := &notify.Recorder{}
	uc := restock.NewUseCase(
		storerepo.NewTxRunner(c),
		storerepo.NewRestockRepository(c),
		storerepo.NewProductRepository(c),
		rec,
		logger.Nop(),
	)
	_, err := mem.Insert(context.Background(), store.TableProducts, store.Row{
		"product_id": "p1", "name": "Switch", "price": decimal.NewFromInt(20), "stock_quantity": 10,
	})
	require.NoError(t, err)
	return mem, c, uc, rec
}

func stock(t *testing.T, mem *memstore.Store) int64 {
	t.Helper()
	p, err := storerepo.NewProductRepository(mem).GetByID(context.Background(), "p1")
	require.NoError(t, err)
	return p.StockQuantity
}

// ─── CreateRequest ───────────────────────────────────────────────────────────

func TestCreateRequest_OK(t *testing.T) {
	_, _, uc, rec := setup(t)

	req, err := uc.CreateRequest(context.Background(), supplier, "p1", " 12 ")
	require.NoError(t, err)
	assert.NotEmpty(t, req.ID)
	assert.Equal(t, int64(12), req.StockAmount)
	assert.Equal(t, entity.FinanceApprovalPending, req.FinanceApproval)
	assert.Equal(t, entity.RestockStatusPending, req.Status)

	msgs := rec.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, restock.MsgPlaced, msgs[0].Text)
}

func TestCreateRequest_CantidadInvalida(t *testing.T) {
	_, _, uc, rec := setup(t)
	for _, amount := range []string{"", "abc", "0", "-4", "1.5"} {
		_, err := uc.CreateRequest(context.Background(), supplier, "p1", amount)
		assert.ErrorIs(t, err, domain.ErrValidation, amount)
	}
	msgs := rec.Messages()
	require.NotEmpty(t, msgs)
	assert.Equal(t, restock.MsgInvalidAmount, msgs[0].Text)
	assert.Equal(t, notify.KindError, msgs[0].Kind)
}

func TestCreateRequest_ProductoInexistente(t *testing.T) {
	_, _, uc, _ := setup(t)
	_, err := uc.CreateRequest(context.Background(), supplier, "ghost", "3")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ─── UpdateStatus ────────────────────────────────────────────────────────────

func TestUpdateStatus_AceptarSumaStock(t *testing.T) {
	mem, _, uc, _ := setup(t)
	req, err := uc.CreateRequest(context.Background(), supplier, "p1", "5")
	require.NoError(t, err)

	out, err := uc.UpdateStatus(context.Background(), supplier, req.ID, entity.RestockStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, entity.RestockStatusAccepted, out.Status)
	assert.Equal(t, entity.FinanceApprovalPending, out.FinanceApproval, "no toca la aprobación financiera")
	assert.Equal(t, int64(15), stock(t, mem))

	_, err = uc.UpdateStatus(context.Background(), supplier, req.ID, entity.RestockStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, int64(15), stock(t, mem), "completar no vuelve a sumar")
}

func TestUpdateStatus_AceptarBloqueaProducto(t *testing.T) {
	mem, c, uc, _ := setup(t)
	ids := make([]string, 4)
	for i := range ids {
		req, err := uc.CreateRequest(context.Background(), supplier, "p1", "5")
		require.NoError(t, err)
		ids[i] = req.ID
	}
	c.SlowSelect(5 * time.Millisecond)

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, err := uc.UpdateStatus(context.Background(), supplier, id, entity.RestockStatusAccepted)
			assert.NoError(t, err)
		}(id)
	}
	wg.Wait()
	c.SlowSelect(0)

	assert.Equal(t, int64(30), stock(t, mem), "ningún incremento se pierde")
	locked := 0
	for _, q := range c.Queries(store.TableProducts) {
		if q.ForUpdate {
			locked++
		}
	}
	assert.Equal(t, len(ids), locked, "cada aceptación lee el producto con bloqueo")
}

func TestUpdateStatus_TransicionInvalida(t *testing.T) {
	_, _, uc, _ := setup(t)
	req, err := uc.CreateRequest(context.Background(), supplier, "p1", "5")
	require.NoError(t, err)

	_, err = uc.UpdateStatus(context.Background(), supplier, req.ID, entity.RestockStatusCompleted)
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = uc.UpdateStatus(context.Background(), supplier, req.ID, entity.RestockStatusRejected)
	require.NoError(t, err)
	_, err = uc.UpdateStatus(context.Background(), supplier, req.ID, entity.RestockStatusAccepted)
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = uc.UpdateStatus(context.Background(), supplier, req.ID, "shipped")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateStatus_FalloStockRevierteEstado(t *testing.T) {
	mem, c, uc, _ := setup(t)
	req, err := uc.CreateRequest(context.Background(), supplier, "p1", "5")
	require.NoError(t, err)
	c.FailUpdate(store.TableProducts, true)

	_, err = uc.UpdateStatus(context.Background(), supplier, req.ID, entity.RestockStatusAccepted)
	assert.ErrorIs(t, err, domain.ErrRemoteWrite)

	got, err := storerepo.NewRestockRepository(mem).GetByID(context.Background(), req.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RestockStatusPending, got.Status)
	assert.Equal(t, int64(10), stock(t, mem))
}

// ─── List ────────────────────────────────────────────────────────────────────

func TestList_FiltroYConteos(t *testing.T) {
	_, _, uc, _ := setup(t)
	ctx := context.Background()
	a, err := uc.CreateRequest(ctx, supplier, "p1", "1")
	require.NoError(t, err)
	b, err := uc.CreateRequest(ctx, supplier, "p1", "2")
	require.NoError(t, err)
	_, err = uc.CreateRequest(ctx, supplier, "p1", "3")
	require.NoError(t, err)
	_, err = uc.UpdateStatus(ctx, supplier, a.ID, entity.RestockStatusAccepted)
	require.NoError(t, err)
	_, err = uc.UpdateStatus(ctx, supplier, b.ID, entity.RestockStatusAccepted)
	require.NoError(t, err)
	_, err = uc.UpdateStatus(ctx, supplier, b.ID, entity.RestockStatusCompleted)
	require.NoError(t, err)

	all, err := uc.List(ctx, "All")
	require.NoError(t, err)
	assert.Equal(t, restock.Stats{Total: 3, Pending: 1, Accepted: 1, Completed: 1}, all.Stats)
	require.Len(t, all.Items, 3)
	require.NotNil(t, all.Items[0].Product)
	assert.Equal(t, "Switch", all.Items[0].Product.Name)

	accepted, err := uc.List(ctx, "accepted")
	require.NoError(t, err)
	require.Len(t, accepted.Items, 1)
	assert.Equal(t, a.ID, accepted.Items[0].ID)

	_, err = uc.List(ctx, "lost")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
