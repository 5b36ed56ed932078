package memstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/refnet-api/internal/domain/store"
	"github.com/jhoicas/refnet-api/internal/infrastructure/memstore"
)

func TestInsert_GeneraClaveYFecha(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()

	row, err := s.Insert(ctx, store.TableProducts, store.Row{"name": "Router", "price": decimal.NewFromInt(50)})
	require.NoError(t, err)
	assert.NotEmpty(t, row["product_id"])
	assert.NotNil(t, row["created_at"])

	_, err = s.Insert(ctx, store.TableProducts, store.Row{"product_id": row["product_id"], "name": "dup"})
	assert.ErrorIs(t, err, store.ErrDuplicate, "clave duplicada debe fallar")
}

func TestInsert_ColumnaUnicaRechazaRepetidoYAdmiteNulos(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()
	rec := func(restockID any) store.Row {
		r := store.Row{"amount": decimal.NewFromInt(10), "balance": decimal.NewFromInt(-10), "payment_type": "outgoing"}
		if restockID != nil {
			r["restock_id"] = restockID
		}
		return r
	}

	_, err := s.Insert(ctx, store.TableFinancialRecords, rec("r1"))
	require.NoError(t, err)
	_, err = s.Insert(ctx, store.TableFinancialRecords, rec("r1"))
	assert.ErrorIs(t, err, store.ErrDuplicate)

	// Asientos sin solicitud (ingresos) no chocan entre sí.
	_, err = s.Insert(ctx, store.TableFinancialRecords, rec(nil))
	require.NoError(t, err)
	_, err = s.Insert(ctx, store.TableFinancialRecords, rec(nil))
	require.NoError(t, err)

	rows, err := s.Select(ctx, store.TableFinancialRecords, store.Query{})
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestWithTx_PanicLiberaElAlmacen(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()

	func() {
		defer func() { _ = recover() }()
		_ = s.WithTx(ctx, func(tx store.Tx) error {
			_, err := tx.Insert(ctx, store.TableProducts, store.Row{"product_id": "p-panic", "name": "x"})
			require.NoError(t, err)
			panic("handler roto")
		})
	}()

	done := make(chan error, 1)
	go func() {
		_, err := s.Insert(ctx, store.TableProducts, store.Row{"product_id": "p1", "name": "Router"})
		done <- err
	}()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("el almacén quedó bloqueado después del panic")
	}

	rows, err := s.Select(ctx, store.TableProducts, store.Query{Filter: store.Filter{"product_id": "p-panic"}})
	require.NoError(t, err)
	assert.Empty(t, rows, "la tx que entró en panic no se confirma")
}

func TestSelect_FiltroOrdenLimite(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()
	for i, st := range []string{"pending", "approved", "pending"} {
		_, err := s.Insert(ctx, store.TableRestock, store.Row{"id": string(rune('a' + i)), "finance_approval": st, "stock_amount": i})
		require.NoError(t, err)
	}

	rows, err := s.Select(ctx, store.TableRestock, store.Query{
		Filter: store.Filter{"finance_approval": "pending"},
		Order:  &store.Order{Column: "created_at", Ascending: false},
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "c", rows[0]["id"], "el más reciente primero")

	rows, err = s.Select(ctx, store.TableRestock, store.Query{
		Columns: []string{"id"},
		Order:   &store.Order{Column: "stock_amount", Ascending: false},
		Limit:   1,
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, store.Row{"id": "c"}, rows[0])
}

func TestSelect_IdentificadorDesconocido(t *testing.T) {
	s := memstore.New()
	_, err := s.Select(context.Background(), "users", store.Query{})
	assert.True(t, errors.Is(err, store.ErrUnknownIdentifier))

	_, err = s.Select(context.Background(), store.TableRestock, store.Query{Filter: store.Filter{"nope": 1}})
	assert.True(t, errors.Is(err, store.ErrUnknownIdentifier))
}

func TestUpdate_CuentaFilasAfectadas(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()
	_, _ = s.Insert(ctx, store.TableRestock, store.Row{"id": "r1", "finance_approval": "pending"})
	_, _ = s.Insert(ctx, store.TableRestock, store.Row{"id": "r2", "finance_approval": "pending"})

	n, err := s.Update(ctx, store.TableRestock, store.Row{"finance_approval": "approved"}, store.Filter{"id": "r1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = s.Update(ctx, store.TableRestock, store.Row{"finance_approval": "approved"}, store.Filter{"id": "missing"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	rows, _ := s.Select(ctx, store.TableRestock, store.Query{Filter: store.Filter{"finance_approval": "approved"}})
	assert.Len(t, rows, 1)
}

func TestWithTx_RollbackDescartaCambiosYEventos(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()
	var events []store.ChangeEvent
	_, err := s.Subscribe(ctx, store.TableFinancialRecords, store.EventAll, func(ev store.ChangeEvent) {
		events = append(events, ev)
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = s.WithTx(ctx, func(tx store.Tx) error {
		_, err := tx.Insert(ctx, store.TableFinancialRecords, store.Row{"amount": decimal.NewFromInt(10)})
		require.NoError(t, err)
		rows, err := tx.Select(ctx, store.TableFinancialRecords, store.Query{})
		require.NoError(t, err)
		assert.Len(t, rows, 1, "la tx ve sus propias escrituras")
		return boom
	})
	assert.ErrorIs(t, err, boom)

	rows, err := s.Select(ctx, store.TableFinancialRecords, store.Query{})
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Empty(t, events)
}

func TestSubscribe_MascaraYUnsubscribe(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()
	var inserts, all int
	subIns, err := s.Subscribe(ctx, store.TableOrders, store.EventInsert, func(store.ChangeEvent) { inserts++ })
	require.NoError(t, err)
	_, err = s.Subscribe(ctx, store.TableOrders, store.EventAll, func(store.ChangeEvent) { all++ })
	require.NoError(t, err)

	_, _ = s.Insert(ctx, store.TableOrders, store.Row{"order_id": "o1", "status": "pending"})
	_, _ = s.Update(ctx, store.TableOrders, store.Row{"status": "approved"}, store.Filter{"order_id": "o1"})
	assert.Equal(t, 1, inserts)
	assert.Equal(t, 2, all)

	subIns.Unsubscribe()
	_, _ = s.Insert(ctx, store.TableOrders, store.Row{"order_id": "o2"})
	assert.Equal(t, 1, inserts)
	assert.Equal(t, 3, all)
}
