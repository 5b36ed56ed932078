package dispatch_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/refnet-api/internal/application/dispatch"
	"github.com/jhoicas/refnet-api/internal/application/notify"
	"github.com/jhoicas/refnet-api/internal/application/session"
	"github.com/jhoicas/refnet-api/internal/domain"
	"github.com/jhoicas/refnet-api/internal/domain/entity"
	"github.com/jhoicas/refnet-api/internal/domain/store"
	"github.com/jhoicas/refnet-api/internal/domain/store/storetest"
	"github.com/jhoicas/refnet-api/internal/infrastructure/memstore"
	"github.com/jhoicas/refnet-api/internal/infrastructure/storerepo"
	"github.com/jhoicas/refnet-api/pkg/logger"
)

var driver = session.Session{UserID: "drv-1", Role: session.RoleDriver}

func setup(t *testing.T) (*memstore.Store, *storetest.TxClient, *dispatch.UseCase, *notify.Recorder) {
	t.Helper()
	mem := memstore.New()
	c := storetest.NewTxClient(mem)
	rec := &notify.Recorder{}
	uc := dispatch.NewUseCase(storerepo.NewTxRunner(c), storerepo.NewDispatchRepository(c), rec, logger.Nop())
	return mem, c, uc, rec
}

func seed(t *testing.T, mem *memstore.Store, orderID, driverID, status, driverStatus string) {
	t.Helper()
	ctx := context.Background()
	_, err := mem.Insert(ctx, store.TableOrders, store.Row{
		"order_id": orderID, "product_id": "p1", "user_id": "c1", "quantity": 1,
		"status": "approved", "finance_approval": "approved", "dispatch_status": "pending",
	})
	require.NoError(t, err)
	_, err = mem.Insert(ctx, store.TableDispatches, store.Row{
		"order_id": orderID, "driver_id": driverID, "status": status, "driver_status": driverStatus,
		"delivery_address": "Moi Avenue", "tracking_number": "TRK-" + orderID,
	})
	require.NoError(t, err)
}

func get(t *testing.T, mem *memstore.Store, orderID string) (*entity.Dispatch, *entity.Order) {
	t.Helper()
	d, err := storerepo.NewDispatchRepository(mem).GetByOrderID(context.Background(), orderID)
	require.NoError(t, err)
	o, err := storerepo.NewOrderRepository(mem).GetByID(context.Background(), orderID)
	require.NoError(t, err)
	return d, o
}

// ─── ListForDriver ───────────────────────────────────────────────────────────

func TestListForDriver_PaginaYConteos(t *testing.T) {
	mem, _, uc, _ := setup(t)
	statuses := []string{"pending", "pending", "in transit", "complete", "accepted", "pending", "in transit"}
	for i, st := range statuses {
		ds := "pending"
		if st == "complete" {
			ds = "delivered"
		}
		seed(t, mem, fmt.Sprintf("o%d", i), "drv-1", st, ds)
	}
	seed(t, mem, "other", "drv-2", "pending", "pending")

	res, err := uc.ListForDriver(context.Background(), driver, 1)
	require.NoError(t, err)
	assert.Equal(t, dispatch.Stats{Total: 7, Pending: 3, InTransit: 2, Delivered: 1}, res.Stats)
	assert.Equal(t, 2, res.Page.TotalPages)
	require.Len(t, res.Page.Items, 6)
	assert.Equal(t, "o6", res.Page.Items[0].OrderID, "más reciente primero")

	second, err := uc.ListForDriver(context.Background(), driver, 2)
	require.NoError(t, err)
	require.Len(t, second.Page.Items, 1)
	assert.Equal(t, "o0", second.Page.Items[0].OrderID)
}

func TestListForDriver_SinSesion(t *testing.T) {
	_, _, uc, _ := setup(t)
	_, err := uc.ListForDriver(context.Background(), session.Session{}, 1)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ─── Accept / Decline / Complete ─────────────────────────────────────────────

func TestAccept_CambiaEstado(t *testing.T) {
	mem, _, uc, rec := setup(t)
	seed(t, mem, "o1", "drv-1", "pending", "pending")

	require.NoError(t, uc.Accept(context.Background(), driver, "o1"))
	d, _ := get(t, mem, "o1")
	assert.Equal(t, entity.DispatchStatusAccepted, d.Status)
	assert.Equal(t, entity.DriverStatusPending, d.DriverStatus)

	msgs := rec.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, dispatch.MsgAccepted, msgs[0].Text)
}

func TestAccept_DespachoDeOtroConductor(t *testing.T) {
	mem, _, uc, rec := setup(t)
	seed(t, mem, "o1", "drv-2", "pending", "pending")

	err := uc.Accept(context.Background(), driver, "o1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	d, _ := get(t, mem, "o1")
	assert.Equal(t, entity.DispatchStatusPending, d.Status)
	assert.Equal(t, notify.KindDanger, rec.Messages()[0].Kind)
}

func TestDecline_SoloDriverStatus(t *testing.T) {
	mem, _, uc, _ := setup(t)
	seed(t, mem, "o1", "drv-1", "pending", "pending")

	require.NoError(t, uc.Decline(context.Background(), driver, "o1"))
	d, _ := get(t, mem, "o1")
	assert.Equal(t, entity.DriverStatusDeclined, d.DriverStatus)
	assert.Equal(t, entity.DispatchStatusPending, d.Status)
}

func TestComplete_MarcaPedidoEntregado(t *testing.T) {
	mem, _, uc, _ := setup(t)
	seed(t, mem, "o1", "drv-1", "in transit", "pending")

	require.NoError(t, uc.Complete(context.Background(), driver, "o1"))
	d, o := get(t, mem, "o1")
	assert.Equal(t, entity.DispatchStatusComplete, d.Status)
	assert.Equal(t, entity.DriverStatusDelivered, d.DriverStatus)
	assert.Equal(t, entity.OrderDispatchDelivered, o.DispatchStatus)
}

func TestComplete_FalloPedidoRevierteDespacho(t *testing.T) {
	mem, c, uc, _ := setup(t)
	seed(t, mem, "o1", "drv-1", "in transit", "pending")
	c.FailUpdate(store.TableOrders, true)

	err := uc.Complete(context.Background(), driver, "o1")
	assert.ErrorIs(t, err, domain.ErrRemoteWrite)
	d, o := get(t, mem, "o1")
	assert.Equal(t, entity.DispatchStatusInTransit, d.Status)
	assert.Equal(t, "pending", o.DispatchStatus)
}

func TestComplete_PedidoSinDespacho(t *testing.T) {
	_, _, uc, _ := setup(t)
	assert.ErrorIs(t, uc.Complete(context.Background(), driver, "nope"), domain.ErrNotFound)
	assert.ErrorIs(t, uc.Complete(context.Background(), driver, ""), domain.ErrInvalidInput)
}
