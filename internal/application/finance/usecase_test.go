package finance_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/refnet-api/internal/application/finance"
	"github.com/jhoicas/refnet-api/internal/application/notify"
	"github.com/jhoicas/refnet-api/internal/application/session"
	"github.com/jhoicas/refnet-api/internal/domain"
	"github.com/jhoicas/refnet-api/internal/domain/entity"
	"github.com/jhoicas/refnet-api/internal/domain/store"
	"github.com/jhoicas/refnet-api/internal/infrastructure/memstore"
	"github.com/jhoicas/refnet-api/internal/infrastructure/storerepo"
	"github.com/jhoicas/refnet-api/pkg/logger"
)

var (
	manager    = session.Session{UserID: "fin-1", Role: session.RoleFinanceManager}
	technician = session.Session{UserID: "tech-1", Role: session.RoleTechnician}
)

func setup(t *testing.T) (*memstore.Store, *finance.UseCase, *notify.Recorder) {
	t.Helper()
	mem := memstore.New()
	rec := &notify.Recorder{}
	uc := finance.NewUseCase(storerepo.NewOrderRepository(mem), storerepo.NewRepairRepository(mem), rec, logger.Nop())
	return mem, uc, rec
}

func insert(t *testing.T, mem *memstore.Store, table string, row store.Row) {
	t.Helper()
	_, err := mem.Insert(context.Background(), table, row)
	require.NoError(t, err)
}

// ─── Pedidos ─────────────────────────────────────────────────────────────────

func TestListOrders_FiltroPorAprobacion(t *testing.T) {
	mem, uc, _ := setup(t)
	for i, fa := range []string{"pending", "approved", "pending", "declined", "pending"} {
		insert(t, mem, store.TableOrders, store.Row{
			"order_id": fmt.Sprintf("o%d", i), "quantity": 1, "total_price": "10", "status": "pending", "finance_approval": fa,
		})
	}

	all, err := uc.ListOrders(context.Background(), finance.FilterAllOrders, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, all.Total)
	assert.Len(t, all.Items, 3)

	pending, err := uc.ListOrders(context.Background(), "pending", 1)
	require.NoError(t, err)
	assert.Equal(t, 3, pending.Total)
	for _, o := range pending.Items {
		assert.Equal(t, "pending", o.FinanceApproval)
	}

	_, err = uc.ListOrders(context.Background(), "shipped", 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateOrderStatus(t *testing.T) {
	mem, uc, rec := setup(t)
	insert(t, mem, store.TableOrders, store.Row{"order_id": "o1", "status": "pending"})

	require.NoError(t, uc.UpdateOrderStatus(context.Background(), manager, "o1", entity.OrderStatusApproved))
	o, err := storerepo.NewOrderRepository(mem).GetByID(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusApproved, o.Status)
	assert.Equal(t, "Order status updated to approved", rec.Messages()[0].Text)

	assert.ErrorIs(t, uc.UpdateOrderStatus(context.Background(), manager, "o1", "declined"), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.UpdateOrderStatus(context.Background(), manager, "ghost", "approved"), domain.ErrNotFound)
}

// ─── Reparaciones ────────────────────────────────────────────────────────────

func TestListRepairs_FiltroPorEstadoFinanciero(t *testing.T) {
	mem, uc, _ := setup(t)
	for i, fs := range []string{"pending", "inprogress", "completed", "pending"} {
		insert(t, mem, store.TableRepairs, store.Row{"id": fmt.Sprintf("r%d", i), "cost": 5, "status": "pending", "finance_status": fs})
	}

	page, err := uc.ListRepairs(context.Background(), "All", 2)
	require.NoError(t, err)
	assert.Equal(t, 4, page.Total)
	require.Len(t, page.Items, 1)

	inprogress, err := uc.ListRepairs(context.Background(), "inprogress", 1)
	require.NoError(t, err)
	require.Len(t, inprogress.Items, 1)
	assert.Equal(t, "r1", inprogress.Items[0].ID)
}

func TestApproveRepair(t *testing.T) {
	mem, uc, rec := setup(t)
	insert(t, mem, store.TableRepairs, store.Row{"id": "r1", "status": "pending", "finance_status": "pending"})

	require.NoError(t, uc.ApproveRepair(context.Background(), manager, "r1"))
	r, err := storerepo.NewRepairRepository(mem).GetByID(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, entity.RepairFinanceApproved, r.FinanceStatus)
	assert.Equal(t, finance.MsgRepairApproved, rec.Messages()[0].Text)

	assert.ErrorIs(t, uc.ApproveRepair(context.Background(), manager, "ghost"), domain.ErrNotFound)
}

func TestCompleteRepair_SoloTecnicoAsignado(t *testing.T) {
	mem, uc, _ := setup(t)
	insert(t, mem, store.TableRepairs, store.Row{"id": "r1", "technician_id": "tech-1", "status": "inprogress"})
	insert(t, mem, store.TableRepairs, store.Row{"id": "r2", "technician_id": "tech-2", "status": "inprogress"})

	require.NoError(t, uc.CompleteRepair(context.Background(), technician, "r1"))
	r, err := storerepo.NewRepairRepository(mem).GetByID(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, entity.RepairStatusCompleted, r.Status)

	assert.ErrorIs(t, uc.CompleteRepair(context.Background(), technician, "r2"), domain.ErrForbidden)
	assert.ErrorIs(t, uc.CompleteRepair(context.Background(), technician, "ghost"), domain.ErrNotFound)
}
