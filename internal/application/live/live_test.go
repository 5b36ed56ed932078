package live_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/refnet-api/internal/application/live"
	"github.com/jhoicas/refnet-api/internal/domain/store"
	"github.com/jhoicas/refnet-api/internal/infrastructure/memstore"
	"github.com/jhoicas/refnet-api/pkg/logger"
)

// gatedFetcher cada llamada n devuelve []int{n} cuando se libera su compuerta.
type gatedFetcher struct {
	calls atomic.Int64
	mu    sync.Mutex
	gates map[int64]chan struct{}
}

func newGatedFetcher() *gatedFetcher {
	return &gatedFetcher{gates: map[int64]chan struct{}{}}
}

func (g *gatedFetcher) gate(n int64) chan struct{} {
	g.mu.Lock()
	defer g.mu.Unlock()
	ch, ok := g.gates[n]
	if !ok {
		ch = make(chan struct{})
		g.gates[n] = ch
	}
	return ch
}

func (g *gatedFetcher) fetch(ctx context.Context) ([]int, error) {
	n := g.calls.Add(1)
	<-g.gate(n)
	return []int{int(n)}, nil
}

func (g *gatedFetcher) waitCalls(t *testing.T, n int64) {
	t.Helper()
	require.Eventually(t, func() bool { return g.calls.Load() >= n }, time.Second, time.Millisecond)
}

// ─── View ────────────────────────────────────────────────────────────────────

func TestView_GanaLaUltimaIniciada(t *testing.T) {
	g := newGatedFetcher()
	v := live.NewView(g.fetch, logger.Nop(), nil)

	v.Invalidate(context.Background())
	g.waitCalls(t, 1)
	v.Invalidate(context.Background())
	g.waitCalls(t, 2)

	close(g.gate(2))
	require.Eventually(t, func() bool {
		_, gen := v.Snapshot()
		return gen == 2
	}, time.Second, time.Millisecond)

	close(g.gate(1))
	v.Wait()

	items, gen := v.Snapshot()
	assert.Equal(t, uint64(2), gen)
	assert.Equal(t, []int{2}, items, "la recarga vieja que termina tarde se descarta")
}

func TestView_ErrorConservaListaAnterior(t *testing.T) {
	fail := false
	v := live.NewView(func(context.Context) ([]string, error) {
		if fail {
			return nil, errors.New("boom")
		}
		return []string{"a", "b"}, nil
	}, logger.Nop(), nil)

	require.NoError(t, v.Refresh(context.Background()))
	fail = true
	assert.Error(t, v.Refresh(context.Background()))

	items, gen := v.Snapshot()
	assert.Equal(t, []string{"a", "b"}, items)
	assert.Equal(t, uint64(1), gen)
	assert.Error(t, v.Err())
}

func TestView_OnChange(t *testing.T) {
	var got [][]int
	v := live.NewView(func(context.Context) ([]int, error) { return []int{7}, nil }, logger.Nop(),
		func(items []int) { got = append(got, items) })

	require.NoError(t, v.Refresh(context.Background()))
	assert.Equal(t, [][]int{{7}}, got)
}

// ─── Feed ────────────────────────────────────────────────────────────────────

func TestFeed_ReenviaEventosEInvalidaVista(t *testing.T) {
	mem := memstore.New()
	ctx := context.Background()

	var mu sync.Mutex
	var events []store.ChangeEvent
	sink := live.SinkFunc(func(ev store.ChangeEvent) {
		mu.Lock()
		events = append(events, ev)
		mu.Unlock()
	})

	view := live.NewView(func(ctx context.Context) ([]store.Row, error) {
		return mem.Select(ctx, store.TableRestock, store.Query{})
	}, logger.Nop(), nil)

	feed := live.NewFeed(mem, logger.Nop(), sink)
	feed.Attach(view)
	require.NoError(t, feed.Start(ctx, store.TableRestock, store.TableFinancialRecords))
	defer feed.Stop()

	_, err := mem.Insert(ctx, store.TableRestock, store.Row{"id": "r1", "product_id": "p1", "stock_amount": 2})
	require.NoError(t, err)
	_, err = mem.Update(ctx, store.TableRestock, store.Row{"finance_approval": "approved"}, store.Filter{"id": "r1"})
	require.NoError(t, err)
	view.Wait()

	mu.Lock()
	require.Len(t, events, 2)
	assert.Equal(t, store.EventInsert, events[0].Op)
	assert.Equal(t, store.EventUpdate, events[1].Op)
	assert.Equal(t, "r1", events[1].ID)
	mu.Unlock()

	rows, gen := view.Snapshot()
	assert.Equal(t, uint64(2), gen)
	require.Len(t, rows, 1)
	assert.Equal(t, "approved", rows[0]["finance_approval"])

	feed.Stop()
	_, err = mem.Insert(ctx, store.TableRestock, store.Row{"id": "r2"})
	require.NoError(t, err)
	mu.Lock()
	assert.Len(t, events, 2, "tras Stop no llegan eventos")
	mu.Unlock()
}

func TestFeed_TablaDesconocida(t *testing.T) {
	feed := live.NewFeed(memstore.New(), logger.Nop())
	err := feed.Start(context.Background(), store.TableRestock, "users")
	assert.ErrorIs(t, err, store.ErrUnknownIdentifier)
}
