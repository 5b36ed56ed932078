// Package storetest envoltorios de store.Client para inyectar fallos en pruebas.
package storetest

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jhoicas/refnet-api/internal/domain/store"
)

// ErrInjected error devuelto por las operaciones con fallo inyectado.
var ErrInjected = errors.New("storetest: injected failure")

// Faults tablas cuyas escrituras deben fallar, retardo de lecturas y registro de consultas.
type Faults struct {
	mu         sync.Mutex
	failInsert map[string]bool
	failUpdate map[string]bool
	selectWait time.Duration
	queries    map[string][]store.Query
}

// SlowSelect retrasa cada Select en d antes de delegar.
func (f *Faults) SlowSelect(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.selectWait = d
}

// Queries consultas recibidas sobre table, en orden.
func (f *Faults) Queries(table string) []store.Query {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]store.Query(nil), f.queries[table]...)
}

func (f *Faults) beforeSelect(ctx context.Context, table string, q store.Query) error {
	f.mu.Lock()
	if f.queries == nil {
		f.queries = map[string][]store.Query{}
	}
	f.queries[table] = append(f.queries[table], q)
	wait := f.selectWait
	f.mu.Unlock()
	if wait <= 0 {
		return nil
	}
	select {
	case <-time.After(wait):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// FailInsert hace fallar los Insert sobre table (on=false lo desactiva).
func (f *Faults) FailInsert(table string, on bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failInsert == nil {
		f.failInsert = map[string]bool{}
	}
	f.failInsert[table] = on
}

// FailUpdate hace fallar los Update sobre table (on=false lo desactiva).
func (f *Faults) FailUpdate(table string, on bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUpdate == nil {
		f.failUpdate = map[string]bool{}
	}
	f.failUpdate[table] = on
}

func (f *Faults) insertFails(table string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.failInsert[table]
}

func (f *Faults) updateFails(table string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.failUpdate[table]
}

// Client envuelve un cliente sin exponer transacciones (modo best-effort).
type Client struct {
	store.Client
	*Faults
}

// NewClient envuelve c. El resultado nunca implementa store.Transactor.
func NewClient(c store.Client) *Client {
	return &Client{Client: c, Faults: &Faults{}}
}

func (c *Client) Select(ctx context.Context, table string, q store.Query) ([]store.Row, error) {
	if err := c.beforeSelect(ctx, table, q); err != nil {
		return nil, err
	}
	return c.Client.Select(ctx, table, q)
}

func (c *Client) Insert(ctx context.Context, table string, row store.Row) (store.Row, error) {
	if c.insertFails(table) {
		return nil, ErrInjected
	}
	return c.Client.Insert(ctx, table, row)
}

func (c *Client) Update(ctx context.Context, table string, patch store.Row, filter store.Filter) (int64, error) {
	if c.updateFails(table) {
		return 0, ErrInjected
	}
	return c.Client.Update(ctx, table, patch, filter)
}

// TxClient envuelve un cliente transaccional; los fallos también aplican dentro de la tx.
type TxClient struct {
	*Client
	tx store.Transactor
}

// Backend cliente transaccional (por ejemplo memstore.Store).
type Backend interface {
	store.Client
	store.Transactor
}

// NewTxClient envuelve b conservando WithTx.
func NewTxClient(b Backend) *TxClient {
	return &TxClient{Client: NewClient(b), tx: b}
}

func (c *TxClient) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return c.tx.WithTx(ctx, func(tx store.Tx) error {
		return fn(&faultyTx{Tx: tx, faults: c.Faults})
	})
}

type faultyTx struct {
	store.Tx
	faults *Faults
}

func (t *faultyTx) Select(ctx context.Context, table string, q store.Query) ([]store.Row, error) {
	if err := t.faults.beforeSelect(ctx, table, q); err != nil {
		return nil, err
	}
	return t.Tx.Select(ctx, table, q)
}

func (t *faultyTx) Insert(ctx context.Context, table string, row store.Row) (store.Row, error) {
	if t.faults.insertFails(table) {
		return nil, ErrInjected
	}
	return t.Tx.Insert(ctx, table, row)
}

func (t *faultyTx) Update(ctx context.Context, table string, patch store.Row, filter store.Filter) (int64, error) {
	if t.faults.updateFails(table) {
		return 0, ErrInjected
	}
	return t.Tx.Update(ctx, table, patch, filter)
}
