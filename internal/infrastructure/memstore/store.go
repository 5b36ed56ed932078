// Package memstore almacén en memoria con transacciones copy-on-write y
// notificación de cambios en orden. Se usa con STORE_DRIVER=memory y en las pruebas.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/refnet-api/internal/domain/store"
)

var (
	_ store.Client     = (*Store)(nil)
	_ store.Transactor = (*Store)(nil)
	_ store.Tx         = (*memTx)(nil)
)

type record struct {
	seq uint64
	row store.Row
}

// state tablas -> filas en orden de inserción. Las filas no se mutan: una actualización reemplaza el mapa.
type state map[string][]record

func (s state) clone() state {
	out := make(state, len(s))
	for table, recs := range s {
		out[table] = append([]record(nil), recs...)
	}
	return out
}

type subscriber struct {
	table string
	mask  store.EventMask
	fn    func(store.ChangeEvent)
}

// Store almacén en memoria. Las escrituras se serializan; las lecturas ven solo datos confirmados.
type Store struct {
	writeMu sync.Mutex
	lastTS  time.Time

	mu   sync.RWMutex
	data state
	seq  uint64

	subMu   sync.RWMutex
	subs    map[uint64]subscriber
	nextSub uint64

	now func() time.Time
}

// New crea un almacén vacío.
func New() *Store {
	return &Store{
		data: state{},
		subs: map[uint64]subscriber{},
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// Select lee filas confirmadas.
func (s *Store) Select(ctx context.Context, table string, q store.Query) ([]store.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := store.CheckQuery(table, q); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return selectRows(s.data[table], q), nil
}

// Insert inserta una fila en una transacción de una sola operación.
func (s *Store) Insert(ctx context.Context, table string, row store.Row) (store.Row, error) {
	var out store.Row
	err := s.WithTx(ctx, func(tx store.Tx) error {
		var err error
		out, err = tx.Insert(ctx, table, row)
		return err
	})
	return out, err
}

// Update actualiza filas en una transacción de una sola operación.
func (s *Store) Update(ctx context.Context, table string, patch store.Row, filter store.Filter) (int64, error) {
	var n int64
	err := s.WithTx(ctx, func(tx store.Tx) error {
		var err error
		n, err = tx.Update(ctx, table, patch, filter)
		return err
	})
	return n, err
}

// WithTx ejecuta fn sobre una copia del estado; si fn no falla la copia reemplaza al estado
// y los eventos acumulados se entregan en orden. No se debe llamar WithTx dentro de fn.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	events, err := s.commit(fn)
	if err != nil {
		return err
	}
	s.emit(events)
	return nil
}

// commit corre fn con writeMu tomado; un panic en fn libera el candado y descarta la copia.
func (s *Store) commit(fn func(tx store.Tx) error) ([]store.ChangeEvent, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.RLock()
	tx := &memTx{parent: s, data: s.data.clone(), seq: s.seq}
	s.mu.RUnlock()

	if err := fn(tx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.data = tx.data
	s.seq = tx.seq
	s.mu.Unlock()
	return tx.events, nil
}

// Subscribe registra fn para los eventos de la tabla. La suscripción termina con Unsubscribe o al cancelar ctx.
func (s *Store) Subscribe(ctx context.Context, table string, mask store.EventMask, fn func(store.ChangeEvent)) (store.Subscription, error) {
	if _, err := store.Lookup(table); err != nil {
		return nil, err
	}
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = subscriber{table: table, mask: mask, fn: fn}
	s.subMu.Unlock()

	stop := make(chan struct{})
	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			close(stop)
			s.subMu.Lock()
			delete(s.subs, id)
			s.subMu.Unlock()
		})
	}
	if done := ctx.Done(); done != nil {
		go func() {
			select {
			case <-done:
				unsubscribe()
			case <-stop:
			}
		}()
	}
	return store.SubscriptionFunc(unsubscribe), nil
}

// timestamp created_at estrictamente creciente; se llama con writeMu tomado.
func (s *Store) timestamp() time.Time {
	ts := s.now()
	if !ts.After(s.lastTS) {
		ts = s.lastTS.Add(time.Microsecond)
	}
	s.lastTS = ts
	return ts
}

func (s *Store) emit(events []store.ChangeEvent) {
	if len(events) == 0 {
		return
	}
	s.subMu.RLock()
	ids := make([]uint64, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	subs := make([]subscriber, 0, len(ids))
	for _, id := range ids {
		subs = append(subs, s.subs[id])
	}
	s.subMu.RUnlock()

	for _, ev := range events {
		for _, sub := range subs {
			if sub.table == ev.Table && sub.mask.Matches(ev.Op) {
				sub.fn(ev)
			}
		}
	}
}

// memTx vista transaccional. Lock no hace nada: las transacciones ya están serializadas.
type memTx struct {
	parent *Store
	data   state
	seq    uint64
	events []store.ChangeEvent
}

func (tx *memTx) Select(ctx context.Context, table string, q store.Query) ([]store.Row, error) {
	if _, err := store.CheckQuery(table, q); err != nil {
		return nil, err
	}
	return selectRows(tx.data[table], q), nil
}

func (tx *memTx) Insert(ctx context.Context, table string, row store.Row) (store.Row, error) {
	t, err := store.Lookup(table, store.Keys(row)...)
	if err != nil {
		return nil, err
	}
	r := row.Clone()
	if isEmpty(r[t.PrimaryKey]) {
		r[t.PrimaryKey] = uuid.New().String()
	}
	if t.Has("created_at") && r["created_at"] == nil {
		r["created_at"] = tx.parent.timestamp()
	}
	pk := fmt.Sprint(r[t.PrimaryKey])
	for _, col := range append([]string{t.PrimaryKey}, t.Unique...) {
		v := r[col]
		if v == nil {
			continue
		}
		for _, rec := range tx.data[table] {
			if other := rec.row[col]; other != nil && compare(other, v) == 0 {
				return nil, fmt.Errorf("insert %s: %w: %s=%v", table, store.ErrDuplicate, col, v)
			}
		}
	}
	tx.seq++
	tx.data[table] = append(tx.data[table], record{seq: tx.seq, row: r})
	tx.events = append(tx.events, store.ChangeEvent{Table: table, Op: store.EventInsert, ID: pk, Row: r.Clone()})
	return r.Clone(), nil
}

func (tx *memTx) Update(ctx context.Context, table string, patch store.Row, filter store.Filter) (int64, error) {
	cols := append(store.Keys(patch), store.Keys(filter)...)
	t, err := store.Lookup(table, cols...)
	if err != nil {
		return 0, err
	}
	recs := append([]record(nil), tx.data[table]...)
	var n int64
	for i, rec := range recs {
		if !matches(rec.row, filter) {
			continue
		}
		r := rec.row.Clone()
		for k, v := range patch {
			r[k] = v
		}
		recs[i].row = r
		n++
		tx.events = append(tx.events, store.ChangeEvent{
			Table: table, Op: store.EventUpdate, ID: fmt.Sprint(r[t.PrimaryKey]), Row: r.Clone(),
		})
	}
	tx.data[table] = recs
	return n, nil
}

func (tx *memTx) Subscribe(ctx context.Context, table string, mask store.EventMask, fn func(store.ChangeEvent)) (store.Subscription, error) {
	return tx.parent.Subscribe(ctx, table, mask, fn)
}

func (tx *memTx) Lock(ctx context.Context, key string) error {
	return ctx.Err()
}

func selectRows(recs []record, q store.Query) []store.Row {
	matched := make([]record, 0, len(recs))
	for _, rec := range recs {
		if matches(rec.row, q.Filter) {
			matched = append(matched, rec)
		}
	}
	if q.Order != nil {
		col, asc := q.Order.Column, q.Order.Ascending
		sort.SliceStable(matched, func(i, j int) bool {
			c := compare(matched[i].row[col], matched[j].row[col])
			if c == 0 {
				if asc {
					return matched[i].seq < matched[j].seq
				}
				return matched[i].seq > matched[j].seq
			}
			if asc {
				return c < 0
			}
			return c > 0
		})
	}
	if q.Limit > 0 && len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}
	out := make([]store.Row, 0, len(matched))
	for _, rec := range matched {
		out = append(out, project(rec.row, q.Columns))
	}
	return out
}

func project(row store.Row, columns []string) store.Row {
	if len(columns) == 0 {
		return row.Clone()
	}
	out := make(store.Row, len(columns))
	for _, c := range columns {
		if v, ok := row[c]; ok {
			out[c] = v
		}
	}
	return out
}

func matches(row store.Row, filter store.Filter) bool {
	for col, want := range filter {
		got := row[col]
		if want == nil {
			if got != nil {
				return false
			}
			continue
		}
		if got == nil || compare(got, want) != 0 {
			return false
		}
	}
	return true
}

func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}
