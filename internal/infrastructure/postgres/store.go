package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/refnet-api/internal/domain/store"
)

var (
	_ store.Client     = (*Store)(nil)
	_ store.Transactor = (*Store)(nil)
)

// Store implementación de store.Client sobre PostgreSQL (usable con pool o tx).
// Los identificadores se validan contra store.Schema y se citan con pgx.Identifier.
type Store struct {
	q        Querier
	pool     *pgxpool.Pool
	listener *Listener
}

// NewStore construye el almacén sobre el pool. listener puede ser nil si no se usan suscripciones.
func NewStore(pool *pgxpool.Pool, listener *Listener) *Store {
	return &Store{q: pool, pool: pool, listener: listener}
}

// Select ejecuta la consulta y devuelve las filas como mapas.
func (s *Store) Select(ctx context.Context, table string, q store.Query) ([]store.Row, error) {
	if _, err := store.CheckQuery(table, q); err != nil {
		return nil, err
	}
	sql, args := buildSelect(table, q)
	rows, err := s.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", table, err)
	}
	maps, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", table, err)
	}
	out := make([]store.Row, len(maps))
	for i, m := range maps {
		out[i] = normalizeRow(m)
	}
	return out, nil
}

// Insert inserta y devuelve la fila con los valores por defecto de la tabla (id, created_at).
func (s *Store) Insert(ctx context.Context, table string, row store.Row) (store.Row, error) {
	if _, err := store.Lookup(table, store.Keys(row)...); err != nil {
		return nil, err
	}
	sql, args := buildInsert(table, row)
	rows, err := s.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, insertError(table, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToMap)
	if err != nil {
		return nil, insertError(table, err)
	}
	return normalizeRow(m), nil
}

// Update aplica patch a las filas que cumplen filter y devuelve cuántas coincidieron.
func (s *Store) Update(ctx context.Context, table string, patch store.Row, filter store.Filter) (int64, error) {
	if len(patch) == 0 {
		return 0, errors.New("update: empty patch")
	}
	cols := append(store.Keys(patch), store.Keys(filter)...)
	if _, err := store.Lookup(table, cols...); err != nil {
		return 0, err
	}
	sql, args := buildUpdate(table, patch, filter)
	tag, err := s.q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("update %s: %w", table, err)
	}
	return tag.RowsAffected(), nil
}

// Subscribe registra fn en el listener LISTEN/NOTIFY compartido.
func (s *Store) Subscribe(ctx context.Context, table string, mask store.EventMask, fn func(store.ChangeEvent)) (store.Subscription, error) {
	if s.listener == nil {
		return nil, errors.New("postgres: subscriptions disabled (no listener)")
	}
	return s.listener.Subscribe(ctx, table, mask, fn)
}

func insertError(table string, err error) error {
	if isUniqueViolation(err) {
		return fmt.Errorf("insert %s: %w: %w", table, store.ErrDuplicate, err)
	}
	return fmt.Errorf("insert %s: %w", table, err)
}
