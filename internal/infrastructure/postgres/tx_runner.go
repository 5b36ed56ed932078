package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/refnet-api/internal/domain/store"
)

var _ store.Tx = (*txStore)(nil)

// WithTx inicia una transacción, ejecuta fn con un cliente atado a la tx y hace Commit o Rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(&txStore{Store: &Store{q: tx, pool: s.pool, listener: s.listener}}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

type txStore struct {
	*Store
}

// Lock toma un advisory lock que se libera al terminar la transacción.
func (t *txStore) Lock(ctx context.Context, key string) error {
	if _, err := t.q.Exec(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", key); err != nil {
		return fmt.Errorf("advisory lock %q: %w", key, err)
	}
	return nil
}
