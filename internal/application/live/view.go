package live

import (
	"context"
	"sync"

	"github.com/jhoicas/refnet-api/internal/domain/store"
	"github.com/jhoicas/refnet-api/pkg/logger"
)

// Fetcher lee la lista completa.
type Fetcher[T any] func(ctx context.Context) ([]T, error)

// View lista que se recarga completa en cada invalidación. Cada recarga lleva un número de
// generación y solo se aplica si es más nueva que la última aplicada: entre recargas
// solapadas gana la última iniciada, sin importar el orden en que terminen.
type View[T any] struct {
	fetch    Fetcher[T]
	log      *logger.Logger
	onChange func(items []T)

	mu      sync.Mutex
	started uint64
	applied uint64
	items   []T
	lastErr error

	wg sync.WaitGroup
}

var _ Sink = (*View[int])(nil)

// NewView construye la vista. onChange (opcional) se llama con cada lista aplicada.
func NewView[T any](fetch Fetcher[T], log *logger.Logger, onChange func(items []T)) *View[T] {
	return &View[T]{fetch: fetch, log: log.Named("live"), onChange: onChange}
}

// Refresh recarga de forma síncrona; útil para la carga inicial.
func (v *View[T]) Refresh(ctx context.Context) error {
	return v.run(ctx, v.next())
}

// Invalidate lanza una recarga en segundo plano y devuelve su generación.
func (v *View[T]) Invalidate(ctx context.Context) uint64 {
	gen := v.next()
	v.wg.Add(1)
	go func() {
		defer v.wg.Done()
		_ = v.run(ctx, gen)
	}()
	return gen
}

// Publish implementa Sink: cualquier cambio invalida la vista.
func (v *View[T]) Publish(store.ChangeEvent) {
	v.Invalidate(context.Background())
}

// Snapshot última lista aplicada y su generación.
func (v *View[T]) Snapshot() ([]T, uint64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]T(nil), v.items...), v.applied
}

// Err error de la última recarga fallida (nil si la última tuvo éxito).
func (v *View[T]) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lastErr
}

// Wait espera a que terminen las recargas en curso.
func (v *View[T]) Wait() {
	v.wg.Wait()
}

func (v *View[T]) next() uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.started++
	return v.started
}

func (v *View[T]) run(ctx context.Context, gen uint64) error {
	items, err := v.fetch(ctx)

	v.mu.Lock()
	if err != nil {
		v.lastErr = err
		v.mu.Unlock()
		v.log.Warn().Err(err).Uint64("generation", gen).Msg("recarga fallida, se conserva la lista anterior")
		return err
	}
	if gen <= v.applied {
		v.mu.Unlock()
		v.log.Debug().Uint64("generation", gen).Msg("recarga obsoleta descartada")
		return nil
	}
	v.applied = gen
	v.items = items
	v.lastErr = nil
	cb := v.onChange
	v.mu.Unlock()

	if cb != nil {
		cb(append([]T(nil), items...))
	}
	return nil
}
