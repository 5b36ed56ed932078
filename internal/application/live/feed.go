// Package live suscripción a cambios del almacén y vistas que se recargan completas ante cada cambio.
package live

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/refnet-api/internal/domain/store"
	"github.com/jhoicas/refnet-api/pkg/logger"
)

// Sink recibe los eventos de cambio. Publish no debe bloquear por mucho tiempo.
type Sink interface {
	Publish(ev store.ChangeEvent)
}

// SinkFunc adapta una función a Sink.
type SinkFunc func(ev store.ChangeEvent)

func (f SinkFunc) Publish(ev store.ChangeEvent) { f(ev) }

// Feed se suscribe a varias tablas y reenvía cada evento a todos los sinks.
type Feed struct {
	client store.Client
	log    *logger.Logger

	mu    sync.Mutex
	sinks []Sink
	subs  []store.Subscription
}

// NewFeed construye el feed; Start abre las suscripciones.
func NewFeed(client store.Client, log *logger.Logger, sinks ...Sink) *Feed {
	return &Feed{client: client, log: log.Named("live"), sinks: sinks}
}

// Attach agrega un sink; recibe los eventos posteriores.
func (f *Feed) Attach(s Sink) {
	f.mu.Lock()
	f.sinks = append(f.sinks, s)
	f.mu.Unlock()
}

// Start se suscribe a todas las operaciones de cada tabla. Si alguna falla, cierra las abiertas.
func (f *Feed) Start(ctx context.Context, tables ...string) error {
	for _, t := range tables {
		sub, err := f.client.Subscribe(ctx, t, store.EventAll, f.dispatch)
		if err != nil {
			f.Stop()
			return fmt.Errorf("subscribe %s: %w", t, err)
		}
		f.mu.Lock()
		f.subs = append(f.subs, sub)
		f.mu.Unlock()
		f.log.Debug().Str("table", t).Msg("suscripción abierta")
	}
	return nil
}

// Stop cierra las suscripciones. Se puede llamar más de una vez.
func (f *Feed) Stop() {
	f.mu.Lock()
	subs := f.subs
	f.subs = nil
	f.mu.Unlock()
	for _, s := range subs {
		s.Unsubscribe()
	}
}

func (f *Feed) dispatch(ev store.ChangeEvent) {
	f.mu.Lock()
	sinks := append([]Sink(nil), f.sinks...)
	f.mu.Unlock()
	f.log.Trace().Str("table", ev.Table).Str("op", string(ev.Op)).Str("id", ev.ID).Msg("cambio recibido")
	for _, s := range sinks {
		s.Publish(ev)
	}
}
