package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/refnet-api/internal/domain/store"
	"github.com/jhoicas/refnet-api/pkg/logger"
)

// ChangesChannel canal NOTIFY que publican los triggers de migrations/001_init.sql.
const ChangesChannel = "refnet_changes"

const reconnectDelay = 2 * time.Second

type listenSub struct {
	table string
	mask  store.EventMask
	fn    func(store.ChangeEvent)
}

// Listener mantiene una conexión dedicada en LISTEN y reparte las notificaciones a los suscriptores.
// La conexión se abre con la primera suscripción y se reconecta si se cae.
type Listener struct {
	pool    *pgxpool.Pool
	channel string
	log     *logger.Logger

	mu      sync.Mutex
	subs    map[uint64]listenSub
	next    uint64
	started bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewListener construye el listener sobre el canal indicado.
func NewListener(pool *pgxpool.Pool, channel string, log *logger.Logger) *Listener {
	return &Listener{
		pool:    pool,
		channel: channel,
		log:     log.Named("pg-listener"),
		subs:    map[uint64]listenSub{},
	}
}

// Subscribe registra fn para la tabla.
func (l *Listener) Subscribe(ctx context.Context, table string, mask store.EventMask, fn func(store.ChangeEvent)) (store.Subscription, error) {
	if _, err := store.Lookup(table); err != nil {
		return nil, err
	}
	l.mu.Lock()
	if !l.started {
		runCtx, cancel := context.WithCancel(context.Background())
		l.cancel = cancel
		l.done = make(chan struct{})
		l.started = true
		go l.run(runCtx)
	}
	id := l.next
	l.next++
	l.subs[id] = listenSub{table: table, mask: mask, fn: fn}
	l.mu.Unlock()

	stop := make(chan struct{})
	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			close(stop)
			l.mu.Lock()
			delete(l.subs, id)
			l.mu.Unlock()
		})
	}
	if d := ctx.Done(); d != nil {
		go func() {
			select {
			case <-d:
				unsubscribe()
			case <-stop:
			}
		}()
	}
	return store.SubscriptionFunc(unsubscribe), nil
}

// Close detiene la escucha y espera a que la conexión se cierre.
func (l *Listener) Close() {
	l.mu.Lock()
	cancel, done := l.cancel, l.done
	l.mu.Unlock()
	if cancel != nil {
		cancel()
		<-done
	}
}

func (l *Listener) run(ctx context.Context) {
	defer close(l.done)
	for ctx.Err() == nil {
		err := l.listen(ctx)
		if ctx.Err() != nil {
			return
		}
		l.log.Warn().Err(err).Str("channel", l.channel).Msg("listener desconectado, reintentando")
		select {
		case <-ctx.Done():
			return
		case <-time.After(reconnectDelay):
		}
	}
}

func (l *Listener) listen(ctx context.Context) error {
	pc, err := l.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire listen conn: %w", err)
	}
	conn := pc.Hijack()
	defer func() { _ = conn.Close(context.Background()) }()

	if _, err := conn.Exec(ctx, "LISTEN "+ident(l.channel)); err != nil {
		return fmt.Errorf("listen %s: %w", l.channel, err)
	}
	l.log.Info().Str("channel", l.channel).Msg("escuchando cambios")

	for {
		n, err := conn.WaitForNotification(ctx)
		if err != nil {
			return fmt.Errorf("wait notification: %w", err)
		}
		var ev store.ChangeEvent
		if err := json.Unmarshal([]byte(n.Payload), &ev); err != nil {
			l.log.Warn().Err(err).Str("payload", n.Payload).Msg("notificación ilegible")
			continue
		}
		l.dispatch(ev)
	}
}

func (l *Listener) dispatch(ev store.ChangeEvent) {
	l.mu.Lock()
	ids := make([]uint64, 0, len(l.subs))
	for id := range l.subs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	subs := make([]listenSub, 0, len(ids))
	for _, id := range ids {
		subs = append(subs, l.subs[id])
	}
	l.mu.Unlock()

	for _, s := range subs {
		if s.table == ev.Table && s.mask.Matches(ev.Op) {
			s.fn(ev)
		}
	}
}
