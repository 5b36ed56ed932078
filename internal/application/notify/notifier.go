// Package notify canal de avisos al usuario (fire-and-forget).
package notify

import (
	"context"
	"sync"

	"github.com/jhoicas/refnet-api/internal/application/session"
	"github.com/jhoicas/refnet-api/pkg/logger"
)

// Kind tipo de aviso.
type Kind string

const (
	KindSuccess Kind = "success"
	KindDanger  Kind = "danger"
	KindError   Kind = "error"
)

// Notifier entrega un aviso al usuario de la sesión. No devuelve error.
type Notifier interface {
	Notify(ctx context.Context, s session.Session, message string, kind Kind)
}

// Multi reparte el aviso a varios destinos en orden.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, s session.Session, message string, kind Kind) {
	for _, n := range m {
		if n != nil {
			n.Notify(ctx, s, message, kind)
		}
	}
}

// LogNotifier registra los avisos en el log.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier construye el notificador.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log.Named("notify")}
}

func (n *LogNotifier) Notify(_ context.Context, s session.Session, message string, kind Kind) {
	ev := n.log.Info()
	if kind == KindError {
		ev = n.log.Warn()
	}
	ev.Str("user_id", s.UserID).Str("kind", string(kind)).Msg(message)
}

// Recorder guarda los avisos en memoria (pruebas y CLI).
type Recorder struct {
	mu       sync.Mutex
	messages []Message
}

// Message aviso registrado.
type Message struct {
	UserID string
	Text   string
	Kind   Kind
}

func (r *Recorder) Notify(_ context.Context, s session.Session, message string, kind Kind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, Message{UserID: s.UserID, Text: message, Kind: kind})
}

// Messages copia de los avisos registrados.
func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Message(nil), r.messages...)
}
