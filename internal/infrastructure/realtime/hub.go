// Package realtime hub WebSocket: avisos por usuario y difusión de cambios del almacén.
package realtime

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/jhoicas/refnet-api/internal/application/live"
	"github.com/jhoicas/refnet-api/internal/application/notify"
	"github.com/jhoicas/refnet-api/internal/application/session"
	"github.com/jhoicas/refnet-api/internal/domain/store"
	"github.com/jhoicas/refnet-api/pkg/logger"
)

var (
	_ notify.Notifier = (*Hub)(nil)
	_ live.Sink       = (*Hub)(nil)
)

// Tipos de mensaje enviados al cliente.
const (
	FrameChange       = "change"
	FrameNotification = "notification"
)

// Frame mensaje JSON hacia el cliente.
type Frame struct {
	Type    string `json:"type"`
	Table   string `json:"table,omitempty"`
	Op      string `json:"op,omitempty"`
	ID      string `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
	Kind    string `json:"kind,omitempty"`
}

const sendBuffer = 32

// client una conexión. Un usuario puede tener varias abiertas.
type client struct {
	userID string
	send   chan []byte
}

// Hub clientes conectados indexados por usuario.
type Hub struct {
	log *logger.Logger

	mu      sync.RWMutex
	clients map[string]map[*client]struct{}
}

// NewHub crea un hub vacío.
func NewHub(log *logger.Logger) *Hub {
	return &Hub{log: log.Named("realtime"), clients: map[string]map[*client]struct{}{}}
}

func (h *Hub) register(userID string) *client {
	c := &client{userID: userID, send: make(chan []byte, sendBuffer)}
	h.mu.Lock()
	if h.clients[userID] == nil {
		h.clients[userID] = map[*client]struct{}{}
	}
	h.clients[userID][c] = struct{}{}
	h.mu.Unlock()
	h.log.Debug().Str("user_id", userID).Msg("cliente WebSocket registrado")
	return c
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	if set, ok := h.clients[c.userID]; ok {
		if _, ok := set[c]; ok {
			delete(set, c)
			close(c.send)
		}
		if len(set) == 0 {
			delete(h.clients, c.userID)
		}
	}
	h.mu.Unlock()
	h.log.Debug().Str("user_id", c.userID).Msg("cliente WebSocket eliminado")
}

// Connected cantidad de conexiones abiertas.
func (h *Hub) Connected() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, set := range h.clients {
		n += len(set)
	}
	return n
}

// Send entrega el frame a todas las conexiones del usuario. Un usuario sin conexión no es error.
func (h *Hub) Send(userID string, f Frame) {
	msg, err := json.Marshal(f)
	if err != nil {
		h.log.Error().Err(err).Msg("frame no serializable")
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		h.offer(c, msg)
	}
}

// Broadcast entrega el frame a todas las conexiones.
func (h *Hub) Broadcast(f Frame) {
	msg, err := json.Marshal(f)
	if err != nil {
		h.log.Error().Err(err).Msg("frame no serializable")
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, set := range h.clients {
		for c := range set {
			h.offer(c, msg)
		}
	}
}

// offer no bloquea: si el buffer del cliente está lleno el mensaje se descarta.
func (h *Hub) offer(c *client, msg []byte) {
	select {
	case c.send <- msg:
	default:
		h.log.Warn().Str("user_id", c.userID).Msg("cliente lento, mensaje descartado")
	}
}

// Notify implementa notify.Notifier.
func (h *Hub) Notify(_ context.Context, s session.Session, message string, kind notify.Kind) {
	h.Send(s.UserID, Frame{Type: FrameNotification, Message: message, Kind: string(kind)})
}

// Publish implementa live.Sink: los clientes vuelven a pedir la lista afectada.
func (h *Hub) Publish(ev store.ChangeEvent) {
	h.Broadcast(Frame{Type: FrameChange, Table: ev.Table, Op: string(ev.Op), ID: ev.ID})
}
