package realtime

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	pkgjwt "github.com/jhoicas/refnet-api/pkg/jwt"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Handler endpoint WebSocket. El token va en ?token= porque los navegadores no permiten
// cabeceras en el handshake.
type Handler struct {
	Hub       *Hub
	JWTSecret string
}

// NewMux rutas del servidor realtime: /ws y /health.
func NewMux(h *Handler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/ws", h)
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	return mux
}

// ServeHTTP autentica, registra el cliente y atiende lectura y escritura hasta que se cierre.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, `{"code":"MISSING_TOKEN","message":"token requerido"}`, http.StatusUnauthorized)
		return
	}
	claims, err := pkgjwt.Parse(h.JWTSecret, token)
	if err != nil || claims.UserID == "" {
		http.Error(w, `{"code":"INVALID_TOKEN","message":"token inválido o expirado"}`, http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.Hub.log.Warn().Err(err).Msg("upgrade WebSocket fallido")
		return
	}

	c := h.Hub.register(claims.UserID)
	go h.writePump(conn, c)
	h.readPump(conn, c)
}

// readPump descarta lo que envía el cliente; solo mantiene vivo el deadline con los pong.
func (h *Handler) readPump(conn *websocket.Conn, c *client) {
	defer func() {
		h.Hub.unregister(c)
		_ = conn.Close()
	}()
	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.Hub.log.Warn().Err(err).Str("user_id", c.userID).Msg("cierre inesperado")
			}
			return
		}
	}
}

func (h *Handler) writePump(conn *websocket.Conn, c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
