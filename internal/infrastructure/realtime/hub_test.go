package realtime_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/refnet-api/internal/application/notify"
	"github.com/jhoicas/refnet-api/internal/application/session"
	"github.com/jhoicas/refnet-api/internal/domain/store"
	"github.com/jhoicas/refnet-api/internal/infrastructure/realtime"
	pkgjwt "github.com/jhoicas/refnet-api/pkg/jwt"
	"github.com/jhoicas/refnet-api/pkg/logger"
)

const secret = "ws-secret"

func startServer(t *testing.T) (*realtime.Hub, string) {
	t.Helper()
	hub := realtime.NewHub(logger.Nop())
	srv := httptest.NewServer(realtime.NewMux(&realtime.Handler{Hub: hub, JWTSecret: secret}))
	t.Cleanup(srv.Close)
	return hub, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func dial(t *testing.T, url, userID string) *websocket.Conn {
	t.Helper()
	tok, err := pkgjwt.Generate(secret, userID, "", "driver", "test", 5)
	require.NoError(t, err)
	conn, _, err := websocket.DefaultDialer.Dial(url+"?token="+tok, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func read(t *testing.T, conn *websocket.Conn) realtime.Frame {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var f realtime.Frame
	require.NoError(t, conn.ReadJSON(&f))
	return f
}

func TestHub_NotifySoloAlUsuario(t *testing.T) {
	hub, url := startServer(t)
	a := dial(t, url, "u1")
	b := dial(t, url, "u2")
	require.Eventually(t, func() bool { return hub.Connected() == 2 }, time.Second, 5*time.Millisecond)

	hub.Notify(context.Background(), session.Session{UserID: "u1"}, "Restock request approved", notify.KindSuccess)
	hub.Notify(context.Background(), session.Session{UserID: "u2"}, "otro", notify.KindDanger)

	f := read(t, a)
	assert.Equal(t, realtime.FrameNotification, f.Type)
	assert.Equal(t, "Restock request approved", f.Message)
	assert.Equal(t, "success", f.Kind)

	f = read(t, b)
	assert.Equal(t, "otro", f.Message)
}

func TestHub_PublishDifundeCambios(t *testing.T) {
	hub, url := startServer(t)
	a := dial(t, url, "u1")
	b := dial(t, url, "u2")
	require.Eventually(t, func() bool { return hub.Connected() == 2 }, time.Second, 5*time.Millisecond)

	hub.Publish(store.ChangeEvent{Table: store.TableRestock, Op: store.EventUpdate, ID: "r1"})

	for _, c := range []*websocket.Conn{a, b} {
		f := read(t, c)
		assert.Equal(t, realtime.FrameChange, f.Type)
		assert.Equal(t, store.TableRestock, f.Table)
		assert.Equal(t, "update", f.Op)
		assert.Equal(t, "r1", f.ID)
	}
}

func TestHub_DesconexionLiberaCliente(t *testing.T) {
	hub, url := startServer(t)
	c := dial(t, url, "u1")
	require.Eventually(t, func() bool { return hub.Connected() == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, c.Close())
	require.Eventually(t, func() bool { return hub.Connected() == 0 }, 2*time.Second, 5*time.Millisecond)

	hub.Notify(context.Background(), session.Session{UserID: "u1"}, "nadie escucha", notify.KindSuccess)
}

func TestHandler_SinTokenORechazado(t *testing.T) {
	_, url := startServer(t)

	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	_, resp, err = websocket.DefaultDialer.Dial(url+"?token=basura", nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
