package notify_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/refnet-api/internal/application/notify"
	"github.com/jhoicas/refnet-api/internal/application/session"
	"github.com/jhoicas/refnet-api/pkg/logger"
)

func TestMulti_RepartePorOrdenEIgnoraNil(t *testing.T) {
	a, b := &notify.Recorder{}, &notify.Recorder{}
	m := notify.Multi{a, nil, b}

	m.Notify(context.Background(), session.Session{UserID: "u-1"}, "hola", notify.KindSuccess)

	for _, r := range []*notify.Recorder{a, b} {
		msgs := r.Messages()
		require.Len(t, msgs, 1)
		assert.Equal(t, notify.Message{UserID: "u-1", Text: "hola", Kind: notify.KindSuccess}, msgs[0])
	}
}

func TestLogNotifier_EscribeCampos(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "test", Level: "debug", Output: &buf})

	notify.NewLogNotifier(log).Notify(context.Background(), session.Session{UserID: "u-9"}, "falló", notify.KindError)

	out := buf.String()
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"user_id":"u-9"`)
	assert.Contains(t, out, `"kind":"error"`)
	assert.Contains(t, out, `"component":"notify"`)
}
