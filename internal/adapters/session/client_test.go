package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dkeye/voicepanel/internal/domain"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeServer struct {
	t        *testing.T
	token    chan string
	received chan map[string]any
}

func (s *fakeServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
	ct, err := r.Cookie("ct")
	if err == nil {
		s.token <- ct.Value
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var msg map[string]any
		if json.Unmarshal(data, &msg) != nil {
			continue
		}
		s.received <- msg
		if msg["type"] == TypeJoin {
			_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"room_state","channel":5,"members":[{"id":101,"username":"alice"},{"id":202,"username":"bob"}]}`))
			_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"member_joined","channel":5,"user":{"id":303,"username":"carol"}}`))
		}
	}
}

func TestClientAgainstServer(t *testing.T) {
	srv := &fakeServer{t: t, token: make(chan string, 1), received: make(chan map[string]any, 8)}
	ts := httptest.NewServer(srv)
	defer ts.Close()

	c := NewClient(Config{URL: "ws" + strings.TrimPrefix(ts.URL, "http")})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, c.Dial(ctx))
	assert.Equal(t, c.Token(), <-srv.token)

	runCtx, stop := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() { done <- c.Run(runCtx) }()

	require.NoError(t, c.Join(5))
	require.NoError(t, c.WaitState(ctx, 5))

	select {
	case ev := <-c.Events():
		assert.Equal(t, domain.VoiceEvent{Kind: domain.UserConnected, User: 303, Channel: 5}, ev)
	case <-ctx.Done():
		t.Fatal("no event")
	}
	assert.Equal(t, []domain.UserID{101, 202, 303}, c.UsersInChannel(5))

	join := <-srv.received
	assert.Equal(t, TypeJoin, join["type"])
	assert.EqualValues(t, 5, join["channel"])

	c.SetChannelMute(true)
	c.SetChannelDeafen(true)
	<-srv.received
	state := <-srv.received
	assert.Equal(t, TypeVoiceState, state["type"])
	assert.Equal(t, true, state["self_mute"])
	assert.Equal(t, true, state["self_deaf"])

	stop()
	assert.NoError(t, <-done)
	_, open := <-c.Events()
	assert.False(t, open)
}

func TestDialFailure(t *testing.T) {
	c := NewClient(Config{URL: "ws://127.0.0.1:1/nowhere"})
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.Error(t, c.Dial(ctx))
}
