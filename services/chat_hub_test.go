package services

import (
	"encoding/json"
	"sync"
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeConn records every frame written to it.
type fakeConn struct {
	mu     sync.Mutex
	frames [][]byte
	closed bool
}

func (f *fakeConn) WriteMessage(_ int, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.frames = append(f.frames, data)
	return nil
}

func (f *fakeConn) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeConn) decoded(t *testing.T) []map[string]any {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]map[string]any, 0, len(f.frames))
	for _, raw := range f.frames {
		var m map[string]any
		require.NoError(t, json.Unmarshal(raw, &m))
		out = append(out, m)
	}
	return out
}

func TestHubPresenceLifecycle(t *testing.T) {
	hub := NewChatHub()

	assert.False(t, hub.IsOnline(1))

	a := &ChatClient{UserID: 1, Conn: &fakeConn{}}
	b := &ChatClient{UserID: 1, Conn: &fakeConn{}}
	hub.Register(a)
	hub.Register(b)
	assert.True(t, hub.IsOnline(1))

	hub.Unregister(a)
	assert.True(t, hub.IsOnline(1)) // second tab still open

	hub.Unregister(b)
	assert.False(t, hub.IsOnline(1))
}

func TestHubUnregisterClosesConn(t *testing.T) {
	hub := NewChatHub()
	conn := &fakeConn{}
	c := &ChatClient{UserID: 1, Conn: conn}

	hub.Register(c)
	hub.Unregister(c)
	assert.True(t, conn.closed)
}

func TestHubBroadcastMessageReachesOwnerAndWatcher(t *testing.T) {
	hub := NewChatHub()

	ownerConn := &fakeConn{}
	otherConn := &fakeConn{}
	adminConn := &fakeConn{}
	hub.Register(&ChatClient{UserID: 1, Conn: ownerConn})
	hub.Register(&ChatClient{UserID: 2, Conn: otherConn})
	hub.Register(&ChatClient{UserID: 99, AdminWatch: true, Conn: adminConn})

	hub.BroadcastMessage(&models.Message{UserID: 1, Text: "hello", Role: models.MessageRoleUser, ClientTag: "tmp-1"})

	owner := ownerConn.decoded(t)
	require.Len(t, owner, 1)
	assert.Equal(t, "message.created", owner[0]["kind"])
	assert.Equal(t, "tmp-1", owner[0]["client_tag"])

	// the watcher also saw its own presence event on register; the chat
	// message must be among its frames exactly once
	created := 0
	for _, ev := range adminConn.decoded(t) {
		if ev["kind"] == "message.created" {
			created++
			assert.Equal(t, "tmp-1", ev["client_tag"])
		}
	}
	assert.Equal(t, 1, created)

	// an unrelated user's channel stays quiet
	for _, ev := range otherConn.decoded(t) {
		assert.NotEqual(t, "message.created", ev["kind"])
	}
}

func TestHubWatcherNotDoubleSent(t *testing.T) {
	hub := NewChatHub()

	conn := &fakeConn{}
	// admin chatting in their own thread while watching
	hub.Register(&ChatClient{UserID: 5, AdminWatch: true, Conn: conn})

	hub.BroadcastMessage(&models.Message{UserID: 5, Text: "note", Role: models.MessageRoleUser})

	events := conn.decoded(t)
	created := 0
	for _, ev := range events {
		if ev["kind"] == "message.created" {
			created++
		}
	}
	assert.Equal(t, 1, created)
}

func TestHubPresenceEventsReachWatchers(t *testing.T) {
	hub := NewChatHub()

	adminConn := &fakeConn{}
	hub.Register(&ChatClient{UserID: 99, AdminWatch: true, Conn: adminConn})

	userConn := &fakeConn{}
	user := &ChatClient{UserID: 1, Conn: userConn}
	hub.Register(user)
	hub.Unregister(user)

	var states []bool
	for _, ev := range adminConn.decoded(t) {
		if ev["kind"] == "presence" && ev["user_id"] == float64(1) {
			states = append(states, ev["online"].(bool))
		}
	}
	assert.Equal(t, []bool{true, false}, states)
}

func TestHubBroadcastToUser(t *testing.T) {
	hub := NewChatHub()

	conn := &fakeConn{}
	hub.Register(&ChatClient{UserID: 1, Conn: conn})

	hub.BroadcastToUser(1, map[string]any{"kind": "ping"})

	events := conn.decoded(t)
	require.Len(t, events, 1)
	assert.Equal(t, "ping", events[0]["kind"])
}
