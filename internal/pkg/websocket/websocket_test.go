package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	gws "github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/alumniconnect/internal/app/models"
	"github.com/yigit/alumniconnect/internal/middleware"
	"github.com/yigit/alumniconnect/internal/pkg/apperrors"
)

type fakeStore struct {
	mu           sync.Mutex
	participants map[string][]string
	stored       []models.Message
}

func (f *fakeStore) SendMessage(_ context.Context, conversationID, userID, text string) (*models.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.ErrEmptyMessage
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	msg := models.Message{
		ID:             "m" + string(rune('0'+len(f.stored))),
		ConversationID: conversationID,
		SenderID:       userID,
		Text:           text,
		Type:           models.MessageText,
	}
	f.stored = append(f.stored, msg)
	return &msg, nil
}

func (f *fakeStore) IsParticipant(_ context.Context, conversationID, userID string) (bool, error) {
	members, ok := f.participants[conversationID]
	if !ok {
		return false, apperrors.ErrConversationNotFound
	}
	for _, m := range members {
		if m == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.stored)
}

type harness struct {
	hub      *Hub
	store    *fakeStore
	messages *MessageHandler
	server   *httptest.Server
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := &fakeStore{participants: map[string][]string{"c1": {"alice", "bob"}}}
	hub := NewHub(zerolog.Nop())
	messages := NewMessageHandler(store, hub, zerolog.Nop())
	handler := NewHandler(hub, messages, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	r := gin.New()
	r.GET("/conversations/:id/ws", func(c *gin.Context) {
		c.Set(middleware.ContextUserID, c.Query("as"))
	}, handler.HandleConnection)

	srv := httptest.NewServer(r)
	t.Cleanup(func() {
		cancel()
		srv.Close()
	})
	return &harness{hub: hub, store: store, messages: messages, server: srv}
}

func (h *harness) dial(t *testing.T, conversationID, user string) (*gws.Conn, *http.Response, error) {
	t.Helper()
	url := "ws" + strings.TrimPrefix(h.server.URL, "http") + "/conversations/" + conversationID + "/ws?as=" + user
	return gws.DefaultDialer.Dial(url, nil)
}

func readMessage(t *testing.T, conn *gws.Conn) models.Message {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var msg models.Message
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func TestBroadcastReachesEveryParticipant(t *testing.T) {
	h := newHarness(t)

	alice, _, err := h.dial(t, "c1", "alice")
	require.NoError(t, err)
	defer alice.Close()
	bob, _, err := h.dial(t, "c1", "bob")
	require.NoError(t, err)
	defer bob.Close()

	require.Eventually(t, func() bool { return h.hub.ClientCount("c1") == 2 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, alice.WriteJSON(map[string]string{"text": "hello bob"}))

	for _, conn := range []*gws.Conn{alice, bob} {
		msg := readMessage(t, conn)
		assert.Equal(t, "hello bob", msg.Text)
		assert.Equal(t, "alice", msg.SenderID)
		assert.Equal(t, "c1", msg.ConversationID)
	}
	assert.Equal(t, 1, h.store.count())
}

func TestSendFromRESTIsPushed(t *testing.T) {
	h := newHarness(t)

	bob, _, err := h.dial(t, "c1", "bob")
	require.NoError(t, err)
	defer bob.Close()
	require.Eventually(t, func() bool { return h.hub.ClientCount("c1") == 1 }, 2*time.Second, 10*time.Millisecond)

	msg, err := h.messages.Send(context.Background(), "c1", "alice", "from the api")
	require.NoError(t, err)
	assert.Equal(t, "from the api", msg.Text)

	assert.Equal(t, "from the api", readMessage(t, bob).Text)
}

func TestRejectedFramesAreReportedToSender(t *testing.T) {
	h := newHarness(t)

	alice, _, err := h.dial(t, "c1", "alice")
	require.NoError(t, err)
	defer alice.Close()
	require.Eventually(t, func() bool { return h.hub.ClientCount("c1") == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, alice.WriteMessage(gws.TextMessage, []byte("not json")))
	require.NoError(t, alice.WriteJSON(map[string]string{"text": "   "}))
	require.NoError(t, alice.WriteJSON(map[string]string{"text": "real"}))

	var errs, texts []string
	for i := 0; i < 3; i++ {
		require.NoError(t, alice.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, data, err := alice.ReadMessage()
		require.NoError(t, err)
		var frame struct {
			Error string `json:"error"`
			Text  string `json:"text"`
		}
		require.NoError(t, json.Unmarshal(data, &frame))
		if frame.Error != "" {
			errs = append(errs, frame.Error)
		} else {
			texts = append(texts, frame.Text)
		}
	}

	assert.Equal(t, []string{"real"}, texts)
	assert.ElementsMatch(t, []string{"Invalid message payload", apperrors.UserMessage(apperrors.ErrEmptyMessage)}, errs)
	assert.Equal(t, 1, h.store.count())
}

func TestUpgradeRejected(t *testing.T) {
	h := newHarness(t)

	_, resp, err := h.dial(t, "c1", "mallory")
	require.ErrorIs(t, err, gws.ErrBadHandshake)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	_, resp, err = h.dial(t, "nope", "alice")
	require.ErrorIs(t, err, gws.ErrBadHandshake)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	_, resp, err = h.dial(t, "c1", "")
	require.ErrorIs(t, err, gws.ErrBadHandshake)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestDisconnectUnregisters(t *testing.T) {
	h := newHarness(t)

	alice, _, err := h.dial(t, "c1", "alice")
	require.NoError(t, err)
	require.Eventually(t, func() bool { return h.hub.ClientCount("c1") == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, alice.Close())
	require.Eventually(t, func() bool { return h.hub.ClientCount("c1") == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestBroadcastAfterStop(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()
	cancel()
	<-stopped

	// Fill the buffer so the send cannot succeed.
	for i := 0; i < cap(hub.broadcast); i++ {
		hub.broadcast <- models.Message{}
	}
	assert.ErrorIs(t, hub.Broadcast(context.Background(), models.Message{ConversationID: "c1"}), ErrHubClosed)
}
