package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/yigit/alumniconnect/internal/pkg/apperrors"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	maxMessageSize = 16 * 1024
	storeTimeout   = 5 * time.Second

	sendBuffer  = 256
	replyBuffer = 8
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The bearer token authenticates the upgrade, so any origin may connect.
	CheckOrigin: func(*http.Request) bool { return true },
}

// inbound is a frame written by a participant.
type inbound struct {
	Text string `json:"text"`
}

// rejection is written back to the sender only, when one of its frames is not stored.
type rejection struct {
	Error string `json:"error"`
}

// Client is one participant socket in a conversation.
// The hub owns send and closes it on unregister. replies belongs to the client.
type Client struct {
	hub      *Hub
	messages *MessageHandler
	conn     *websocket.Conn

	send    chan []byte
	replies chan []byte

	userID         string
	conversationID string

	logger zerolog.Logger
}

func newClient(hub *Hub, messages *MessageHandler, conn *websocket.Conn, conversationID, userID string, logger zerolog.Logger) *Client {
	return &Client{
		hub:            hub,
		messages:       messages,
		conn:           conn,
		send:           make(chan []byte, sendBuffer),
		replies:        make(chan []byte, replyBuffer),
		userID:         userID,
		conversationID: conversationID,
		logger: logger.With().
			Str("conversationID", conversationID).
			Str("userID", userID).
			Logger(),
	}
}

// readPump stores every frame the participant writes until the socket fails.
// Stored messages come back to all sockets through the hub.
func (c *Client) readPump() {
	defer func() {
		c.hub.leave(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.logger.Warn().Err(err).Msg("Unexpected WebSocket close")
			}
			return
		}

		var in inbound
		if err := json.Unmarshal(data, &in); err != nil {
			c.logger.Debug().Err(err).Msg("Malformed WebSocket frame")
			c.reject("Invalid message payload")
			continue
		}

		if err := c.store(in.Text); err != nil {
			c.logger.Debug().Err(err).Msg("Rejected WebSocket message")
			c.reject(apperrors.UserMessage(err))
		}
	}
}

func (c *Client) store(text string) error {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	_, err := c.messages.Send(ctx, c.conversationID, c.userID, text)
	return err
}

// reject queues an error frame for this client. It is dropped when the client is not keeping up.
func (c *Client) reject(reason string) {
	data, _ := json.Marshal(rejection{Error: reason})
	select {
	case c.replies <- data:
	default:
	}
}

// writePump forwards broadcasts and rejections to the socket and keeps it alive with pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	write := func(kind int, data []byte) bool {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		return c.conn.WriteMessage(kind, data) == nil
	}

	for {
		var ok bool
		select {
		case message, open := <-c.send:
			if !open {
				write(websocket.CloseMessage, []byte{})
				return
			}
			ok = write(websocket.TextMessage, message)
		case reply := <-c.replies:
			ok = write(websocket.TextMessage, reply)
		case <-ticker.C:
			ok = write(websocket.PingMessage, nil)
		}
		if !ok {
			return
		}
	}
}
