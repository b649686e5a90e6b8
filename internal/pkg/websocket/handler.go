package websocket

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/alumniconnect/internal/app/models/dto"
	"github.com/yigit/alumniconnect/internal/middleware"
	"github.com/yigit/alumniconnect/internal/pkg/apperrors"
)

// Handler for WebSocket connections
type Handler struct {
	hub      *Hub
	messages *MessageHandler
	logger   zerolog.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, messages *MessageHandler, logger zerolog.Logger) *Handler {
	return &Handler{
		hub:      hub,
		messages: messages,
		logger:   logger,
	}
}

// HandleConnection upgrades GET /conversations/:id/ws for a participant.
// Frames written by the client are stored as messages; every stored message
// of the conversation is pushed back as JSON.
func (h *Handler) HandleConnection(c *gin.Context) {
	conversationID := c.Param("id")
	userID := middleware.CurrentUserID(c)
	if userID == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	ok, err := h.messages.store.IsParticipant(c.Request.Context(), conversationID, userID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrNotParticipant)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error().Err(err).Str("conversationID", conversationID).Str("userID", userID).Msg("Failed to upgrade connection to WebSocket")
		return
	}

	client := newClient(h.hub, h.messages, conn, conversationID, userID, h.logger)
	if !h.hub.join(client) {
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()

	h.logger.Info().
		Str("conversationID", conversationID).
		Str("userID", userID).
		Str("remoteAddr", conn.RemoteAddr().String()).
		Msg("WebSocket connection established")
}
