package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/alumniconnect/internal/app/chatbot"
	"github.com/yigit/alumniconnect/internal/app/filters"
	"github.com/yigit/alumniconnect/internal/app/models/dto"
	"github.com/yigit/alumniconnect/internal/app/services"
	"github.com/yigit/alumniconnect/internal/middleware"
	"github.com/yigit/alumniconnect/internal/pkg/activity"
	"github.com/yigit/alumniconnect/internal/pkg/websocket"
)

// ConversationController handles chat conversations and the help assistant
type ConversationController struct {
	messageService services.MessageService
	messages       *websocket.MessageHandler
	notifier
	logger zerolog.Logger
}

// NewConversationController creates a new ConversationController.
// Sent messages go through messages so connected sockets receive them.
func NewConversationController(
	messageService services.MessageService,
	messages *websocket.MessageHandler,
	events activity.Publisher,
	logger zerolog.Logger,
) *ConversationController {
	return &ConversationController{
		messageService: messageService,
		messages:       messages,
		notifier:       newNotifier(events, logger),
		logger:         logger,
	}
}

// List handles GET /conversations
func (c *ConversationController) List(ctx *gin.Context) {
	var q dto.ConversationQuery
	if !middleware.BindQuery(ctx, &q) {
		return
	}

	convs, err := c.messageService.ListConversations(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, filters.Conversations(convs, q.Search), "")
}

// Messages handles GET /conversations/:id/messages
func (c *ConversationController) Messages(ctx *gin.Context) {
	msgs, err := c.messageService.ListMessages(ctx.Request.Context(), ctx.Param("id"), middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, msgs, "")
}

// Send handles POST /conversations/:id/messages
func (c *ConversationController) Send(ctx *gin.Context) {
	var req dto.SendMessageRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	conversationID := ctx.Param("id")
	userID := middleware.CurrentUserID(ctx)
	msg, err := c.messages.Send(ctx.Request.Context(), conversationID, userID, req.Text)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.publish(ctx.Request.Context(), activity.MessageSent, userID, conversationID, nil)
	respond(ctx, http.StatusCreated, msg, "")
}

// Chatbot handles POST /chatbot
func (c *ConversationController) Chatbot(ctx *gin.Context) {
	var req dto.ChatbotRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	topic := chatbot.Classify(req.Message)
	respond(ctx, http.StatusOK, dto.ChatbotResponse{
		Topic: string(topic),
		Reply: chatbot.Reply(req.Message),
	}, "")
}

// ChatbotWelcome handles GET /chatbot with the greeting and suggested questions
func (c *ConversationController) ChatbotWelcome(ctx *gin.Context) {
	suggestions := make([]string, 0, len(chatbot.QuickReplies))
	for _, q := range chatbot.QuickReplies {
		suggestions = append(suggestions, q.Payload)
	}
	respond(ctx, http.StatusOK, dto.ChatbotResponse{
		Topic:        string(chatbot.TopicGreeting),
		Reply:        chatbot.Welcome,
		QuickReplies: suggestions,
	}, "")
}
