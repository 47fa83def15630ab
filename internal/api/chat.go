package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"alumni-network/backend/internal/service"
	"alumni-network/backend/pkg/logger"
)

// ChatHandler exposes the contact & history resolver over HTTP
type ChatHandler struct {
	chat   *service.ChatService
	logger *logger.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chat *service.ChatService, logger *logger.Logger) *ChatHandler {
	return &ChatHandler{chat: chat, logger: logger}
}

// RegisterRoutes registers the chat routes
func (h *ChatHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/chat-contacts/:userId", h.GetContacts)
	router.GET("/chat-history/:userA/:userB", h.GetHistory)
	router.POST("/messages", h.SendMessage)
}

// GetContacts returns either a global user search result (when the search
// query parameter is non-empty) or the set of users the given user has
// exchanged messages with. An unknown user id yields an empty array, not
// an error; see ChatService.ResolveContacts.
func (h *ChatHandler) GetContacts(c *gin.Context) {
	userID, err := parseID(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}
	c.Set("userId", userID)

	users, err := h.chat.ResolveContacts(userID, c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}

	contacts := make([]gin.H, len(users))
	for i, u := range users {
		contacts[i] = gin.H{
			"id":         u.ID,
			"username":   u.Username,
			"role":       u.Role,
			"department": u.Department,
		}
	}

	c.JSON(http.StatusOK, contacts)
}

// GetHistory returns the full message history between two users, ascending
// by send time. The two path parameters are order-insensitive.
func (h *ChatHandler) GetHistory(c *gin.Context) {
	userA, errA := parseID(c.Param("userA"))
	userB, errB := parseID(c.Param("userB"))
	if errA != nil || errB != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	messages, err := h.chat.ResolveHistory(userA, userB)
	if err != nil {
		respondError(c, err)
		return
	}

	history := make([]gin.H, len(messages))
	for i, m := range messages {
		entry := m.ToHistoryEntry()
		history[i] = gin.H{
			"sender":  entry.Sender,
			"content": entry.Content,
			"time":    entry.Time,
		}
	}

	c.JSON(http.StatusOK, history)
}

// SendMessage appends one message to the log. All three fields must be
// present in the request body; content may be an empty string. The new
// message's id and record are returned so clients can update optimistically.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req struct {
		Sender   *uint   `json:"sender" binding:"required"`
		Receiver *uint   `json:"receiver" binding:"required"`
		Content  *string `json:"content" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Error binding JSON for send message", "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "sender, receiver and content are required"})
		return
	}
	c.Set("userId", *req.Sender)

	message, err := h.chat.RecordMessage(*req.Sender, *req.Receiver, *req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"ok": true,
		"id": message.ID,
		"message": gin.H{
			"id":        message.ID,
			"sender":    message.SenderID,
			"receiver":  message.ReceiverID,
			"content":   message.Content,
			"timestamp": message.Timestamp,
		},
	})
}

// parseID parses a positive integer id from a path parameter
func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
