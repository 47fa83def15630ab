package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"alumni-network/backend/internal/models"
	"alumni-network/backend/internal/service"
	"alumni-network/backend/pkg/logger"
)

// EventHandler handles calendar event endpoints
type EventHandler struct {
	events *service.EventService
	logger *logger.Logger
}

// NewEventHandler creates a new event handler
func NewEventHandler(events *service.EventService, logger *logger.Logger) *EventHandler {
	return &EventHandler{events: events, logger: logger}
}

// RegisterRoutes registers the event routes
func (h *EventHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/events", h.ListEvents)
	router.POST("/events", h.CreateEvent)
	router.GET("/events/:id", h.GetEvent)
	router.GET("/calendar-events", h.CalendarEvents)
}

// ListEvents returns all events with full details, ordered by date
func (h *EventHandler) ListEvents(c *gin.Context) {
	events, err := h.events.ListEvents()
	if err != nil {
		respondError(c, err)
		return
	}

	list := make([]models.EventResponse, len(events))
	for i, e := range events {
		list[i] = e.ToResponse()
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "events": list})
}

// CreateEvent creates a new calendar event
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Error binding JSON for event", "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	event, err := h.events.CreateEvent(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Event created successfully",
		"event":   event.ToResponse(),
	})
}

// GetEvent returns one event by id; unknown ids are a 404
func (h *EventHandler) GetEvent(c *gin.Context) {
	eventID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	event, err := h.events.GetEvent(eventID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event.ToResponse())
}

// CalendarEvents returns minimal date/title pins for calendar markers
func (h *EventHandler) CalendarEvents(c *gin.Context) {
	events, err := h.events.ListEvents()
	if err != nil {
		respondError(c, err)
		return
	}

	pins := make([]models.CalendarPin, len(events))
	for i, e := range events {
		pins[i] = e.ToCalendarPin()
	}

	c.JSON(http.StatusOK, pins)
}
