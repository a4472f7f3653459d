package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/newcity-hq/newcity-api/internal/models"
	"github.com/newcity-hq/newcity-api/internal/repository"
	"github.com/newcity-hq/newcity-api/internal/service"
)

type EventHandler struct {
	events *service.EventService
}

func NewEventHandler(events *service.EventService) *EventHandler {
	return &EventHandler{events: events}
}

// CreateEventInput DTO for creating a new event. Capacity must be numeric
// or absent; a string capacity fails the bind and never reaches storage.
type CreateEventInput struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Date        string   `json:"date" binding:"required"`
	Location    string   `json:"location" binding:"required"`
	ImageURL    string   `json:"imageUrl"`
	Capacity    *int     `json:"capacity"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
}

// Create persists a new event hosted by the caller --> POST /events
func (h *EventHandler) Create(c *gin.Context) {
	var input CreateEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	startsAt, err := time.Parse(time.RFC3339, input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	event, err := h.events.Create(c.Request.Context(), currentSubject(c), service.CreateEventInput{
		Title:       input.Title,
		Description: input.Description,
		StartsAt:    startsAt,
		Location:    input.Location,
		ImageURL:    input.ImageURL,
		Capacity:    input.Capacity,
		Category:    input.Category,
		Tags:        input.Tags,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"event": event})
}

// List returns the event directory --> GET /events?city=&category=
func (h *EventHandler) List(c *gin.Context) {
	filter := repository.EventFilter{
		City:     c.Query("city"),
		Category: c.Query("category"),
	}

	events, err := h.events.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	if events == nil {
		events = []models.Event{}
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}
