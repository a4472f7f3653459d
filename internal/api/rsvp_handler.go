package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/newcity-hq/newcity-api/internal/service"
)

type RSVPHandler struct {
	rsvps *service.RSVPService
}

func NewRSVPHandler(rsvps *service.RSVPService) *RSVPHandler {
	return &RSVPHandler{rsvps: rsvps}
}

// SetRSVPInput DTO for recording an attendance response
type SetRSVPInput struct {
	Status string `json:"status" binding:"required"`
}

// Set records or overwrites the caller's response --> POST /events/:eventId/rsvp
// 201 when this request created the row, 200 when it overwrote one.
func (h *RSVPHandler) Set(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	var input SetRSVPInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rsvp, created, err := h.rsvps.Set(c.Request.Context(), currentSubject(c), eventID, input.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"rsvp": rsvp})
}

// Remove deletes the caller's response --> DELETE /events/:eventId/rsvp
func (h *RSVPHandler) Remove(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	if err := h.rsvps.Remove(c.Request.Context(), currentSubject(c), eventID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "RSVP removed"})
}
