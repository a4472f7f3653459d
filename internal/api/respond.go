package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/newcity-hq/newcity-api/internal/service"
)

// respondError maps service errors onto the wire taxonomy: the sentinel
// not-found errors become 404s with their specific message, everything else
// is a generic 500 so store detail never leaks to clients.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, service.ErrEventNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	case errors.Is(err, service.ErrRSVPNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "RSVP not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// currentSubject returns the subject RequireAuth stored on the context.
func currentSubject(c *gin.Context) string {
	return c.GetString(subjectKey)
}
