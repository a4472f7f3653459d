package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/newcity-hq/newcity-api/internal/auth"
	"github.com/newcity-hq/newcity-api/internal/config"
)

// NewRouter wires the handlers onto the public route table. GET /events is
// the only unauthenticated data route; everything else sits behind the
// session verifier.
func NewRouter(cfg *config.Config, verifier *auth.Verifier, users *UserHandler, events *EventHandler, rsvps *RSVPHandler) *gin.Engine {
	r := gin.Default()
	r.Use(RateLimit(cfg.Server.RateLimit, cfg.Server.RateBurst))

	// Ping endpoint for health check
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	r.GET("/events", events.List)

	authed := r.Group("/", RequireAuth(verifier))
	{
		authed.POST("/events", events.Create)
		authed.POST("/events/:eventId/rsvp", rsvps.Set)
		authed.DELETE("/events/:eventId/rsvp", rsvps.Remove)

		authed.GET("/users", users.Current)
		authed.POST("/users", users.Onboard)
		authed.GET("/users/matches", users.FindMatches)
	}

	return r
}
