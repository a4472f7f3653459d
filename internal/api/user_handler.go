package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/newcity-hq/newcity-api/internal/service"
)

type UserHandler struct {
	users   *service.UserService
	matches *service.MatchService
}

func NewUserHandler(users *service.UserService, matches *service.MatchService) *UserHandler {
	return &UserHandler{users: users, matches: matches}
}

// OnboardInput DTO for creating a profile. ClerkID is accepted for
// compatibility with existing clients but the verified session subject is
// what gets stored.
type OnboardInput struct {
	ClerkID           string   `json:"clerkId"`
	Email             string   `json:"email" binding:"required"`
	Name              string   `json:"name" binding:"required"`
	Age               *int     `json:"age"`
	Profession        string   `json:"profession"`
	City              string   `json:"city" binding:"required"`
	Bio               string   `json:"bio"`
	ImageURL          string   `json:"imageUrl"`
	SelectedInterests []string `json:"selectedInterests"`
	SelectedTags      []string `json:"selectedTags"`
}

// Onboard creates the caller's profile --> POST /users
func (h *UserHandler) Onboard(c *gin.Context) {
	var input OnboardInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.Onboard(c.Request.Context(), currentSubject(c), service.OnboardInput{
		Email:             input.Email,
		Name:              input.Name,
		Age:               input.Age,
		Profession:        input.Profession,
		City:              input.City,
		Bio:               input.Bio,
		ImageURL:          input.ImageURL,
		SelectedInterests: input.SelectedInterests,
		SelectedTags:      input.SelectedTags,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// Current returns the caller's profile --> GET /users
func (h *UserHandler) Current(c *gin.Context) {
	user, err := h.users.Current(c.Request.Context(), currentSubject(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// FindMatches returns users ranked by interest/tag overlap --> GET /users/matches
func (h *UserHandler) FindMatches(c *gin.Context) {
	matches, err := h.matches.FindMatches(c.Request.Context(), currentSubject(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"matches": matches})
}
