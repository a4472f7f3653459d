package service

import (
	"context"

	"github.com/newcity-hq/newcity-api/internal/models"
	"github.com/newcity-hq/newcity-api/internal/repository"
)

// OnboardInput carries the onboarding form. SelectedInterests keeps the
// order the member picked them in.
type OnboardInput struct {
	Email             string
	Name              string
	Age               *int
	Profession        string
	City              string
	Bio               string
	ImageURL          string
	SelectedInterests []string
	SelectedTags      []string
}

type UserService struct {
	users *repository.UserRepository
}

func NewUserService(users *repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// Onboard creates the profile for an identity-provider subject. The subject
// comes from the verified session, never from the request body, so a client
// cannot onboard on someone else's behalf.
func (s *UserService) Onboard(ctx context.Context, subject string, input OnboardInput) (*models.User, error) {
	user := &models.User{
		ClerkID:    subject,
		Email:      input.Email,
		Name:       input.Name,
		Age:        input.Age,
		Profession: input.Profession,
		City:       input.City,
		Bio:        input.Bio,
		ImageURL:   input.ImageURL,
	}

	if err := s.users.Create(ctx, user, input.SelectedInterests, input.SelectedTags); err != nil {
		logger.Error().Err(err).Str("subject", subject).Msg("Error creating user")
		return nil, err
	}

	return s.users.GetByClerkID(ctx, subject)
}

// Current returns the caller's profile with interests and tags attached.
func (s *UserService) Current(ctx context.Context, subject string) (*models.User, error) {
	user, err := s.users.GetByClerkID(ctx, subject)
	if err != nil {
		if notFound(err) {
			return nil, ErrUserNotFound
		}
		logger.Error().Err(err).Str("subject", subject).Msg("Error fetching user")
		return nil, err
	}
	return user, nil
}
