package service

import (
	"context"
	"time"

	"github.com/newcity-hq/newcity-api/internal/models"
	"github.com/newcity-hq/newcity-api/internal/repository"
)

// CreateEventInput carries the event creation form. Capacity is optional;
// the handler rejects non-numeric values before this struct is built, so an
// absent pointer always means "no capacity given", never a silent default.
type CreateEventInput struct {
	Title       string
	Description string
	StartsAt    time.Time
	Location    string
	ImageURL    string
	Capacity    *int
	Category    string
	Tags        []string
}

type EventService struct {
	users  *repository.UserRepository
	events *repository.EventRepository
}

func NewEventService(users *repository.UserRepository, events *repository.EventRepository) *EventService {
	return &EventService{users: users, events: events}
}

// Create persists an event hosted by the caller. The host must already be
// onboarded. Capacity is NOT enforced against RSVPs anywhere; it is stored
// and returned only.
func (s *EventService) Create(ctx context.Context, subject string, input CreateEventInput) (*models.Event, error) {
	host, err := s.users.ResolveClerkID(ctx, subject)
	if err != nil {
		if notFound(err) {
			return nil, ErrUserNotFound
		}
		logger.Error().Err(err).Str("subject", subject).Msg("Error resolving host")
		return nil, err
	}

	event := &models.Event{
		Title:       input.Title,
		Description: input.Description,
		StartsAt:    input.StartsAt,
		Location:    input.Location,
		ImageURL:    input.ImageURL,
		Capacity:    input.Capacity,
		Category:    input.Category,
		HostID:      host.ID,
	}

	if err := s.events.Create(ctx, event, input.Tags); err != nil {
		logger.Error().Err(err).Str("subject", subject).Msg("Error creating event")
		return nil, err
	}

	return event, nil
}

// List returns the directory, filtered by host city and/or category,
// ordered by start time ascending.
func (s *EventService) List(ctx context.Context, filter repository.EventFilter) ([]models.Event, error) {
	events, err := s.events.List(ctx, filter)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing events")
		return nil, err
	}
	return events, nil
}
