package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/newcity-hq/newcity-api/internal/models"
	"github.com/newcity-hq/newcity-api/internal/repository"
)

// RSVPService reconciles attendance responses: one row per (user, event)
// pair, overwritten in place on status change, removable by its owner.
type RSVPService struct {
	users  *repository.UserRepository
	events *repository.EventRepository
	rsvps  *repository.RSVPRepository
}

func NewRSVPService(users *repository.UserRepository, events *repository.EventRepository, rsvps *repository.RSVPRepository) *RSVPService {
	return &RSVPService{users: users, events: events, rsvps: rsvps}
}

// Set records the caller's response to an event, creating or overwriting
// the single row for the pair. The returned bool is true when this call
// created the row.
func (s *RSVPService) Set(ctx context.Context, subject string, eventID uuid.UUID, status string) (*models.RSVP, bool, error) {
	user, err := s.users.ResolveClerkID(ctx, subject)
	if err != nil {
		if notFound(err) {
			return nil, false, ErrUserNotFound
		}
		logger.Error().Err(err).Str("subject", subject).Msg("Error resolving user")
		return nil, false, err
	}

	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		if notFound(err) {
			return nil, false, ErrEventNotFound
		}
		logger.Error().Err(err).Str("event_id", eventID.String()).Msg("Error fetching event")
		return nil, false, err
	}

	rsvp, created, err := s.rsvps.Upsert(ctx, user.ID, eventID, status)
	if err != nil {
		logger.Error().Err(err).
			Str("subject", subject).
			Str("event_id", eventID.String()).
			Msg("Error upserting rsvp")
		return nil, false, err
	}

	return rsvp, created, nil
}

// Remove deletes the caller's response to an event.
func (s *RSVPService) Remove(ctx context.Context, subject string, eventID uuid.UUID) error {
	user, err := s.users.ResolveClerkID(ctx, subject)
	if err != nil {
		if notFound(err) {
			return ErrUserNotFound
		}
		logger.Error().Err(err).Str("subject", subject).Msg("Error resolving user")
		return err
	}

	if err := s.rsvps.Delete(ctx, user.ID, eventID); err != nil {
		if notFound(err) {
			return ErrRSVPNotFound
		}
		logger.Error().Err(err).
			Str("subject", subject).
			Str("event_id", eventID.String()).
			Msg("Error deleting rsvp")
		return err
	}

	return nil
}
