// Package service holds the domain rules between the HTTP handlers and the
// repositories: RSVP reconciliation, the event directory, onboarding and
// matching. Identity arrives as an explicit subject string resolved at the
// request boundary; nothing in here reads ambient session state.
package service

import (
	"errors"
	"os"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "service").Logger()

// Sentinel errors the handlers map onto HTTP status codes. Anything else
// coming out of a service is an internal failure.
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrEventNotFound = errors.New("event not found")
	ErrRSVPNotFound  = errors.New("rsvp not found")
)

func notFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
