package service

import (
	"context"
	"sort"

	"github.com/newcity-hq/newcity-api/internal/models"
	"github.com/newcity-hq/newcity-api/internal/repository"
)

// Match pairs a candidate user with their overlap score against the
// requester. Score is in (0, 1]; zero-overlap candidates are dropped.
type Match struct {
	User  models.User `json:"user"`
	Score float64     `json:"score"`
}

// MatchService ranks other users by how much their interests and tags
// overlap with the requester's, using Jaccard similarity over the union of
// both label sets. Names compare case-sensitively, same as tag uniqueness.
type MatchService struct {
	users *repository.UserRepository
}

func NewMatchService(users *repository.UserRepository) *MatchService {
	return &MatchService{users: users}
}

// FindMatches returns candidates ordered by score descending, name
// ascending on ties. The requester is never included.
func (s *MatchService) FindMatches(ctx context.Context, subject string) ([]Match, error) {
	me, err := s.users.GetByClerkID(ctx, subject)
	if err != nil {
		if notFound(err) {
			return nil, ErrUserNotFound
		}
		logger.Error().Err(err).Str("subject", subject).Msg("Error resolving user")
		return nil, err
	}

	candidates, err := s.users.ListWithLabels(ctx, me.ID)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing match candidates")
		return nil, err
	}

	mine := labelSet(me)
	matches := make([]Match, 0, len(candidates))
	for _, candidate := range candidates {
		score := jaccard(mine, labelSet(&candidate))
		if score > 0 {
			matches = append(matches, Match{User: candidate, Score: score})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].User.Name < matches[j].User.Name
	})

	return matches, nil
}

// labelSet collects the union of a user's interest and tag names.
func labelSet(u *models.User) map[string]struct{} {
	set := make(map[string]struct{}, len(u.Interests)+len(u.Tags))
	for _, interest := range u.Interests {
		set[interest.Name] = struct{}{}
	}
	for _, tag := range u.Tags {
		set[tag.Name] = struct{}{}
	}
	return set
}

// jaccard calculates the Jaccard similarity coefficient between two label
// sets. Returns a value between 0 (no overlap) and 1 (identical).
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	intersection := 0
	for label := range a {
		if _, exists := b[label]; exists {
			intersection++
		}
	}

	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}

	return float64(intersection) / float64(union)
}
