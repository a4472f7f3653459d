package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every way a presented credential can fail: bad
// signature, wrong algorithm, expiry, or a missing subject claim.
var ErrInvalidToken = errors.New("invalid session token")

// SessionClaims is the payload the identity provider signs into each
// session token. Subject (from RegisteredClaims) is the external user id.
type SessionClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Verifier resolves a bearer token to the identity provider's subject id.
// When a redis client is supplied, verified tokens are cached under a hash
// of the token for the session TTL so hot sessions skip signature checks.
type Verifier struct {
	secret []byte
	cache  *redis.Client
	ttl    time.Duration
}

func NewVerifier(secret string, cache *redis.Client, ttl time.Duration) *Verifier {
	return &Verifier{secret: []byte(secret), cache: cache, ttl: ttl}
}

// Subject returns the external subject id for a session token.
func (v *Verifier) Subject(ctx context.Context, token string) (string, error) {
	key := sessionKey(token)

	if v.cache != nil {
		if sub, err := v.cache.Get(ctx, key).Result(); err == nil && sub != "" {
			return sub, nil
		}
	}

	claims := &SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}

	if v.cache != nil {
		// Best effort; a cache miss next time just re-verifies.
		_ = v.cache.Set(ctx, key, claims.Subject, v.ttl).Err()
	}

	return claims.Subject, nil
}

func sessionKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "session:" + hex.EncodeToString(sum[:])
}
