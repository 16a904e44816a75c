package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shreekara/studio-api/internal/core/domain"
)

// TokenService issues and verifies HS256 JWTs carrying a subject claim.
// The signing secret is shared process-wide configuration: every instance
// that verifies tokens must hold the same secret that issued them.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue returns a signed token for subject with exp = now + TTL.
func (s *TokenService) Issue(subject string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().UTC().Add(s.ttl)),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify returns the subject of a valid token. Malformed structure, a
// signature by any other key, a non-HS256 algorithm, or a reached expiry all
// map to domain.ErrInvalidToken; whether the subject still exists is not
// checked here.
func (s *TokenService) Verify(token string) (string, error) {
	claims := jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !tkn.Valid || claims.Subject == "" {
		return "", domain.ErrInvalidToken
	}
	return claims.Subject, nil
}
