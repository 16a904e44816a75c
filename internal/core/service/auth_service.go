package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/shreekara/studio-api/internal/api/metrics"
	"github.com/shreekara/studio-api/internal/core/domain"
	"github.com/shreekara/studio-api/internal/core/ports"
)

// AuthService implements login against the credential store.
type AuthService struct {
	repo   ports.AuthorRepository
	tokens ports.TokenService
	log    zerolog.Logger
}

func NewAuthService(repo ports.AuthorRepository, tokens ports.TokenService, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, log: log}
}

// Login verifies the credential pair and issues an access token. Unknown
// username and wrong password are indistinguishable to the caller: both
// return domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	author, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, domain.ErrAuthorNotFound) {
			s.log.Error().Err(err).Msg("credential store lookup failed")
		}
		metrics.LoginFailuresTotal.Inc()
		return "", domain.ErrInvalidCredentials
	}

	if !VerifyPassword(password, author.PasswordHash) {
		metrics.LoginFailuresTotal.Inc()
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(author.Username)
	if err != nil {
		s.log.Error().Err(err).Msg("token issuance failed")
		return "", domain.ErrInvalidCredentials
	}

	s.log.Info().Str("username", author.Username).Msg("author logged in")
	return token, nil
}
