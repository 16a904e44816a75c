package ports

import "context"

// AuthService implements the login flow: credential check plus token
// issuance.
type AuthService interface {
	// Login verifies the username/password pair and returns a signed access
	// token. Every failure mode (unknown user, wrong password) collapses to
	// domain.ErrInvalidCredentials so callers cannot tell them apart.
	Login(ctx context.Context, username, password string) (string, error)
}
