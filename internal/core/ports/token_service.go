package ports

// TokenService issues and verifies the signed bearer tokens that carry an
// author identity between requests. Tokens are self-contained: Verify needs
// no store lookup and never checks whether the subject still exists; that
// is the auth middleware's job.
type TokenService interface {
	// Issue returns a signed token for subject, expiring after the
	// service-configured TTL.
	Issue(subject string) (string, error)
	// Verify returns the subject of a well-formed, correctly signed,
	// unexpired token, or domain.ErrInvalidToken.
	Verify(token string) (string, error)
}
