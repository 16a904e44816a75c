package domain

import (
	"errors"
	"time"
)

// RoleAuthor is the only role the backend knows today. Every seeded
// credential authenticates as an author; the profile endpoint reports it.
const RoleAuthor = "author"

var ErrInvalidCredentials = errors.New("invalid author credentials")
var ErrInvalidToken = errors.New("invalid token")
var ErrAuthorNotFound = errors.New("author not found")

// Author models a seeded credential record. Authors are created by the seed
// tool and are read-only from the API's perspective.
type Author struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
