package ports

import (
	"context"

	"github.com/shreekara/studio-api/internal/core/domain"
)

// AuthorRepository is the credential store boundary. Password hashes never
// travel further than this interface and the bcrypt helpers that consume
// them.
type AuthorRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.Author, error)
}
