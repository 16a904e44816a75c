// Package memory provides a fixed-table credential store for local runs
// without Mongo, and doubles as the test double for everything that needs
// an AuthorRepository.
package memory

import (
	"context"
	"time"

	"github.com/shreekara/studio-api/internal/core/domain"
)

// AuthorRepository holds a fixed username → password-hash table. The table
// is set at construction and never mutated, so concurrent reads need no
// locking.
type AuthorRepository struct {
	authors map[string]domain.Author
}

// NewAuthorRepository builds the repository from already-hashed credentials.
func NewAuthorRepository(hashes map[string]string) *AuthorRepository {
	now := time.Now().UTC()
	authors := make(map[string]domain.Author, len(hashes))
	for username, hash := range hashes {
		authors[username] = domain.Author{
			ID:           username,
			Username:     username,
			PasswordHash: hash,
			CreatedAt:    now,
		}
	}
	return &AuthorRepository{authors: authors}
}

func (r *AuthorRepository) FindByUsername(_ context.Context, username string) (*domain.Author, error) {
	author, ok := r.authors[username]
	if !ok {
		return nil, domain.ErrAuthorNotFound
	}
	a := author
	return &a, nil
}
