package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/shreekara/studio-api/internal/core/domain"
)

func TestAuthorRepository_FindByUsername(t *testing.T) {
	repo := NewAuthorRepository(map[string]string{
		"admin":   "$2a$10$fakehashA",
		"author1": "$2a$10$fakehashB",
	})

	author, err := repo.FindByUsername(context.Background(), "admin")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if author.Username != "admin" || author.PasswordHash != "$2a$10$fakehashA" {
		t.Fatalf("unexpected author: %+v", author)
	}
}

func TestAuthorRepository_NotFound(t *testing.T) {
	repo := NewAuthorRepository(map[string]string{"admin": "$2a$10$fakehash"})

	if _, err := repo.FindByUsername(context.Background(), "ghost"); !errors.Is(err, domain.ErrAuthorNotFound) {
		t.Fatalf("expected ErrAuthorNotFound, got %v", err)
	}
}

func TestAuthorRepository_ReturnsCopy(t *testing.T) {
	repo := NewAuthorRepository(map[string]string{"admin": "$2a$10$fakehash"})

	first, _ := repo.FindByUsername(context.Background(), "admin")
	first.PasswordHash = "tampered"

	second, _ := repo.FindByUsername(context.Background(), "admin")
	if second.PasswordHash != "$2a$10$fakehash" {
		t.Fatalf("repository state mutated through returned value")
	}
}
