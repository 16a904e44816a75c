package service

import "testing"

func TestHashPassword_SaltedAndVerifiable(t *testing.T) {
	h1, err := HashPassword("shree123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	h2, err := HashPassword("shree123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	if h1 == h2 {
		t.Fatalf("expected distinct hashes for the same input (salt embedded)")
	}
	if !VerifyPassword("shree123", h1) {
		t.Fatalf("first hash does not verify")
	}
	if !VerifyPassword("shree123", h2) {
		t.Fatalf("second hash does not verify")
	}
}

func TestVerifyPassword_WrongPlaintext(t *testing.T) {
	h, err := HashPassword("kara456")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if VerifyPassword("kara457", h) {
		t.Fatalf("wrong password verified")
	}
	if VerifyPassword("", h) {
		t.Fatalf("empty password verified")
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	if VerifyPassword("anything", "not-a-bcrypt-hash") {
		t.Fatalf("malformed hash verified")
	}
}
