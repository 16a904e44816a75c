package service

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a bcrypt hash of the plaintext. The salt is generated
// internally and embedded in the output, so hashing the same input twice
// yields different strings that both verify.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether plain matches the stored bcrypt hash.
func VerifyPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
