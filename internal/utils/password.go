package utils

import "golang.org/x/crypto/bcrypt"

// passwordCost matches the cost the existing user base was hashed with.
const passwordCost = 10

func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	return string(b), err
}

// PasswordMatches reports whether password hashes to hash.
func PasswordMatches(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
