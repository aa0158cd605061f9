package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHashCost is the bcrypt cost factor used for new password hashes.
const PasswordHashCost = 10

// HashPassword derives a salted bcrypt hash from a plaintext password.
// The per-password salt is embedded in the returned hash string.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compares a plaintext candidate against a stored bcrypt hash.
// bcrypt's comparison has a constant structure regardless of where the
// mismatch occurs.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
