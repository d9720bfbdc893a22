package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a bcrypt digest using the given cost. The digest is
// self-describing (salt and cost are embedded), so nothing besides the
// digest itself needs to be stored.
func HashPassword(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword safely compares a bcrypt digest and a plain password.
// A malformed digest counts as a mismatch, never a panic.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
