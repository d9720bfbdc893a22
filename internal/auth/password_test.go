package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	password := "password123"
	hash, err := HashPassword(password, bcrypt.MinCost)

	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)
}

func TestVerifyPassword(t *testing.T) {
	password := "password123"
	hash, _ := HashPassword(password, bcrypt.MinCost)

	assert.True(t, VerifyPassword(hash, password))
	assert.False(t, VerifyPassword(hash, "wrongpassword"))
}

func TestVerifyPassword_MalformedDigest(t *testing.T) {
	assert.False(t, VerifyPassword("notahash", "password123"))
	assert.False(t, VerifyPassword("", "password123"))
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	h1, err := HashPassword("samepassword", bcrypt.MinCost)
	assert.NoError(t, err)
	h2, err := HashPassword("samepassword", bcrypt.MinCost)
	assert.NoError(t, err)

	// The digest embeds a fresh salt each time.
	assert.NotEqual(t, h1, h2)
	assert.True(t, VerifyPassword(h1, "samepassword"))
	assert.True(t, VerifyPassword(h2, "samepassword"))
}
