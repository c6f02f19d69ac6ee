package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestStaticVerifier(t *testing.T) {
	v := NewStaticVerifier("securekey123")

	assert.True(t, v.Verify("securekey123"))
	assert.False(t, v.Verify("wrongkey"))
	assert.False(t, v.Verify(""))
}

func TestStaticVerifierEmptySecret(t *testing.T) {
	v := NewStaticVerifier("")

	// An unset secret must never authenticate anything.
	assert.False(t, v.Verify(""))
	assert.False(t, v.Verify("anything"))
}

func TestBcryptVerifier(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("securekey123"), bcrypt.MinCost)
	require.NoError(t, err)

	v := NewBcryptVerifier(string(hash))

	assert.True(t, v.Verify("securekey123"))
	assert.False(t, v.Verify("wrongkey"))
}
