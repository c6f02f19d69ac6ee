package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// Verifier checks an API credential presented by a client. Implementations
// must be safe for concurrent use.
type Verifier interface {
	Verify(token string) bool
}

// StaticVerifier compares tokens against a configured shared secret in
// constant time.
type StaticVerifier struct {
	secret []byte
}

func NewStaticVerifier(secret string) *StaticVerifier {
	return &StaticVerifier{secret: []byte(secret)}
}

func (v *StaticVerifier) Verify(token string) bool {
	if len(v.secret) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare(v.secret, []byte(token)) == 1
}

// BcryptVerifier compares tokens against a bcrypt hash of the shared secret,
// so deployments can avoid keeping the plaintext key in config.
type BcryptVerifier struct {
	hash []byte
}

func NewBcryptVerifier(hash string) *BcryptVerifier {
	return &BcryptVerifier{hash: []byte(hash)}
}

func (v *BcryptVerifier) Verify(token string) bool {
	return bcrypt.CompareHashAndPassword(v.hash, []byte(token)) == nil
}
