// Package password wraps bcrypt for credential hashing. The work factor is
// fixed at cost 12 to keep brute-force expensive.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const cost = 12

// Hash produces a salted bcrypt digest of the password. It fails only on
// irrecoverable runtime errors, which are propagated to the caller.
func Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether password matches the stored digest. A mismatch is
// not an error; it simply returns false.
func Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
