// Package passwd is the one-way credential hasher for stored account
// passwords. It wraps bcrypt with a fixed cost so every caller hashes
// the same way.
package passwd

import "golang.org/x/crypto/bcrypt"

// Cost is deliberately fixed; bumping it only affects newly stored
// hashes since the cost is encoded into each hash.
const Cost = bcrypt.DefaultCost

// Hash generates a salted bcrypt hash of the plaintext. It fails only on
// malformed input (bcrypt rejects plaintexts longer than 72 bytes).
func Hash(plaintext string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plaintext), Cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify reports whether plaintext matches the stored hash. It never
// errors: a mismatch and a malformed stored hash both resolve to false.
func Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
