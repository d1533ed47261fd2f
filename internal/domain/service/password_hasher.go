// Package service declares the ports for stateless capabilities the use cases
// call out to: hashing, tokens, storage, push, mail and event publishing.
package service

// PasswordHasher owns the password policy and the hash format stored with a credential.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Check is constant-time with respect to the candidate password.
	Check(password, hash string) bool
	// ValidateStrength returns a field-level validation error naming each unmet rule.
	ValidateStrength(password string) error
}
