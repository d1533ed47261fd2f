// Package entity holds the marketplace's business objects: profiles, listings, catalog, credentials and devices.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderTypeEmail is the only credential provider; phone login is disabled.
const ProviderTypeEmail = "email"

// Authentication is the credential a profile signs in with.
type Authentication struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Provider       string
	ProviderUserID string // normalized email
	PasswordHash   string // bcrypt
	CreatedAt      time.Time
}

// RefreshToken is one login session. Only TokenHash, the SHA-256 of the issued token, is stored.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Live reports whether the session can still be refreshed at now.
func (t *RefreshToken) Live(now time.Time) bool {
	return t.ExpiresAt.After(now)
}

// PasswordResetCode is a single-use numeric code mailed to an account owner.
type PasswordResetCode struct {
	ID        uuid.UUID
	Email     string
	Code      string
	ExpiresAt time.Time
	Used      bool
	CreatedAt time.Time
}

// IsUsable reports whether the code is unused and not expired at now.
func (c *PasswordResetCode) IsUsable(now time.Time) bool {
	return !c.Used && c.ExpiresAt.After(now)
}
