package entity

import "github.com/google/uuid"

// Session identifies the caller of an operation. A nil *Session is an anonymous visitor.
// It is built once per request by the authentication middleware and passed explicitly to use cases.
type Session struct {
	UserID uuid.UUID
	Roles  Roles
}

// IsAuthenticated reports whether the session belongs to a signed-in user.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.UserID != uuid.Nil
}

// IsAdmin reports whether the session carries the admin role.
func (s *Session) IsAdmin() bool {
	return s.IsAuthenticated() && s.Roles.Contains(RoleAdmin)
}

// OwnerID returns the user id for authenticated sessions and nil otherwise.
func (s *Session) OwnerID() *uuid.UUID {
	if !s.IsAuthenticated() {
		return nil
	}
	id := s.UserID

	return &id
}
