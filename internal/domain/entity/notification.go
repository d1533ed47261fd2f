// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType tags the trigger that created a notification.
type NotificationType string

const (
	NotificationListingApproved       NotificationType = "listing_approved"
	NotificationListingRejected       NotificationType = "listing_rejected"
	NotificationListingExpiring       NotificationType = "listing_expiring"
	NotificationListingExpired        NotificationType = "listing_expired"
	NotificationSubscriptionActivated NotificationType = "subscription_activated"
	NotificationSubscriptionExpired   NotificationType = "subscription_expired"
	NotificationSystem                NotificationType = "system"
)

// Notification is a message addressed to one user.
type Notification struct {
	ID        uuid.UUID        `json:"id"`                   // The Global Unique Identifier (GUID) for the notification.
	UserID    uuid.UUID        `json:"user_id"`              // The recipient.
	Title     string           `json:"title"`                // Short headline.
	Message   string           `json:"message"`              // Body text.
	Type      NotificationType `json:"type"`                 // Trigger tag.
	IsRead    bool             `json:"is_read"`              // Set when the user opens it.
	ListingID *uuid.UUID       `json:"listing_id,omitempty"` // Optional related listing.
	CreatedAt time.Time        `json:"created_at"`           // Timestamp of when the notification was created.
}
