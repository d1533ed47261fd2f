package service

import (
	"context"
)

// NotificationEvent asks the worker to deliver a push notification to a user's active devices.
type NotificationEvent struct {
	RequestID      string            `json:"request_id,omitempty"` // For distributed tracing
	NotificationID string            `json:"notification_id,omitempty"`
	UserID         string            `json:"user_id"`
	Type           string            `json:"type"`
	Title          string            `json:"title"`
	Body           string            `json:"body"`
	ListingID      string            `json:"listing_id,omitempty"`
	Data           map[string]string `json:"data,omitempty"`
}

// Transactional email templates understood by the mail endpoint.
const (
	EmailTemplateRegistration  = "registration"
	EmailTemplatePasswordReset = "password_reset"
	EmailTemplateNewListing    = "new_listing"
)

// EmailEvent asks the worker to send a transactional email.
type EmailEvent struct {
	RequestID string            `json:"request_id,omitempty"`
	Template  string            `json:"type"`
	To        string            `json:"to"`
	Data      map[string]string `json:"data,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishNotificationEvent publishes a push notification event for async processing
	PublishNotificationEvent(ctx context.Context, event *NotificationEvent) error

	// PublishEmailEvent publishes a transactional email event for async processing
	PublishEmailEvent(ctx context.Context, event *EmailEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
