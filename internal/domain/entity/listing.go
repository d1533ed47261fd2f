package entity

import (
	"time"

	"github.com/google/uuid"
)

// ListingStatus is the moderation state of a listing.
type ListingStatus string

const (
	// ListingStatusPending is the state of every freshly published listing.
	ListingStatusPending ListingStatus = "pending"
	// ListingStatusApproved makes the listing eligible for public display.
	ListingStatusApproved ListingStatus = "approved"
	// ListingStatusRejected hides the listing.
	ListingStatusRejected ListingStatus = "rejected"
)

// IsValid checks if the status is a known moderation state.
func (s ListingStatus) IsValid() bool {
	switch s {
	case ListingStatusPending, ListingStatusApproved, ListingStatusRejected:
		return true
	default:
		return false
	}
}

func (s ListingStatus) String() string {
	return string(s)
}

// Condition describes the wear of the equipment.
type Condition string

const (
	ConditionNew  Condition = "new"
	ConditionGood Condition = "good"
	ConditionUsed Condition = "used"
)

// IsValid checks if the condition is a known value.
func (c Condition) IsValid() bool {
	switch c {
	case ConditionNew, ConditionGood, ConditionUsed:
		return true
	default:
		return false
	}
}

// Badge is a promotional tag set by administrators.
type Badge string

const (
	BadgeNone      Badge = "none"
	BadgeUrgent    Badge = "urgent"
	BadgeTop       Badge = "top"
	BadgeExclusive Badge = "exclusive"
)

// IsValid checks if the badge is a known value.
func (b Badge) IsValid() bool {
	switch b {
	case BadgeNone, BadgeUrgent, BadgeTop, BadgeExclusive:
		return true
	default:
		return false
	}
}

// Listing is a single equipment-for-sale advertisement.
type Listing struct {
	ID              uuid.UUID
	UserID          *uuid.UUID // nil for anonymous, contact-only listings
	CategoryID      uuid.UUID
	EquipmentTypeID uuid.UUID
	Title           string
	Description     string
	Price           int64 // MAD
	Year            *int
	Region          Region
	City            string
	Brand           string
	Model           string
	Condition       Condition
	Images          []string
	Status          ListingStatus
	IsActive        bool
	PriorityScore   int
	Badge           Badge
	Plan            AccountType // plan selected at publish time
	ViewsCount      int64
	ExpiresAt       *time.Time
	ExpiryWarnedAt  *time.Time
	ContactPhone    string
	ContactEmail    string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsOwnedBy reports whether the listing belongs to userID.
func (l *Listing) IsOwnedBy(userID uuid.UUID) bool {
	return l.UserID != nil && *l.UserID == userID
}

// IsExpired reports whether the expiration timestamp is set and reached at now.
func (l *Listing) IsExpired(now time.Time) bool {
	return l.ExpiresAt != nil && !l.ExpiresAt.After(now)
}

// ListingView is an append-only record of a detail page visit.
type ListingView struct {
	ID        uuid.UUID
	ListingID uuid.UUID
	IPAddress string
	ViewedAt  time.Time
}

// ListingStats aggregates listing counters for dashboards.
type ListingStats struct {
	Total      int64 `json:"total"`
	Approved   int64 `json:"approved"`
	Pending    int64 `json:"pending"`
	Rejected   int64 `json:"rejected"`
	TotalViews int64 `json:"total_views"`
}
