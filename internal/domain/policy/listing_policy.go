// Package policy holds the listing lifecycle rules: initial status, expiration windows,
// the free quota, moderation overwrites, public visibility and display ranking.
// Everything here is pure and takes the current time as an argument.
package policy

import (
	"regexp"
	"strings"
	"time"

	"enginex/internal/domain/entity"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const day = 24 * time.Hour

const (
	// QuotaLimit is the number of free listings a contact identity may publish per window.
	QuotaLimit = 2
	// QuotaWindow is the trailing period the free quota is counted over.
	QuotaWindow = 30 * day
	// SubscriptionWindow is the paid period opened by an upgrade.
	SubscriptionWindow = 30 * day
	// AdminListingLifetime applies to listings created by moderators on behalf of users.
	AdminListingLifetime = 90 * day
	// MaxImages is the maximum number of photos per listing.
	MaxImages = 6
	// MinYear is the oldest accepted model year.
	MinYear = 1950
)

var lifetimes = map[entity.AccountType]time.Duration{
	entity.AccountTypeIndividual: 15 * day,
	entity.AccountTypePro:        30 * day,
	entity.AccountTypePremium:    90 * day,
}

var planWeights = map[entity.AccountType]int{
	entity.AccountTypeIndividual: 0,
	entity.AccountTypePro:        10,
	entity.AccountTypePremium:    20,
}

var badgeWeights = map[entity.Badge]int{
	entity.BadgeNone:      0,
	entity.BadgeUrgent:    5,
	entity.BadgeTop:       30,
	entity.BadgeExclusive: 50,
}

var whitespace = regexp.MustCompile(`\s+`)

// InitialStatus is the status of every new listing. There is no auto-approval.
func InitialStatus() entity.ListingStatus {
	return entity.ListingStatusPending
}

// lifetime returns how long a listing published under plan stays live.
// Unknown plans fall back to the free lifetime.
func lifetime(plan entity.AccountType) time.Duration {
	if d, ok := lifetimes[plan]; ok {
		return d
	}

	return lifetimes[entity.AccountTypeIndividual]
}

// ExpiresAt computes the expiration timestamp of a listing created at now.
func ExpiresAt(plan entity.AccountType, now time.Time) time.Time {
	return now.Add(lifetime(plan))
}

// ShouldUpgradeAccount reports whether publishing under selected upgrades an account currently on current.
func ShouldUpgradeAccount(current, selected entity.AccountType) bool {
	return current == entity.AccountTypeIndividual && selected.IsPaid()
}

// SubscriptionExpiresAt returns the end of a subscription window opened at now.
func SubscriptionExpiresAt(now time.Time) time.Time {
	return now.Add(SubscriptionWindow)
}

// QuotaApplies reports whether the free quota guards a submission under plan.
func QuotaApplies(plan entity.AccountType) bool {
	return !plan.IsPaid()
}

// QuotaWindowStart is the lower bound of the trailing quota window.
func QuotaWindowStart(now time.Time) time.Time {
	return now.Add(-QuotaWindow)
}

// QuotaExceeded reports whether existing listings in the window leave no room for another one.
func QuotaExceeded(existing int64) bool {
	return existing >= QuotaLimit
}

// Slugify derives an equipment type slug: trimmed, lower-cased, whitespace runs replaced by "-".
func Slugify(name string) string {
	lower := cases.Lower(language.French).String(strings.TrimSpace(name))

	return whitespace.ReplaceAllString(lower, "-")
}

// CanModerateTo reports whether target is a status an administrator may set.
// Any current status may be overwritten; pending is not a moderation target.
func CanModerateTo(target entity.ListingStatus) bool {
	return target == entity.ListingStatusApproved || target == entity.ListingStatusRejected
}

// Moderate overwrites the listing status. Last write wins.
func Moderate(listing *entity.Listing, target entity.ListingStatus, now time.Time) bool {
	if !CanModerateTo(target) {
		return false
	}
	listing.Status = target
	listing.UpdatedAt = now

	return true
}

// IsPubliclyVisible reports whether the listing may appear in public collections at now.
// Expired listings are hidden even before the sweep deactivates them.
func IsPubliclyVisible(listing *entity.Listing, now time.Time) bool {
	return listing.Status == entity.ListingStatusApproved &&
		listing.IsActive &&
		!listing.IsExpired(now)
}

// PriorityScore reconciles the plan chosen at publish time with the admin badge into the ranking score.
func PriorityScore(plan entity.AccountType, badge entity.Badge) int {
	return planWeights[plan] + badgeWeights[badge]
}

// IsValidYear checks a model year against [MinYear, current year + 1].
func IsValidYear(year int, now time.Time) bool {
	return year >= MinYear && year <= now.Year()+1
}

// ExpiringWithin reports whether an active listing expires in (now, now+window].
func ExpiringWithin(listing *entity.Listing, now time.Time, window time.Duration) bool {
	if listing.ExpiresAt == nil {
		return false
	}

	return listing.ExpiresAt.After(now) && !listing.ExpiresAt.After(now.Add(window))
}
