// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// AccountType is the subscription plan of an account, also selected per listing at publish time.
type AccountType string

const (
	// AccountTypeIndividual is the free plan.
	AccountTypeIndividual AccountType = "individual"
	// AccountTypePro is the professional plan.
	AccountTypePro AccountType = "pro"
	// AccountTypePremium is the highest plan.
	AccountTypePremium AccountType = "premium"
)

// ParseAccountType maps user input to a plan. Empty input means the free plan.
func ParseAccountType(s string) AccountType {
	plan := AccountType(strings.ToLower(strings.TrimSpace(s)))
	if plan == "" {
		return AccountTypeIndividual
	}

	return plan
}

// IsValid checks if the AccountType is a known plan.
func (a AccountType) IsValid() bool {
	switch a {
	case AccountTypeIndividual, AccountTypePro, AccountTypePremium:
		return true
	default:
		return false
	}
}

// IsPaid reports whether the plan is a paid tier.
func (a AccountType) IsPaid() bool {
	return a == AccountTypePro || a == AccountTypePremium
}

func (a AccountType) String() string {
	return string(a)
}

// AccountTypeLabel is the seller kind displayed next to a profile.
type AccountTypeLabel string

const (
	// LabelIndividual marks a private seller.
	LabelIndividual AccountTypeLabel = "Particulier"
	// LabelProfessional marks a professional seller.
	LabelProfessional AccountTypeLabel = "Professionnel"
)

// IsValid checks if the label is one of the known values.
func (l AccountTypeLabel) IsValid() bool {
	return l == LabelIndividual || l == LabelProfessional
}

// Profile is a registered account.
type Profile struct {
	ID                    uuid.UUID        // The Global Unique Identifier (GUID) for the account.
	FullName              string           // Display name.
	Email                 string           // Login identifier, unique.
	Phone                 string           // Optional contact phone.
	AccountType           AccountType      // Current plan.
	AccountTypeLabel      AccountTypeLabel // Particulier or Professionnel.
	SubscriptionExpiresAt *time.Time       // End of the paid window, nil on the free plan.
	IsAdmin               bool             // Grants moderation rights.
	ProfileImageURL       string           // Optional avatar URL.
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// Roles derives the token roles of the profile.
func (p *Profile) Roles() Roles {
	roles := Roles{RoleUser}
	if p.IsAdmin {
		roles = append(roles, RoleAdmin)
	}

	return roles
}

// HasActiveSubscription reports whether a paid window is open at now.
func (p *Profile) HasActiveSubscription(now time.Time) bool {
	return p.AccountType.IsPaid() && p.SubscriptionExpiresAt != nil && p.SubscriptionExpiresAt.After(now)
}

// SellerInfo is the public view of a profile shown on a listing page.
type SellerInfo struct {
	ID               uuid.UUID        `json:"id"`
	FullName         string           `json:"full_name"`
	AccountType      AccountType      `json:"account_type"`
	AccountTypeLabel AccountTypeLabel `json:"account_type_label"`
	ProfileImageURL  string           `json:"profile_image_url,omitempty"`
	MemberSince      time.Time        `json:"member_since"`
}

// PublicInfo strips private fields from the profile.
func (p *Profile) PublicInfo() *SellerInfo {
	return &SellerInfo{
		ID:               p.ID,
		FullName:         p.FullName,
		AccountType:      p.AccountType,
		AccountTypeLabel: p.AccountTypeLabel,
		ProfileImageURL:  p.ProfileImageURL,
		MemberSince:      p.CreatedAt,
	}
}
