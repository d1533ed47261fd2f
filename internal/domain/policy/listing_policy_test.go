package policy

import (
	"testing"
	"time"

	"enginex/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func TestExpiresAt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		plan entity.AccountType
		days int
	}{
		{name: "individual", plan: entity.AccountTypeIndividual, days: 15},
		{name: "pro", plan: entity.AccountTypePro, days: 30},
		{name: "premium", plan: entity.AccountTypePremium, days: 90},
		{name: "unknown falls back to free", plan: entity.AccountType("gold"), days: 15},
		{name: "empty falls back to free", plan: entity.AccountType(""), days: 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, now.AddDate(0, 0, tt.days), ExpiresAt(tt.plan, now))
		})
	}
}

func TestInitialStatusIsPending(t *testing.T) {
	t.Parallel()

	assert.Equal(t, entity.ListingStatusPending, InitialStatus())
}

func TestShouldUpgradeAccount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		current  entity.AccountType
		selected entity.AccountType
		want     bool
	}{
		{entity.AccountTypeIndividual, entity.AccountTypeIndividual, false},
		{entity.AccountTypeIndividual, entity.AccountTypePro, true},
		{entity.AccountTypeIndividual, entity.AccountTypePremium, true},
		{entity.AccountTypePro, entity.AccountTypePremium, false},
		{entity.AccountTypePremium, entity.AccountTypePro, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ShouldUpgradeAccount(tt.current, tt.selected), "%s -> %s", tt.current, tt.selected)
	}
}

func TestQuota(t *testing.T) {
	t.Parallel()

	assert.True(t, QuotaApplies(entity.AccountTypeIndividual))
	assert.False(t, QuotaApplies(entity.AccountTypePro))
	assert.False(t, QuotaApplies(entity.AccountTypePremium))

	assert.False(t, QuotaExceeded(0))
	assert.False(t, QuotaExceeded(1))
	assert.True(t, QuotaExceeded(2))
	assert.True(t, QuotaExceeded(5))

	assert.Equal(t, now.AddDate(0, 0, -30), QuotaWindowStart(now))
}

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "single word", in: "Tracteur", want: "tracteur"},
		{name: "spaces", in: "Mini Pelle Hydraulique", want: "mini-pelle-hydraulique"},
		{name: "whitespace runs", in: "  Chargeuse \t sur   pneus ", want: "chargeuse-sur-pneus"},
		{name: "accents kept", in: "Épandeur Agricole", want: "épandeur-agricole"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestModerate_LastWriteWins(t *testing.T) {
	t.Parallel()

	listing := &entity.Listing{Status: entity.ListingStatusPending}

	require.True(t, Moderate(listing, entity.ListingStatusApproved, now))
	assert.Equal(t, entity.ListingStatusApproved, listing.Status)

	require.True(t, Moderate(listing, entity.ListingStatusRejected, now.Add(time.Second)))
	assert.Equal(t, entity.ListingStatusRejected, listing.Status)

	require.True(t, Moderate(listing, entity.ListingStatusApproved, now.Add(2*time.Second)))
	assert.Equal(t, entity.ListingStatusApproved, listing.Status)

	// Setting the same status twice is a no-op overwrite.
	require.True(t, Moderate(listing, entity.ListingStatusApproved, now.Add(3*time.Second)))
	assert.Equal(t, entity.ListingStatusApproved, listing.Status)
}

func TestModerate_RejectsNonModerationTargets(t *testing.T) {
	t.Parallel()

	listing := &entity.Listing{Status: entity.ListingStatusApproved}

	assert.False(t, Moderate(listing, entity.ListingStatusPending, now))
	assert.False(t, Moderate(listing, entity.ListingStatus("archived"), now))
	assert.Equal(t, entity.ListingStatusApproved, listing.Status)
}

func TestIsPubliclyVisible(t *testing.T) {
	t.Parallel()

	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	tests := []struct {
		name    string
		listing entity.Listing
		want    bool
	}{
		{name: "approved active no expiry", listing: entity.Listing{Status: entity.ListingStatusApproved, IsActive: true}, want: true},
		{name: "approved active future expiry", listing: entity.Listing{Status: entity.ListingStatusApproved, IsActive: true, ExpiresAt: &future}, want: true},
		{name: "approved active expired", listing: entity.Listing{Status: entity.ListingStatusApproved, IsActive: true, ExpiresAt: &past}, want: false},
		{name: "approved inactive", listing: entity.Listing{Status: entity.ListingStatusApproved, IsActive: false}, want: false},
		{name: "pending active", listing: entity.Listing{Status: entity.ListingStatusPending, IsActive: true}, want: false},
		{name: "rejected active", listing: entity.Listing{Status: entity.ListingStatusRejected, IsActive: true}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, IsPubliclyVisible(&tt.listing, now))
		})
	}
}

func TestPriorityScore(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, PriorityScore(entity.AccountTypeIndividual, entity.BadgeNone))
	assert.Greater(t, PriorityScore(entity.AccountTypePro, entity.BadgeNone), PriorityScore(entity.AccountTypeIndividual, entity.BadgeNone))
	assert.Greater(t, PriorityScore(entity.AccountTypePremium, entity.BadgeNone), PriorityScore(entity.AccountTypePro, entity.BadgeNone))
	assert.Greater(t, PriorityScore(entity.AccountTypeIndividual, entity.BadgeExclusive), PriorityScore(entity.AccountTypeIndividual, entity.BadgeTop))
	assert.Greater(t, PriorityScore(entity.AccountTypeIndividual, entity.BadgeTop), PriorityScore(entity.AccountTypeIndividual, entity.BadgeUrgent))
	assert.Greater(t, PriorityScore(entity.AccountTypeIndividual, entity.BadgeTop), PriorityScore(entity.AccountTypePremium, entity.BadgeNone))
}

func TestIsValidYear(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidYear(1950, now))
	assert.True(t, IsValidYear(2027, now))
	assert.False(t, IsValidYear(1949, now))
	assert.False(t, IsValidYear(2028, now))
}

func TestExpiringWithin(t *testing.T) {
	t.Parallel()

	window := 72 * time.Hour
	soon := now.Add(24 * time.Hour)
	later := now.Add(10 * 24 * time.Hour)
	past := now.Add(-time.Minute)

	assert.True(t, ExpiringWithin(&entity.Listing{ExpiresAt: &soon}, now, window))
	assert.False(t, ExpiringWithin(&entity.Listing{ExpiresAt: &later}, now, window))
	assert.False(t, ExpiringWithin(&entity.Listing{ExpiresAt: &past}, now, window))
	assert.False(t, ExpiringWithin(&entity.Listing{}, now, window))
}
