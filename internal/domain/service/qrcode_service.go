package service

import "github.com/google/uuid"

// QRCodeService links printed material back to a listing page.
type QRCodeService interface {
	// GenerateListingQR renders a PNG QR code pointing at the public listing page.
	GenerateListingQR(listingID uuid.UUID) ([]byte, error)

	// ListingURL returns the public URL encoded in the listing QR code.
	ListingURL(listingID uuid.UUID) string

	// ParseListingQR rejects URLs outside the public listing base.
	ParseListingQR(qrData string) (uuid.UUID, error)
}
