// Package qrcode renders share codes for listings.
package qrcode

import (
	"net/url"
	"path"
	"strings"

	"enginex/config"
	"enginex/internal/domain/service"
	"enginex/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// New builds the service from the qrcode section.
func New(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "", cfg.HTTP.PublicBaseURL+"/listing")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(level) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// ListingURL returns the public page of a listing.
func (s *qrcodeService) ListingURL(listingID uuid.UUID) string {
	return s.baseURL + "/" + listingID.String()
}

// GenerateListingQR renders the listing URL as a PNG.
func (s *qrcodeService) GenerateListingQR(listingID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.ListingURL(listingID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseListingQR accepts a scanned listing URL and returns the listing ID in its last path segment.
func (s *qrcodeService) ParseListingQR(qrData string) (uuid.UUID, error) {
	parsed, err := url.Parse(strings.TrimSpace(qrData))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse QR code URL")
	}
	if !strings.HasPrefix(strings.TrimRight(parsed.String(), "/"), s.baseURL+"/") {
		return uuid.Nil, errors.Errorf("QR code does not point at a listing: %s", qrData)
	}

	listingID, err := uuid.Parse(path.Base(parsed.Path))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse listing ID")
	}

	return listingID, nil
}
