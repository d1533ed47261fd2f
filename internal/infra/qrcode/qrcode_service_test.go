package qrcode

import (
	"testing"

	"enginex/config"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "https://enginex.ma/listing"

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		in   string
		want qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"low", qrcode.Low},
		{"M", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
		{"", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.in))
		})
	}
}

func TestQRCodeService_GenerateListingQR(t *testing.T) {
	svc := NewQRCodeService(256, "M", testBaseURL)

	qrBytes, err := svc.GenerateListingQR(uuid.New())
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_ListingURL(t *testing.T) {
	svc := NewQRCodeService(0, "", testBaseURL+"/")
	id := uuid.MustParse("0f8fad5b-d9cb-469f-a165-70867728950e")

	assert.Equal(t, testBaseURL+"/0f8fad5b-d9cb-469f-a165-70867728950e", svc.ListingURL(id))
}

func TestQRCodeService_ParseListingQR(t *testing.T) {
	svc := NewQRCodeService(256, "M", testBaseURL)
	id := uuid.New()

	parsed, err := svc.ParseListingQR(svc.ListingURL(id))
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = svc.ParseListingQR("https://example.com/listing/" + id.String())
	assert.Error(t, err)

	_, err = svc.ParseListingQR(testBaseURL + "/not-a-uuid")
	assert.Error(t, err)
}

func TestNew_FallsBackToPublicBaseURL(t *testing.T) {
	cfg := &config.Config{}
	cfg.HTTP.PublicBaseURL = "https://enginex.ma"

	svc := New(cfg)

	assert.Equal(t, "https://enginex.ma/listing/"+uuid.Nil.String(), svc.ListingURL(uuid.Nil))
}
