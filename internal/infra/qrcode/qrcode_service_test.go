package qrcode

import (
	"testing"

	domainerrors "moodmap/internal/domain/errors"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoveryLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		level string
		want  qrcode.RecoveryLevel
	}{
		{"Low error correction", "L", qrcode.Low},
		{"Medium error correction", "M", qrcode.Medium},
		{"High error correction", "Q", qrcode.High},
		{"Highest error correction", "h", qrcode.Highest},
		{"Default error correction", "invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, recoveryLevel(tt.level))
		})
	}
}

func TestQRCodeService_PlaceLink(t *testing.T) {
	t.Parallel()

	service := NewQRCodeService(256, "M")

	assert.Equal(t,
		"https://www.google.com/maps/place/?q=place_id:ChIJN1t_tDeuEmsRUsoyG83frY4",
		service.PlaceLink("ChIJN1t_tDeuEmsRUsoyG83frY4"),
	)
	assert.Equal(t,
		"https://www.google.com/maps/place/?q=place_id:a%26b",
		service.PlaceLink("a&b"),
	)
}

func TestQRCodeService_GeneratePlaceQR(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			service := NewQRCodeService(tt.size, "M")

			qrBytes, err := service.GeneratePlaceQR("ChIJN1t_tDeuEmsRUsoyG83frY4")
			require.NoError(t, err)
			require.Greater(t, len(qrBytes), 4)

			// PNG magic number
			assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
		})
	}
}

func TestQRCodeService_GeneratePlaceQR_EmptyID(t *testing.T) {
	t.Parallel()

	_, err := NewQRCodeService(256, "M").GeneratePlaceQR(" ")
	assert.ErrorIs(t, err, domainerrors.ErrMissingPlaceID)
}
