package qrcode

import (
	"net/url"
	"strings"

	domainerrors "moodmap/internal/domain/errors"
	"moodmap/internal/domain/service"
	"moodmap/internal/errors"

	"github.com/skip2/go-qrcode"
)

const placeLinkBase = "https://www.google.com/maps/place/?q=place_id:"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(errorCorrectionLevel),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// PlaceLink is the map URL that opens placeID
func (s *qrcodeService) PlaceLink(placeID string) string {
	return placeLinkBase + url.QueryEscape(placeID)
}

// GeneratePlaceQR renders PlaceLink(placeID) as a PNG
func (s *qrcodeService) GeneratePlaceQR(placeID string) ([]byte, error) {
	if strings.TrimSpace(placeID) == "" {
		return nil, domainerrors.ErrMissingPlaceID
	}

	qrCode, err := qrcode.New(s.PlaceLink(placeID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
