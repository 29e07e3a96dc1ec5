package service

// QRCodeService renders share codes for places.
type QRCodeService interface {
	// GeneratePlaceQR encodes the canonical map link for placeID as a PNG.
	GeneratePlaceQR(placeID string) ([]byte, error)

	// PlaceLink is the URL a place QR code encodes.
	PlaceLink(placeID string) string
}
