package service

// QRCodeService renders QR codes linking to venue pages, used for printable
// posters handed to venue owners.
type QRCodeService interface {
	// GenerateVenueQR returns a PNG QR code pointing at the venue page.
	GenerateVenueQR(slug string) ([]byte, error)
}
