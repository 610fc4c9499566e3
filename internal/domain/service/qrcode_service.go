package service

// QRCodeService renders arbitrary text content as a QR code image.
type QRCodeService interface {
	// RenderPNG encodes content into a PNG image.
	RenderPNG(content string) ([]byte, error)

	// RenderDataURI encodes content into a base64 PNG data URI suitable for
	// direct embedding in a JSON response.
	RenderDataURI(content string) (string, error)
}
