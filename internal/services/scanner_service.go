// internal/services/scanner_service.go
package services

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/oned"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// ScannerService decodes machine-readable codes from uploaded images.
// Stateless; one decode attempt per request, no retries.
type ScannerService struct {
	readers []gozxing.Reader
	hints   map[gozxing.DecodeHintType]interface{}
}

func NewScannerService() *ScannerService {
	return &ScannerService{
		// Retail barcodes first (EAN/UPC/Code128 etc), QR as fallback.
		readers: []gozxing.Reader{
			oned.NewMultiFormatOneDReader(nil),
			qrcode.NewQRCodeReader(),
		},
		hints: map[gozxing.DecodeHintType]interface{}{
			gozxing.DecodeHintType_TRY_HARDER: true,
		},
	}
}

// Scan returns the first decoded barcode value, or ErrNoBarcodeDetected
// when the image holds none.
func (s *ScannerService) Scan(data []byte) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", NewValidationError(fmt.Sprintf("Unsupported image format: %v", err))
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("failed to binarize image: %w", err)
	}

	for _, reader := range s.readers {
		if result, err := reader.Decode(bmp, s.hints); err == nil {
			return result.GetText(), nil
		}
	}

	return "", ErrNoBarcodeDetected
}
