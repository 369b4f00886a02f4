// internal/services/errors.go
package services

import (
	"errors"
	"fmt"
)

// Sentinel errors mapped to HTTP status codes at the handler boundary.
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrBarcodeNotFound   = errors.New("barcode not found")
	ErrBarcodeExists     = errors.New("barcode already exists")
	ErrNoBarcodeDetected = errors.New("no barcode detected")
)

// ValidationError rejects a request before anything touches the store.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// FetchError wraps a failed image_url download.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch image from %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
