// internal/services/image_service.go
package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/ciderlog/cider-backend/internal/config"
)

// ImageService resolves the image bytes stored with a new product. An
// uploaded file takes precedence over an image_url; at most one source
// is consulted.
type ImageService struct {
	client  *http.Client
	maxSize int64
}

func NewImageService(cfg config.ImageConfig) *ImageService {
	return &ImageService{
		client: &http.Client{
			Timeout: time.Duration(cfg.FetchTimeout) * time.Second,
		},
		maxSize: cfg.MaxUploadSize,
	}
}

// Resolve returns the uploaded file's bytes when present, otherwise
// downloads imageURL. Both absent yields (nil, nil).
func (s *ImageService) Resolve(file *multipart.FileHeader, imageURL string) ([]byte, error) {
	if file != nil {
		return s.readUpload(file)
	}
	if imageURL != "" {
		return s.fetchURL(imageURL)
	}
	return nil, nil
}

func (s *ImageService) readUpload(header *multipart.FileHeader) ([]byte, error) {
	if s.maxSize > 0 && header.Size > s.maxSize {
		return nil, NewValidationError(fmt.Sprintf("Image exceeds maximum upload size of %d bytes", s.maxSize))
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded image: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded image: %w", err)
	}

	return data, nil
}

func (s *ImageService) fetchURL(url string) ([]byte, error) {
	resp, err := s.client.Get(url)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}

	return data, nil
}
