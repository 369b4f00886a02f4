// internal/services/image_service_test.go
package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ciderlog/cider-backend/internal/config"
)

func newImageService() *ImageService {
	return NewImageService(config.ImageConfig{FetchTimeout: 5, MaxUploadSize: 10 << 20})
}

func TestResolveWithoutSources(t *testing.T) {
	data, err := newImageService().Resolve(nil, "")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestResolveFetchesURL(t *testing.T) {
	payload := []byte("fake-image-bytes")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer srv.Close()

	data, err := newImageService().Resolve(nil, srv.URL)
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestResolveFetchNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newImageService().Resolve(nil, srv.URL)
	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, srv.URL, fetchErr.URL)
}

func TestResolveFetchConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens anymore

	_, err := newImageService().Resolve(nil, srv.URL)
	var fetchErr *FetchError
	assert.ErrorAs(t, err, &fetchErr)
}
