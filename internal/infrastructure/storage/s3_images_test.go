package storage

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vendas-dashboard/internal/domain"
	"github.com/jhoicas/vendas-dashboard/internal/domain/repository"
)

// recordingTransport responde 200 a todo PUT y guarda la última petición.
type recordingTransport struct {
	mu          sync.Mutex
	method      string
	path        string
	contentType string
	status      int
}

func (rt *recordingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.method = req.Method
	rt.path = req.URL.Path
	rt.contentType = req.Header.Get("Content-Type")
	if req.Body != nil {
		_, _ = io.Copy(io.Discard, req.Body)
	}
	status := rt.status
	if status == 0 {
		status = http.StatusOK
	}
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader(nil)),
		Header:     http.Header{"ETag": {"\"etag\""}},
		Request:    req,
	}, nil
}

func newTestImages(t *testing.T, rt *recordingTransport) *S3Images {
	t.Helper()
	s, err := New(context.Background(), Config{
		Bucket:          "produtos",
		Region:          "us-east-1",
		Endpoint:        "https://abc.supabase.co/storage/v1/s3",
		AccessKeyID:     "AKIA",
		SecretAccessKey: "SECRET",
		PublicBaseURL:   "https://abc.supabase.co/",
		HTTPClient:      &http.Client{Transport: rt},
	}, zerolog.Nop())
	require.NoError(t, err)
	return s
}

func TestObjectKeyYURLPublica(t *testing.T) {
	assert.Equal(t, "products/abc.jpg", objectKey("Foto Frente.JPG", "abc"))
	assert.Equal(t, "products/abc", objectKey("sin-extension", "abc"))
	assert.Equal(t,
		"https://abc.supabase.co/storage/v1/object/public/produtos/products/abc.png",
		publicObjectURL("https://abc.supabase.co", "produtos", "products/abc.png"))
}

func TestUpload_PutPathStyle(t *testing.T) {
	rt := &recordingTransport{}
	s := newTestImages(t, rt)

	url, err := s.Upload(context.Background(), repository.ImageUpload{
		Name: "telha.png", Body: strings.NewReader("\x89PNG"),
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "https://abc.supabase.co/storage/v1/object/public/produtos/products/"))
	assert.True(t, strings.HasSuffix(url, ".png"))
	assert.Equal(t, http.MethodPut, rt.method)
	assert.True(t, strings.HasPrefix(rt.path, "/storage/v1/s3/produtos/products/"), rt.path)
	assert.Equal(t, "image/png", rt.contentType)
}

func TestUpload_Rechazos(t *testing.T) {
	s := newTestImages(t, &recordingTransport{})

	_, err := s.Upload(context.Background(), repository.ImageUpload{Name: "a.png", Body: strings.NewReader("")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = s.Upload(context.Background(), repository.ImageUpload{Name: "a.txt", Body: strings.NewReader("x")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = s.Upload(context.Background(), repository.ImageUpload{Name: "a.png"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpload_ErrorDelServidor(t *testing.T) {
	s := newTestImages(t, &recordingTransport{status: http.StatusForbidden})
	_, err := s.Upload(context.Background(), repository.ImageUpload{
		Name: "a.jpg", ContentType: "image/jpeg", Body: strings.NewReader("x"),
	})
	assert.Error(t, err)
}
