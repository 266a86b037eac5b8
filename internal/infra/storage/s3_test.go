package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch r.Method {
	case http.MethodPut:
		body, _ := io.ReadAll(r.Body)
		f.objects[r.URL.Path] = body
		f.types[r.URL.Path] = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
	case http.MethodDelete:
		delete(f.objects, r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func TestS3Store_PutAndDelete(t *testing.T) {
	fake := &fakeS3{objects: map[string][]byte{}, types: map[string]string{}}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	store := NewS3(S3Config{
		Bucket:        "media",
		Region:        "us-east-1",
		Endpoint:      srv.URL,
		AccessKey:     "key",
		SecretKey:     "secret",
		PublicBaseURL: "https://cdn.example.com/",
	})

	url, err := store.Put(context.Background(), "barberias/1/logo/a.webp", "image/webp", []byte("RIFF"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/barberias/1/logo/a.webp", url)

	fake.mu.Lock()
	assert.Contains(t, string(fake.objects["/media/barberias/1/logo/a.webp"]), "RIFF")
	assert.Equal(t, "image/webp", fake.types["/media/barberias/1/logo/a.webp"])
	fake.mu.Unlock()

	assert.Equal(t, "barberias/1/logo/a.webp", store.KeyFromURL(url))
	assert.Equal(t, "", store.KeyFromURL("https://elsewhere.example.com/x.webp"))

	require.NoError(t, store.Delete(context.Background(), "barberias/1/logo/a.webp"))
	fake.mu.Lock()
	assert.Empty(t, fake.objects)
	fake.mu.Unlock()
}

func TestKeys(t *testing.T) {
	assert.True(t, strings.HasPrefix(ServiceImageKey(1, 5), "barberias/1/servicios/5/"))
	assert.True(t, strings.HasSuffix(LogoKey(1), ".webp"))
}
