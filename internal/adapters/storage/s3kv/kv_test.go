package s3kv

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petcare-registry/internal/ports/kv"
)

// fakeS3 entiende lo mínimo de la API path-style: GET/PUT/DELETE /{bucket}/{key...}.
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string][]byte
	chunked bool // responde GET sin Content-Length
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	path := r.URL.Path
	switch r.Method {
	case http.MethodPut:
		b, _ := io.ReadAll(r.Body)
		f.objects[path] = b
		w.WriteHeader(http.StatusOK)
	case http.MethodGet:
		b, ok := f.objects[path]
		if !ok {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?>`+
				`<Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message></Error>`)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if f.chunked {
			w.WriteHeader(http.StatusOK)
			w.(http.Flusher).Flush()
		}
		_, _ = w.Write(b)
	case http.MethodDelete:
		delete(f.objects, path)
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (f *fakeS3) has(path string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.objects[path]
	return ok
}

func newTestStore(t *testing.T) (*KVStore, *fakeS3) {
	t.Helper()

	fake := &fakeS3{objects: map[string][]byte{}}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	client := s3.New(s3.Options{
		Region:                     "us-east-1",
		BaseEndpoint:               aws.String(srv.URL),
		UsePathStyle:               true,
		Credentials:                aws.AnonymousCredentials{},
		RequestChecksumCalculation: aws.RequestChecksumCalculationWhenRequired,
		ResponseChecksumValidation: aws.ResponseChecksumValidationWhenRequired,
	})
	return NewWithClient(client, "pets", "/petcare/"), fake
}

func TestKVStore_SetGetDelete(t *testing.T) {
	s, fake := newTestStore(t)
	ctx := context.Background()

	_, err := s.Get(ctx, "dev-1", "petcare_pets")
	require.ErrorIs(t, err, kv.ErrNotFound)

	require.NoError(t, s.Set(ctx, "dev-1", "petcare_pets", []byte(`[]`)))
	assert.True(t, fake.has("/pets/petcare/dev-1/petcare_pets"))

	got, err := s.Get(ctx, "dev-1", "petcare_pets")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))

	require.NoError(t, s.Delete(ctx, "dev-1", "petcare_pets"))
	_, err = s.Get(ctx, "dev-1", "petcare_pets")
	assert.ErrorIs(t, err, kv.ErrNotFound)
}

func (f *fakeS3) put(path string, b []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[path] = b
}

func TestKVStore_GetRefusesOversizedObject(t *testing.T) {
	for _, chunked := range []bool{false, true} {
		s, fake := newTestStore(t)
		fake.chunked = chunked
		s.maxSize = 16
		ctx := context.Background()

		fake.put("/pets/petcare/dev-1/petcare_pets", []byte(`[{"id":"a","petName":"Bella"}]`))

		got, err := s.Get(ctx, "dev-1", "petcare_pets")
		require.ErrorIs(t, err, ErrObjectTooLarge, "chunked=%v", chunked)
		assert.Nil(t, got)

		// en el límite exacto se lee completo
		fake.put("/pets/petcare/dev-1/petcare_pets", []byte(strings.Repeat("x", 16)))
		got, err = s.Get(ctx, "dev-1", "petcare_pets")
		require.NoError(t, err, "chunked=%v", chunked)
		assert.Len(t, got, 16)
	}
}

func TestKVStore_SetRefusesOversizedValue(t *testing.T) {
	s, fake := newTestStore(t)
	s.maxSize = 4

	err := s.Set(context.Background(), "dev-1", "petcare_pets", []byte(`[{}, {}]`))
	require.ErrorIs(t, err, ErrObjectTooLarge)
	assert.False(t, fake.has("/pets/petcare/dev-1/petcare_pets"))
}

func TestKVStore_ObjectKey(t *testing.T) {
	s := NewWithClient(nil, "pets", "")
	assert.Equal(t, "dev-1/petcare_user", s.objectKey("dev-1", "petcare_user"))

	s = NewWithClient(nil, "pets", "tenant/a/")
	key := s.objectKey("dev/../x", "petcare_user")
	assert.True(t, strings.HasPrefix(key, "tenant/a/"))
	assert.NotContains(t, strings.TrimPrefix(key, "tenant/a/"), "/../")
}

func TestNew_RequiresBucket(t *testing.T) {
	_, err := New(context.Background(), Config{Region: "us-east-1"})
	assert.Error(t, err)
}
