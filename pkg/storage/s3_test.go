package storage

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

type recordedPut struct {
	path        string
	contentType string
	body        []byte
}

func newTestS3Server(t *testing.T, status int, puts *[]recordedPut) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			body, _ := io.ReadAll(r.Body)
			*puts = append(*puts, recordedPut{
				path:        r.URL.Path,
				contentType: r.Header.Get("Content-Type"),
				body:        body,
			})
			if status != http.StatusOK {
				w.WriteHeader(status)
				return
			}
			w.Header().Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
			w.WriteHeader(http.StatusOK)
		case http.MethodHead:
			w.WriteHeader(status)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
}

func newTestS3Store(t *testing.T, srv *httptest.Server) *S3Store {
	t.Helper()
	store, err := NewS3Store(S3Config{
		Endpoint:  strings.TrimPrefix(srv.URL, "http://"),
		AccessKey: "test-access",
		SecretKey: "test-secret",
		Bucket:    "site",
		Region:    "us-east-1",
		UseSSL:    false,
	})
	if err != nil {
		t.Fatalf("NewS3Store: %v", err)
	}
	return store
}

func TestS3StorePut(t *testing.T) {
	var puts []recordedPut
	srv := newTestS3Server(t, http.StatusOK, &puts)
	defer srv.Close()

	store := newTestS3Store(t, srv)
	data := []byte("%PDF-1.4 test")

	err := store.Put(context.Background(), Object{
		Path:        "documents/student-handbook.pdf",
		Size:        int64(len(data)),
		ContentType: "application/pdf",
	}, bytes.NewReader(data))

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(puts))
	assert.Equal(t, "/site/documents/student-handbook.pdf", puts[0].path)
	assert.Equal(t, "application/pdf", puts[0].contentType)
	// plain-http uploads are aws-chunked, so the payload is embedded
	assert.Equal(t, true, bytes.Contains(puts[0].body, data))
}

func TestS3StorePut_Error(t *testing.T) {
	var puts []recordedPut
	srv := newTestS3Server(t, http.StatusForbidden, &puts)
	defer srv.Close()

	store := newTestS3Store(t, srv)
	err := store.Put(context.Background(), Object{Path: "documents/src-constitution.pdf", Size: 3}, bytes.NewReader([]byte("pdf")))

	assert.NotEqual(t, nil, err)
}

func TestS3StorePublicURL(t *testing.T) {
	var puts []recordedPut
	srv := newTestS3Server(t, http.StatusOK, &puts)
	defer srv.Close()

	store := newTestS3Store(t, srv)
	assert.Equal(t, srv.URL+"/site/documents/a.pdf", store.PublicURL("documents/a.pdf"))

	custom, err := NewS3Store(S3Config{Endpoint: "s3.example.com", Bucket: "site", UseSSL: true, PublicURL: "https://cdn.example.com/"})
	assert.Equal(t, nil, err)
	assert.Equal(t, "https://cdn.example.com/documents/a.pdf", custom.PublicURL("documents/a.pdf"))
}

func TestS3StorePing(t *testing.T) {
	var puts []recordedPut
	srv := newTestS3Server(t, http.StatusOK, &puts)
	defer srv.Close()

	assert.Equal(t, nil, newTestS3Store(t, srv).Ping(context.Background()))

	missing := newTestS3Server(t, http.StatusNotFound, &puts)
	defer missing.Close()

	assert.NotEqual(t, nil, newTestS3Store(t, missing).Ping(context.Background()))
}
