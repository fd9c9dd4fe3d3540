package storage

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestJoinURL(t *testing.T) {
	tests := []struct {
		name string
		base string
		path string
		want string
	}{
		{name: "plain", base: "https://cdn.example.com/docs", path: "documents/a.pdf", want: "https://cdn.example.com/docs/documents/a.pdf"},
		{name: "trailing slash", base: "https://cdn.example.com/docs/", path: "documents/a.pdf", want: "https://cdn.example.com/docs/documents/a.pdf"},
		{name: "leading slash", base: "https://cdn.example.com", path: "/a.pdf", want: "https://cdn.example.com/a.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JoinURL(tt.base, tt.path))
		})
	}
}

func TestVersionedURL(t *testing.T) {
	ts := time.UnixMilli(1760000000123)
	v := VersionToken(ts)

	assert.Equal(t, "1760000000123", v)
	assert.Equal(t, "https://x/a.pdf?v=1760000000123", VersionedURL("https://x/a.pdf", v))
	assert.Equal(t, "https://x/a.pdf?dl=1&v=1760000000123", VersionedURL("https://x/a.pdf?dl=1", v))
}

func TestUnavailableStore(t *testing.T) {
	s := NewUnavailableStore("https://cdn.example.com")

	assert.Equal(t, ErrNotConfigured, s.Put(context.Background(), Object{Path: "a.pdf"}, nil))
	assert.Equal(t, ErrNotConfigured, s.Ping(context.Background()))
	assert.Equal(t, "https://cdn.example.com/a.pdf", s.PublicURL("a.pdf"))
}
