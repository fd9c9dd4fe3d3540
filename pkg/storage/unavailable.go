package storage

import (
	"context"
	"errors"
	"io"
)

var ErrNotConfigured = errors.New("object storage is not configured")

// UnavailableStore stands in when no storage endpoint is configured. Reads
// still resolve to public URLs; writes and health checks fail.
type UnavailableStore struct {
	publicURL string
}

func NewUnavailableStore(publicURL string) *UnavailableStore {
	return &UnavailableStore{publicURL: publicURL}
}

func (s *UnavailableStore) Name() string {
	return "unavailable"
}

func (s *UnavailableStore) Put(ctx context.Context, obj Object, r io.Reader) error {
	return ErrNotConfigured
}

func (s *UnavailableStore) PublicURL(path string) string {
	return JoinURL(s.publicURL, path)
}

func (s *UnavailableStore) Ping(ctx context.Context) error {
	return ErrNotConfigured
}
