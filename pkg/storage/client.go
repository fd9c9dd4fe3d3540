package storage

import (
	"context"
	"io"
	"strconv"
	"strings"
	"time"
)

type Object struct {
	Path        string
	Size        int64
	ContentType string
}

type ObjectStore interface {
	// Put writes the object, replacing whatever was stored at the same path.
	Put(ctx context.Context, obj Object, r io.Reader) error
	PublicURL(path string) string
	Ping(ctx context.Context) error
	Name() string
}

// JoinURL appends an object path to a public base URL.
func JoinURL(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}

// VersionToken returns a cache-busting token for t. It changes on every call
// with a later time, whether or not the object changed.
func VersionToken(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}

// VersionedURL returns url with a cache-busting query parameter.
func VersionedURL(url, version string) string {
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + "v=" + version
}
