package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type S3Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
	PublicURL string
}

// S3Store talks to any S3-compatible object storage.
type S3Store struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

func NewS3Store(cfg S3Config) (*S3Store, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("s3 client: %w", err)
	}

	publicURL := cfg.PublicURL
	if publicURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket)
	}

	return &S3Store{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: publicURL,
	}, nil
}

func (s *S3Store) Name() string {
	return "S3"
}

func (s *S3Store) Put(ctx context.Context, obj Object, r io.Reader) error {
	_, err := s.client.PutObject(ctx, s.bucket, obj.Path, r, obj.Size, minio.PutObjectOptions{
		ContentType:  obj.ContentType,
		CacheControl: "no-cache",
	})
	if err != nil {
		return fmt.Errorf("s3 put %s: %w", obj.Path, err)
	}
	return nil
}

func (s *S3Store) PublicURL(path string) string {
	return JoinURL(s.publicURL, path)
}

func (s *S3Store) Ping(ctx context.Context) error {
	ok, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("s3 ping: %w", err)
	}
	if !ok {
		return fmt.Errorf("s3 ping: bucket %q does not exist", s.bucket)
	}
	return nil
}
