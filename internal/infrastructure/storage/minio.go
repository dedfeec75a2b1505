package storage

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"clubs.backend/internal/config"
)

// MinioStore keeps logo objects in an object-store bucket. Objects are
// served by redirecting clients to the bucket's public URL.
type MinioStore struct {
	client    *minio.Client
	bucket    string
	prefix    string
	publicURL string
}

// NewMinioStore connects to the object store and ensures the bucket exists.
func NewMinioStore(ctx context.Context, cfg config.MinioConfig) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, err
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}

	return &MinioStore{
		client:    client,
		bucket:    cfg.Bucket,
		prefix:    cfg.LogoPrefix,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
	}, nil
}

func (s *MinioStore) objectName(fileID string, size int) string {
	return s.prefix + ObjectName(fileID, size)
}

// Put stores an object under the logo prefix.
func (s *MinioStore) Put(ctx context.Context, fileID string, size int, data []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, s.objectName(fileID, size),
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	return err
}

// Get returns the stored object's bytes. Redirect serving is preferred for
// this backend; Get exists so callers can still read objects back.
func (s *MinioStore) Get(ctx context.Context, fileID string, size int) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.objectName(fileID, size), minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		if resp := minio.ToErrorResponse(err); resp.Code == "NoSuchKey" {
			return nil, ErrObjectNotFound
		}
		return nil, err
	}
	return data, nil
}

// PublicURL builds the externally reachable URL for the object.
func (s *MinioStore) PublicURL(fileID string, size int) string {
	return s.publicURL + "/" + s.bucket + "/" + s.objectName(fileID, size)
}
