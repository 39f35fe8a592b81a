package external_services

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/mikiasgoitom/Vidora/internal/domain/contract"
)

// MinioMediaStorage stores media objects in an S3-compatible bucket and
// returns the public URL a video record will reference.
type MinioMediaStorage struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// NewMinioMediaStorage connects to the object store and ensures the bucket
// exists.
func NewMinioMediaStorage(endpoint, accessKey, secretKey, bucket, publicURL string, useSSL bool) (*MinioMediaStorage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", bucket, err)
		}
	}

	return &MinioMediaStorage{
		client:    client,
		bucket:    bucket,
		publicURL: publicURL,
	}, nil
}

// Upload stores the object and returns its durable URL.
func (s *MinioMediaStorage) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object %s: %w", objectName, err)
	}
	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, objectName), nil
}

// Ensure MinioMediaStorage implements the contract.IMediaStorage interface
var _ contract.IMediaStorage = (*MinioMediaStorage)(nil)
