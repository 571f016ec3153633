package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
)

// FetchExport downloads a published export object. The caller owns the
// returned stream and must close it.
func FetchExport(ctx context.Context, client Client, bucket, objectName string) (io.ReadCloser, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %q: %w", bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %q does not exist", bucket)
	}

	body, err := client.GetObject(ctx, bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch export %q: %w", objectName, err)
	}
	return body, nil
}

// UploadExport publishes an export object to the bucket.
func UploadExport(ctx context.Context, client Client, bucket, objectName string, body io.Reader, size int64) error {
	_, err := client.PutObject(ctx, bucket, objectName, body, size, minio.PutObjectOptions{
		ContentType: "text/csv",
	})
	if err != nil {
		return fmt.Errorf("failed to upload export %q: %w", objectName, err)
	}
	return nil
}
