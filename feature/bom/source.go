package bom

import (
	"context"
	"fmt"
	"io"
	"os"

	"bom-checker/core/storage"

	"github.com/minio/minio-go/v7"
)

// Open opens a BOM from a local path or an s3://bucket/key location.
// The storage client is only used for object locations and may be nil otherwise.
func Open(ctx context.Context, client storage.Client, location string) (io.ReadCloser, error) {
	if !storage.IsLocation(location) {
		f, err := os.Open(location)
		if err != nil {
			return nil, fmt.Errorf("failed to open BOM file: %w", err)
		}
		return f, nil
	}

	if client == nil {
		return nil, fmt.Errorf("storage client required for %s", location)
	}

	bucket, key, err := storage.ParseLocation(location)
	if err != nil {
		return nil, err
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	reader, err := client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get BOM object: %w", err)
	}
	return reader, nil
}
