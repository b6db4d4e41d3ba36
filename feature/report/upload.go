package report

import (
	"bytes"
	"context"
	"fmt"

	"bom-checker/core/storage"

	"github.com/minio/minio-go/v7"
)

var contentTypes = map[Format]string{
	FormatText:  "text/plain",
	FormatTable: "text/plain",
	FormatJSON:  "application/json",
	FormatYAML:  "application/yaml",
}

// Upload stores a rendered report at an s3://bucket/key location.
// A non-empty runID is attached as object metadata.
func Upload(ctx context.Context, client storage.Client, location string, format Format, runID string, data []byte) error {
	bucket, key, err := storage.ParseLocation(location)
	if err != nil {
		return err
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", bucket)
	}

	opts := minio.PutObjectOptions{ContentType: contentTypes[format]}
	if runID != "" {
		opts.UserMetadata = map[string]string{"run-id": runID}
	}

	_, err = client.PutObject(ctx, bucket, key, bytes.NewReader(data), int64(len(data)), opts)
	if err != nil {
		return fmt.Errorf("failed to upload report: %w", err)
	}
	return nil
}
