package convert

import (
	"bytes"
	"context"
	"fmt"

	"genie-graph/core/graph"
	"genie-graph/core/storage"

	"github.com/minio/minio-go/v7"
)

// UploadSnapshot encodes the snapshot and writes it to object storage,
// creating the bucket when it does not exist yet. It returns the number
// of bytes written.
func UploadSnapshot(ctx context.Context, client storage.Client, bucket, object string, snap *graph.Snapshot) (int64, error) {
	data, err := snap.Encode()
	if err != nil {
		return 0, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return 0, fmt.Errorf("failed to check bucket %s: %w", bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return 0, fmt.Errorf("failed to create bucket %s: %w", bucket, err)
		}
	}

	_, err = client.PutObject(
		ctx,
		bucket,
		object,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to upload snapshot %s: %w", object, err)
	}

	return int64(len(data)), nil
}
