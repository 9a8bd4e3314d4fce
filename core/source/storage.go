package source

import (
	"context"
	"fmt"
	"io"

	"genie-graph/core/genie"
	"genie-graph/core/storage"

	"github.com/minio/minio-go/v7"
)

// StorageSource reads a dump object from a storage bucket.
type StorageSource struct {
	Client storage.Client
	Bucket string
	Object string
}

// Name implements DumpSource.
func (s *StorageSource) Name() string {
	return fmt.Sprintf("storage:%s/%s", s.Bucket, s.Object)
}

// Load implements DumpSource.
func (s *StorageSource) Load(ctx context.Context) (*genie.Dump, error) {
	exists, err := s.Client.BucketExists(ctx, s.Bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s not found", s.Bucket)
	}

	reader, err := s.Client.GetObject(ctx, s.Bucket, s.Object, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.Object, err)
	}

	return decodeDump(data)
}
