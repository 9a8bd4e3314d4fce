package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"genie-graph/core/genie"
	"genie-graph/core/storage"

	"gorm.io/gorm"
)

// DumpSource loads a complete genie dump from one backend.
type DumpSource interface {
	// Name identifies the source in logs and run reports.
	Name() string
	// Load reads the full dump and reindexes it.
	Load(ctx context.Context) (*genie.Dump, error)
}

// New builds the DumpSource selected by cfg. The storage client and the
// database handle may be nil as long as their kind is not the selected one.
func New(cfg Config, client storage.Client, bucket string, db *gorm.DB) (DumpSource, error) {
	switch cfg.Kind {
	case KindFile:
		return &FileSource{Path: cfg.Path}, nil
	case KindStorage:
		if client == nil {
			return nil, errors.New("storage source requires a storage client")
		}
		return &StorageSource{Client: client, Bucket: bucket, Object: cfg.Object}, nil
	case KindDatabase:
		if db == nil {
			return nil, errors.New("database source requires a database connection")
		}
		return &DatabaseSource{DB: db}, nil
	}
	return nil, fmt.Errorf("unknown source kind %q", cfg.Kind)
}

// FileSource reads a dump from a JSON file on disk.
type FileSource struct {
	Path string
}

// Name implements DumpSource.
func (s *FileSource) Name() string {
	return "file:" + s.Path
}

// Load implements DumpSource.
func (s *FileSource) Load(ctx context.Context) (*genie.Dump, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dump file: %w", err)
	}
	return decodeDump(data)
}

// decodeDump parses a JSON dump and prepares it for the pipeline.
func decodeDump(data []byte) (*genie.Dump, error) {
	var dump genie.Dump
	if err := json.Unmarshal(data, &dump); err != nil {
		return nil, fmt.Errorf("failed to parse dump: %w", err)
	}
	dump.Reindex()
	return &dump, nil
}
