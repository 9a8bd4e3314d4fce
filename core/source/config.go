package source

import "fmt"

// Source kinds selectable via configuration.
const (
	// KindFile reads the dump from a JSON file on disk.
	KindFile = "file"
	// KindStorage reads the dump from an object in the storage bucket.
	KindStorage = "storage"
	// KindDatabase reads the dump from the genie_* database tables.
	KindDatabase = "database"
)

// Config selects and parameterizes the dump source.
type Config struct {
	// Kind is the source backend (file, storage, database).
	Kind string `mapstructure:"kind" default:"file"`
	// Path is the dump file path, used by the file kind.
	Path string `mapstructure:"path" default:"gamedata/dump.json"`
	// Object is the object name inside the bucket, used by the storage kind.
	Object string `mapstructure:"object" default:"dumps/dump.json"`
}

// Validate checks that the configured kind is known.
func (c Config) Validate() error {
	switch c.Kind {
	case KindFile, KindStorage, KindDatabase:
		return nil
	}
	return fmt.Errorf("unknown source kind %q", c.Kind)
}
