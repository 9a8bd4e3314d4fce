package convert

// Config holds configuration for conversion runs.
type Config struct {
	// SnapshotObject is the storage key the convert command uploads
	// snapshots to.
	SnapshotObject string `mapstructure:"snapshot_object" default:"snapshots/graph.json"`
	// SnapshotPrefix is the key prefix the server writes per-run
	// snapshots under and lists them from.
	SnapshotPrefix string `mapstructure:"snapshot_prefix" default:"snapshots/"`
	// Upload enables uploading a snapshot to object storage after a
	// successful run.
	Upload bool `mapstructure:"upload" default:"false"`
}
