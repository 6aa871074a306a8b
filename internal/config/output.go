package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// JSON writes a state document instead of a diagram
	JSON bool

	// Coordinates adds file letters and rank numbers around the diagram
	Coordinates bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Coordinates: true,
	}
}

// StoreConfig holds settings for the snapshot database.
type StoreConfig struct {
	// Dir is the database directory; empty keeps snapshots in memory
	Dir string

	// SyncWrites flushes every write to disk before returning
	SyncWrites bool
}

// NewStoreConfig creates a StoreConfig with default values.
func NewStoreConfig() *StoreConfig {
	return &StoreConfig{}
}
