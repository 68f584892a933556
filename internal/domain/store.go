package domain

// Store is the local key-value persistence (BoltDB + memory).
// Each key holds one serialized value that is replaced as a whole.
type Store interface {
	// Get returns the raw value for key, false when absent
	Get(key string) ([]byte, bool)

	// Set replaces the value for key atomically
	Set(key string, value []byte) error

	// Delete removes key; deleting an absent key is not an error
	Delete(key string) error

	Close() error
}
