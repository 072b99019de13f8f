// Package kv provides the key-value backends the store persists to.
package kv

// Backend is a synchronous key-value store.
//
// Implementations must make Set atomic per key: concurrent writers to the
// same key resolve to last-write-wins, never to interleaved values.
type Backend interface {
	// Get returns the value for a key. The second return value reports
	// whether the key exists.
	Get(key string) (string, bool, error)

	// Set writes the value for a key, overwriting any previous value.
	Set(key, value string) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(key string) error

	// Ping reports whether the backend is reachable.
	Ping() error
}
