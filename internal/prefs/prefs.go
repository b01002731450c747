// Package prefs provides the durable string-keyed preference store backing
// the note collection. Values are either single strings or ordered string
// lists; callers treat the store as opaque and own their serialization.
package prefs

// Store is the durable key-value contract consumed by the lifecycle engine.
// GetString reports absence through its second return rather than an error;
// GetStringList returns an empty list for absent keys. SetStringList
// replaces the stored list in a single transaction.
type Store interface {
	GetString(key string) (string, bool, error)
	SetString(key, value string) error
	GetStringList(key string) ([]string, error)
	SetStringList(key string, values []string) error
	Close() error
}

var _ Store = (*DB)(nil)
