package notes

import "fmt"

// NotFoundError reports an operation referencing an id not in the collection.
type NotFoundError struct {
	ID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("note %s not found", e.ID)
}

// PersistenceError wraps a read or write failure of the underlying store.
// The engine never retries; callers may.
type PersistenceError struct {
	Op  string
	Err error
}

func (e PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e PersistenceError) Unwrap() error { return e.Err }

// DeserializationError reports a malformed persisted record. List fails
// wholesale on the first bad record rather than dropping it, so corruption
// surfaces instead of notes silently vanishing.
type DeserializationError struct {
	Record string
	Err    error
}

func (e DeserializationError) Error() string {
	return fmt.Sprintf("malformed stored record: %v", e.Err)
}

func (e DeserializationError) Unwrap() error { return e.Err }
