package store

import "fmt"

// NotFoundError is returned when a key has no record in a collection.
type NotFoundError struct {
	Collection string
	Key        string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s record under ID %q", e.Collection, e.Key)
}

// DuplicateKeyError is returned when an insert hits an existing key in a
// collection that rejects duplicates. The stored record is untouched.
type DuplicateKeyError struct {
	Collection string
	Key        string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s record with ID %q already exists", e.Collection, e.Key)
}
