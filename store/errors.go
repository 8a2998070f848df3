package store

import "fmt"

// StorageError wraps a DynamoDB failure with the operation that produced it.
// The store never retries; classification of transient vs. permanent
// failures is left to the caller.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
