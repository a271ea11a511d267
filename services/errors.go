package services

import "fmt"

// ValidationError rejects a malformed creation request. It carries the
// message shown to the caller; no side effects happen once it is raised.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// StorageError wraps a failure of the durable store. It is fatal to the
// operation that hit it, never to the process.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
