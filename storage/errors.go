package storage

import "fmt"

var (
	// ErrNotFound is returned when state for the given scope / key pair
	// does not exist in the underlying store.
	ErrNotFound = fmt.Errorf("state not found")
)
