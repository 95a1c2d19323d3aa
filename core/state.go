package core

// StateStore defines the interface for cross-invocation node state.
// Implementations should be thread-safe and scope entries by a namespace key
// (typically the node name). Short method names (Save/Get/List/Delete) mirror
// other store interfaces for consistency.
type StateStore interface {
	Save(scope, key string, data []byte) error
	Get(scope, key string) ([]byte, error)
	List(scope string) ([]string, error)
	Delete(scope, key string) error
}
