// Package storage contains concrete implementations of the core.StateStore.
//
// The canonical StateStore interface lives in the core package to avoid
// dependency cycles and keep domain contracts central. Implementation packages
// like this one (in-memory, file-backed) provide storage backends that can be
// swapped without touching calling code.
//
// The package also holds CycleLog, the append-only batch-progress tracker
// used by the round-robin node.
package storage
