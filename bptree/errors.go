package bptree

import "github.com/pkg/errors"

var (
	// ErrKeyNotFound is returned by Delete when the key is not in the tree.
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvalidConfig is returned by New for an order below 3 or a leaf
	// capacity below 2.
	ErrInvalidConfig = errors.New("invalid tree configuration")

	// ErrCorrupt is returned by Verify when a structural invariant is broken.
	ErrCorrupt = errors.New("tree invariant violated")
)
