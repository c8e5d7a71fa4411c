package bst

import (
	"github.com/iotaledger/bstmap/ierrors"
)

var (
	// ErrNilKey is returned if a nil key is passed to an operation that requires a key.
	ErrNilKey = ierrors.New("bst: nil key")

	// ErrKeyNotFound is returned by Get if the requested key is not stored in the Map.
	ErrKeyNotFound = ierrors.New("bst: key not found")
)
