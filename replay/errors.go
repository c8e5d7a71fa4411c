package replay

import "github.com/iotaledger/bstmap/ierrors"

var (
	// ErrInvalidCommand is returned if a line of a script can not be executed.
	ErrInvalidCommand = ierrors.New("invalid command")
	// ErrUnknownComparatorMode is returned if a comparator mode is not supported.
	ErrUnknownComparatorMode = ierrors.New("unknown comparator mode")
	// ErrUnknownTraversalOrder is returned if a traversal order can not be parsed.
	ErrUnknownTraversalOrder = ierrors.New("unknown traversal order")
)
