package bst

import (
	"github.com/iotaledger/bstmap/logger"
	"github.com/iotaledger/bstmap/options"
)

// WithTraversalOrder sets the order in which Keys, Values, Entries, All and ForEach visit the entries.
func WithTraversalOrder[K, V any](order TraversalOrder) options.Option[Map[K, V]] {
	return func(m *Map[K, V]) {
		m.optTraversalOrder = order
	}
}

// WithLogger sets the logger that receives debug messages about structural changes of the tree.
func WithLogger[K, V any](log *logger.Logger) options.Option[Map[K, V]] {
	return func(m *Map[K, V]) {
		m.optLogger = log
	}
}

// WithDepthWarningThreshold makes the Map log a warning (once) as soon as an entry is inserted deeper than the given
// depth. A threshold of 0 disables the warning.
func WithDepthWarningThreshold[K, V any](depth int) options.Option[Map[K, V]] {
	return func(m *Map[K, V]) {
		m.optDepthWarningThreshold = depth
	}
}
