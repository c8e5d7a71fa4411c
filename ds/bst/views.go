package bst

import (
	"iter"
)

// Keys returns a one-shot Iterator over the keys of the Map.
func (m *Map[K, V]) Keys() *Iterator[K] {
	return newIterator(m.nodes(), func(n *node[K, V]) K {
		return n.key
	})
}

// Values returns a one-shot Iterator over the values of the Map.
func (m *Map[K, V]) Values() *Iterator[V] {
	return newIterator(m.nodes(), func(n *node[K, V]) V {
		return n.value
	})
}

// Entries returns a one-shot Iterator over the entries of the Map.
func (m *Map[K, V]) Entries() *Iterator[Entry[K, V]] {
	return newIterator(m.nodes(), func(n *node[K, V]) Entry[K, V] {
		return Entry[K, V]{Key: n.key, Value: n.value}
	})
}

// ForEach calls the consumer for every entry of the Map. The iteration can be aborted by returning false in the
// consumer, in which case ForEach returns false as well.
func (m *Map[K, V]) ForEach(consumer func(key K, value V) bool) bool {
	for nodes := m.nodes(); nodes.HasNext(); {
		if currentNode := nodes.Next(); !consumer(currentNode.key, currentNode.value) {
			return false
		}
	}

	return true
}

// All returns a sequence over all entries of the Map. Every call of the sequence starts a new enumeration.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.ForEach(yield)
	}
}

// TraversalOrder returns the order in which the entries of the Map are enumerated.
func (m *Map[K, V]) TraversalOrder() TraversalOrder {
	if m == nil {
		return InOrder
	}

	return m.optTraversalOrder
}

func (m *Map[K, V]) nodes() *nodeIterator[K, V] {
	return newNodeIterator(m.rootNode(), m.TraversalOrder())
}
