package bst

import (
	"cmp"
	"fmt"
	"io"

	"github.com/iotaledger/bstmap/ierrors"
	"github.com/iotaledger/bstmap/lo"
	"github.com/iotaledger/bstmap/logger"
	"github.com/iotaledger/bstmap/options"
	"github.com/iotaledger/bstmap/stringify"
)

// Map is an ordered map that stores its entries in an unbalanced binary search tree.
type Map[K, V any] struct {
	root       *node[K, V]
	comparator Comparator[K]
	size       int

	// depthWarningIssued is set after the first insertion that exceeded the depth warning threshold.
	depthWarningIssued bool
	log                *logger.WrappedLogger

	optTraversalOrder        TraversalOrder
	optDepthWarningThreshold int
	optLogger                *logger.Logger
}

// New creates an empty Map that orders its keys with the given Comparator. A nil Comparator falls back to the
// StringComparator.
func New[K, V any](comparator Comparator[K], opts ...options.Option[Map[K, V]]) *Map[K, V] {
	return options.Apply(&Map[K, V]{
		comparator:        comparator,
		optTraversalOrder: InOrder,
	}, opts, func(m *Map[K, V]) {
		if m.comparator == nil {
			m.comparator = StringComparator[K]
		}

		m.log = logger.NewWrappedLogger(m.optLogger)
	})
}

// NewWithStringComparator creates an empty Map that orders its keys by their string representation (see
// StringComparator for the caveats).
func NewWithStringComparator[K, V any](opts ...options.Option[Map[K, V]]) *Map[K, V] {
	return New[K, V](StringComparator[K], opts...)
}

// NewOrdered creates an empty Map for keys that have a natural order.
func NewOrdered[K cmp.Ordered, V any](opts ...options.Option[Map[K, V]]) *Map[K, V] {
	return New[K, V](lo.Comparator[K], opts...)
}

// Set stores the value under the given key by walking down the tree and inserting a new node into the first empty
// slot on the path. If the key exists already, its value is replaced and the previous value is returned.
func (m *Map[K, V]) Set(key K, value V) (previousValue V, previousValueExisted bool, err error) {
	if isNil(key) {
		return previousValue, false, ierrors.WithStack(ErrNilKey)
	}

	if m.root == nil {
		m.root = newNode(key, value)
		m.inserted(key, 1)

		return previousValue, false, nil
	}

	for currentNode, depth := m.root, 1; ; depth++ {
		switch compare := m.comparator(key, currentNode.key); {
		case compare < 0:
			if currentNode.left == nil {
				currentNode.left = newNode(key, value)
				m.inserted(key, depth+1)

				return previousValue, false, nil
			}

			currentNode = currentNode.left
		case compare > 0:
			if currentNode.right == nil {
				currentNode.right = newNode(key, value)
				m.inserted(key, depth+1)

				return previousValue, false, nil
			}

			currentNode = currentNode.right
		default:
			previousValue, currentNode.value = currentNode.value, value

			return previousValue, true, nil
		}
	}
}

// SetRecursive behaves exactly like Set (and produces the same tree shape) but rebuilds the path top-down by
// rebinding the child reference of every ancestor on the way back up.
func (m *Map[K, V]) SetRecursive(key K, value V) (previousValue V, previousValueExisted bool, err error) {
	if isNil(key) {
		return previousValue, false, ierrors.WithStack(ErrNilKey)
	}

	m.root, previousValue, previousValueExisted = m.setRecursive(m.root, key, value, 1)

	return previousValue, previousValueExisted, nil
}

func (m *Map[K, V]) setRecursive(subtree *node[K, V], key K, value V, depth int) (updatedSubtree *node[K, V], previousValue V, previousValueExisted bool) {
	if subtree == nil {
		m.inserted(key, depth)

		return newNode(key, value), previousValue, false
	}

	switch compare := m.comparator(key, subtree.key); {
	case compare < 0:
		subtree.left, previousValue, previousValueExisted = m.setRecursive(subtree.left, key, value, depth+1)
	case compare > 0:
		subtree.right, previousValue, previousValueExisted = m.setRecursive(subtree.right, key, value, depth+1)
	default:
		previousValue, subtree.value = subtree.value, value
		previousValueExisted = true
	}

	return subtree, previousValue, previousValueExisted
}

// Get returns the value stored under the given key or ErrKeyNotFound if the key does not exist.
func (m *Map[K, V]) Get(key K) (value V, err error) {
	if isNil(key) {
		return value, ierrors.WithStack(ErrNilKey)
	}

	if foundNode := m.lookup(key); foundNode != nil {
		return foundNode.value, nil
	}

	return value, ierrors.Wrapf(ErrKeyNotFound, "invalid key %v", key)
}

// Has returns true if an entry with the given key exists.
func (m *Map[K, V]) Has(key K) bool {
	return !isNil(key) && m.lookup(key) != nil
}

// Remove deletes the entry with the given key and returns its value. Removing a key that does not exist is a no-op.
func (m *Map[K, V]) Remove(key K) (previousValue V, previousValueExisted bool, err error) {
	if isNil(key) {
		return previousValue, false, ierrors.WithStack(ErrNilKey)
	}

	if m.root, previousValue, previousValueExisted = m.remove(m.root, key); previousValueExisted {
		m.size--
	}

	return previousValue, previousValueExisted, nil
}

func (m *Map[K, V]) remove(subtree *node[K, V], key K) (updatedSubtree *node[K, V], removedValue V, removed bool) {
	if subtree == nil {
		return nil, removedValue, false
	}

	switch compare := m.comparator(key, subtree.key); {
	case compare < 0:
		subtree.left, removedValue, removed = m.remove(subtree.left, key)

		return subtree, removedValue, removed
	case compare > 0:
		subtree.right, removedValue, removed = m.remove(subtree.right, key)

		return subtree, removedValue, removed
	}

	removedValue = subtree.value

	switch {
	case subtree.left == nil:
		return subtree.right, removedValue, true
	case subtree.right == nil:
		return subtree.left, removedValue, true
	}

	var predecessor *node[K, V]
	subtree.left, predecessor = removeMax(subtree.left)
	m.log.LogDebugf("bst: replacing removed key %v with its predecessor %v", subtree.key, predecessor.key)
	subtree.key, subtree.value = predecessor.key, predecessor.value

	return subtree, removedValue, true
}

// Size returns the amount of entries in the Map.
func (m *Map[K, V]) Size() int {
	if m == nil {
		return 0
	}

	return m.size
}

// IsEmpty returns true if the Map does not contain any entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.Size() == 0
}

// Clear removes all entries from the Map.
func (m *Map[K, V]) Clear() {
	m.root = nil
	m.size = 0
	m.depthWarningIssued = false
}

// Height returns the amount of levels of the tree (0 for an empty Map).
func (m *Map[K, V]) Height() int {
	return height(m.rootNode())
}

// Min returns the entry with the smallest key.
func (m *Map[K, V]) Min() (key K, value V, exists bool) {
	root := m.rootNode()
	if root == nil {
		return key, value, false
	}

	minNode := root.min()

	return minNode.key, minNode.value, true
}

// Max returns the entry with the largest key.
func (m *Map[K, V]) Max() (key K, value V, exists bool) {
	root := m.rootNode()
	if root == nil {
		return key, value, false
	}

	maxNode := root.max()

	return maxNode.key, maxNode.value, true
}

// Clone returns a copy of the Map that uses the same Comparator and options and has the same tree shape.
func (m *Map[K, V]) Clone() *Map[K, V] {
	if m == nil {
		return nil
	}

	cloned := *m
	cloned.root = m.root.clone()

	return &cloned
}

// Dump writes an indented pre-order rendering of the tree to the writer. Every present node is written as
// "<indent><key>: <value>" and every empty slot as "<indent><>". Children are only rendered if at least one of them
// exists. The first error returned by the writer aborts the dump and is returned unchanged.
func (m *Map[K, V]) Dump(writer io.Writer) error {
	return dump(writer, m.rootNode(), "")
}

// String returns a human-readable version of the Map.
func (m *Map[K, V]) String() string {
	if m == nil {
		return "Map <nil>"
	}

	entries := make([]Entry[K, V], 0, m.size)
	m.ForEach(func(key K, value V) bool {
		entries = append(entries, Entry[K, V]{Key: key, Value: value})

		return true
	})

	builder := stringify.NewStructBuilder("Map",
		stringify.NewStructField("size", m.size),
		stringify.NewStructField("height", m.Height()),
		stringify.NewStructField("order", m.optTraversalOrder),
	)

	if m.optDepthWarningThreshold > 0 {
		builder.AddField(stringify.NewStructField("depthWarningThreshold", m.optDepthWarningThreshold))
	}

	return builder.AddField(stringify.NewStructField("entries", entries)).String()
}

// lookup returns the node with the given key or nil if it does not exist.
func (m *Map[K, V]) lookup(key K) *node[K, V] {
	currentNode := m.rootNode()
	for currentNode != nil {
		switch compare := m.comparator(key, currentNode.key); {
		case compare < 0:
			currentNode = currentNode.left
		case compare > 0:
			currentNode = currentNode.right
		default:
			return currentNode
		}
	}

	return nil
}

// rootNode returns the root of the tree, treating a nil Map as an empty one.
func (m *Map[K, V]) rootNode() *node[K, V] {
	if m == nil {
		return nil
	}

	return m.root
}

// inserted books a freshly created node that was placed at the given depth.
func (m *Map[K, V]) inserted(key K, depth int) {
	m.size++

	if m.optDepthWarningThreshold > 0 && depth > m.optDepthWarningThreshold && !m.depthWarningIssued {
		m.depthWarningIssued = true
		m.log.LogWarnf("bst: key %v was inserted at depth %d (threshold %d), the tree is degenerating", key, depth, m.optDepthWarningThreshold)
	}
}

func height[K, V any](subtree *node[K, V]) int {
	if subtree == nil {
		return 0
	}

	return lo.Max(height(subtree.left), height(subtree.right)) + 1
}

func dump[K, V any](writer io.Writer, subtree *node[K, V], indent string) error {
	if subtree == nil {
		_, err := fmt.Fprintln(writer, indent+"<>")

		return err
	}

	if _, err := fmt.Fprintf(writer, "%s%v: %v\n", indent, subtree.key, subtree.value); err != nil {
		return err
	}

	if !subtree.hasChildren() {
		return nil
	}

	if err := dump(writer, subtree.left, indent+"  "); err != nil {
		return err
	}

	return dump(writer, subtree.right, indent+"  ")
}
