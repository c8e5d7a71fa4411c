package bst

import (
	"fmt"
	"iter"

	"github.com/iotaledger/bstmap/ds/stack"
)

// region TraversalOrder ///////////////////////////////////////////////////////////////////////////////////////////////

// TraversalOrder determines the order in which the entries of a Map are enumerated.
type TraversalOrder uint8

const (
	// InOrder enumerates the entries sorted by their keys (according to the Comparator of the Map).
	InOrder TraversalOrder = iota

	// PreOrder enumerates every node before its left and its right subtree (the order that is used by Dump).
	PreOrder
)

// String returns a human-readable version of the TraversalOrder.
func (t TraversalOrder) String() string {
	switch t {
	case InOrder:
		return "InOrder"
	case PreOrder:
		return "PreOrder"
	default:
		return fmt.Sprintf("TraversalOrder(%d)", uint8(t))
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Entry ////////////////////////////////////////////////////////////////////////////////////////////////////////

// Entry is a key-value pair of a Map.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// String returns a human-readable version of the Entry.
func (e Entry[K, V]) String() string {
	return fmt.Sprintf("%v: %v", e.Key, e.Value)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Iterator /////////////////////////////////////////////////////////////////////////////////////////////////////

// Iterator is a lazy, one-shot sequence of elements that are derived from the nodes of a Map.
//
// Modifying the Map while an Iterator is in use leads to undefined results.
type Iterator[T any] struct {
	hasNext func() bool
	next    func() T
}

// newIterator creates an Iterator that projects every node of the given nodeIterator to an element of type T.
func newIterator[K, V, T any](nodes *nodeIterator[K, V], project func(*node[K, V]) T) *Iterator[T] {
	return &Iterator[T]{
		hasNext: nodes.HasNext,
		next: func() T {
			return project(nodes.Next())
		},
	}
}

// HasNext returns true if there is another element that can be requested via the Next method.
func (i *Iterator[T]) HasNext() bool {
	return i.hasNext()
}

// Next returns the next element and advances the Iterator. The method panics if the Iterator is exhausted (always
// use HasNext to check if another element can be requested).
func (i *Iterator[T]) Next() T {
	return i.next()
}

// Seq drains the Iterator through a range-over-func loop.
func (i *Iterator[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i.HasNext() {
			if !yield(i.Next()) {
				return
			}
		}
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region nodeIterator /////////////////////////////////////////////////////////////////////////////////////////////////

// nodeIterator enumerates the nodes of a tree with an explicit stack.
type nodeIterator[K, V any] struct {
	stack stack.Stack[*node[K, V]]
	order TraversalOrder
}

func newNodeIterator[K, V any](root *node[K, V], order TraversalOrder) *nodeIterator[K, V] {
	n := &nodeIterator[K, V]{
		stack: stack.New[*node[K, V]](),
		order: order,
	}

	if order == PreOrder {
		n.push(root)
	} else {
		n.pushLeftSpine(root)
	}

	return n
}

// HasNext returns true if there is another node.
func (n *nodeIterator[K, V]) HasNext() bool {
	return !n.stack.IsEmpty()
}

// Next returns the next node and advances the iterator.
func (n *nodeIterator[K, V]) Next() *node[K, V] {
	currentNode, exists := n.stack.Pop()
	if !exists {
		panic("no next element found in iterator")
	}

	if n.order == PreOrder {
		n.push(currentNode.right)
		n.push(currentNode.left)
	} else {
		n.pushLeftSpine(currentNode.right)
	}

	return currentNode
}

func (n *nodeIterator[K, V]) push(subtree *node[K, V]) {
	if subtree != nil {
		n.stack.Push(subtree)
	}
}

// pushLeftSpine pushes the given node and all of its left descendants, so that the smallest node ends up on top.
func (n *nodeIterator[K, V]) pushLeftSpine(subtree *node[K, V]) {
	for ; subtree != nil; subtree = subtree.left {
		n.stack.Push(subtree)
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
