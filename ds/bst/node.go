package bst

// node is a single entry of the tree. Every node is referenced by exactly one parent (or the Map for the root).
type node[K, V any] struct {
	key   K
	value V
	left  *node[K, V]
	right *node[K, V]
}

func newNode[K, V any](key K, value V) *node[K, V] {
	return &node[K, V]{
		key:   key,
		value: value,
	}
}

func (n *node[K, V]) hasChildren() bool {
	return n.left != nil || n.right != nil
}

// min returns the leftmost node of the subtree.
func (n *node[K, V]) min() *node[K, V] {
	for n.left != nil {
		n = n.left
	}

	return n
}

// max returns the rightmost node of the subtree.
func (n *node[K, V]) max() *node[K, V] {
	for n.right != nil {
		n = n.right
	}

	return n
}

// clone returns a deep copy of the subtree that has the same shape.
func (n *node[K, V]) clone() *node[K, V] {
	if n == nil {
		return nil
	}

	return &node[K, V]{
		key:   n.key,
		value: n.value,
		left:  n.left.clone(),
		right: n.right.clone(),
	}
}

// removeMax unlinks the rightmost node of the subtree and returns the new subtree root together with the unlinked
// node.
func removeMax[K, V any](subtree *node[K, V]) (updatedSubtree *node[K, V], maxNode *node[K, V]) {
	if subtree.right == nil {
		return subtree.left, subtree
	}

	subtree.right, maxNode = removeMax(subtree.right)

	return subtree, maxNode
}
