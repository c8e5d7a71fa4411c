// Package bst implements an ordered map on top of an unbalanced binary search tree.
//
// The position of every entry is decided by a caller supplied Comparator. The tree is never rebalanced, so the shape
// depends on the insertion order and sequential insertions degenerate into a list. Operations are O(depth) and the
// recursive code paths (SetRecursive, Remove, Dump and Clone) use stack space proportional to the depth of the tree.
//
// Removing a node with two children promotes its in-order predecessor (the largest key of the left subtree) instead
// of the in-order successor from the right subtree.
//
// The read-only queries (Get, Has, Size, IsEmpty, Height, Min, Max, Clone, Dump, String and the traversal views)
// treat a nil *Map as an empty Map. Mutating methods require a Map created by one of the constructors.
//
// A Map is not safe for concurrent use. Callers that share a Map between goroutines have to serialize access.
package bst
