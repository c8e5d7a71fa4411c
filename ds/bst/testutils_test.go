package bst

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// requireValidTree checks the ordering invariant and that the size matches the amount of reachable nodes.
func requireValidTree[K, V any](t *testing.T, m *Map[K, V]) {
	t.Helper()

	var check func(subtree *node[K, V], lower, upper *K) int
	check = func(subtree *node[K, V], lower, upper *K) int {
		if subtree == nil {
			return 0
		}

		if lower != nil {
			require.Positive(t, m.comparator(subtree.key, *lower), "key %v must be greater than %v", subtree.key, *lower)
		}
		if upper != nil {
			require.Negative(t, m.comparator(subtree.key, *upper), "key %v must be smaller than %v", subtree.key, *upper)
		}

		return 1 + check(subtree.left, lower, &subtree.key) + check(subtree.right, &subtree.key, upper)
	}

	require.Equal(t, m.Size(), check(m.root, nil, nil), "size does not match the amount of reachable nodes")
}

func collectKeys[K, V any](m *Map[K, V]) []K {
	keys := make([]K, 0)
	for key := range m.Keys().Seq() {
		keys = append(keys, key)
	}

	return keys
}

func newIntMap(keys ...int) *Map[int, string] {
	m := NewOrdered[int, string]()
	for _, key := range keys {
		if _, _, err := m.Set(key, valueOf(key)); err != nil {
			panic(err)
		}
	}

	return m
}

func valueOf(key int) string {
	return "v" + string(rune('0'+key%10)) + string(rune('a'+key/10%26))
}

func randomKeys(seed int64, count int, maxKey int) []int {
	random := rand.New(rand.NewSource(seed))

	keys := make([]int, count)
	for i := range keys {
		keys[i] = random.Intn(maxKey)
	}

	return keys
}
