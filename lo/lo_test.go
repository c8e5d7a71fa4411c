package lo

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComparator(t *testing.T) {
	require.Equal(t, -1, Comparator(1, 2))
	require.Equal(t, 1, Comparator("b", "a"))
	require.Equal(t, 0, Comparator(3.5, 3.5))
}

func TestCond(t *testing.T) {
	require.Equal(t, "yes", Cond(true, "yes", "no"))
	require.Equal(t, "no", Cond(false, "yes", "no"))
}

func TestMap(t *testing.T) {
	require.Equal(t, []string{"1", "2", "3"}, Map([]int{1, 2, 3}, strconv.Itoa))
	require.Empty(t, Map([]int{}, strconv.Itoa))
}

func TestMax(t *testing.T) {
	require.Equal(t, 0, Max[int]())
	require.Equal(t, 7, Max(3, 7, 5))
	require.Equal(t, -1, Max(-3, -1, -5))
}
