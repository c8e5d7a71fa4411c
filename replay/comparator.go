package replay

import (
	"strconv"
	"strings"

	"github.com/iotaledger/bstmap/ds/bst"
	"github.com/iotaledger/bstmap/ierrors"
	"github.com/iotaledger/bstmap/lo"
)

const (
	// ComparatorModeLexical orders keys by their string representation.
	ComparatorModeLexical = "lexical"
	// ComparatorModeNumeric orders keys that can be parsed as integers by their numeric value.
	ComparatorModeNumeric = "numeric"
)

// ComparatorForMode returns the Comparator that belongs to the given mode.
func ComparatorForMode(mode string) (bst.Comparator[string], error) {
	switch strings.ToLower(mode) {
	case ComparatorModeLexical, "":
		return bst.StringComparator[string], nil
	case ComparatorModeNumeric:
		return NumericComparator, nil
	default:
		return nil, ierrors.Wrapf(ErrUnknownComparatorMode, "mode %q", mode)
	}
}

// NumericComparator compares keys that are canonical base-10 integers ("-7", "0", "42") by their numeric value.
// All other keys (i.e. "010", "+1", "0x10" or "1.0") are ordered after the numeric keys and are compared lexically
// among each other, so two distinct keys are never treated as equal.
func NumericComparator(a, b string) int {
	aNumber, aIsNumber := parseCanonicalInt(a)
	bNumber, bIsNumber := parseCanonicalInt(b)

	switch {
	case aIsNumber && bIsNumber:
		return lo.Comparator(aNumber, bNumber)
	case aIsNumber:
		return -1
	case bIsNumber:
		return 1
	default:
		return lo.Comparator(a, b)
	}
}

// parseCanonicalInt parses the key as a base-10 integer and only accepts it if formatting the number yields the key
// again.
func parseCanonicalInt(key string) (int64, bool) {
	number, err := strconv.ParseInt(key, 10, 64)
	if err != nil || strconv.FormatInt(number, 10) != key {
		return 0, false
	}

	return number, true
}

// ParseTraversalOrder parses the name of a TraversalOrder ("inorder" or "preorder").
func ParseTraversalOrder(name string) (bst.TraversalOrder, error) {
	switch strings.ToLower(name) {
	case "inorder", "":
		return bst.InOrder, nil
	case "preorder":
		return bst.PreOrder, nil
	default:
		return bst.InOrder, ierrors.Wrapf(ErrUnknownTraversalOrder, "order %q", name)
	}
}
