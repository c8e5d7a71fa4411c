package bst

import (
	"reflect"

	"github.com/emirpasic/gods/utils"
)

// Comparator defines a total order over keys. It returns a negative number if a < b, zero if a == b and a positive
// number if a > b.
type Comparator[K any] func(a, b K) int

// StringComparator orders keys by comparing their string representations.
//
// Keys with identical string representations are treated as the same key, even if they differ otherwise (i.e. the int
// 10 and the string "10"). Numbers are ordered lexically ("10" < "9").
func StringComparator[K any](a, b K) int {
	return utils.StringComparator(utils.ToString(a), utils.ToString(b))
}

// isNil returns true if the key is a nil interface or a nil value of a nillable kind.
func isNil[K any](key K) bool {
	keyInterface := any(key)
	if keyInterface == nil {
		return true
	}

	switch value := reflect.ValueOf(keyInterface); value.Kind() {
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return value.IsNil()
	default:
		return false
	}
}
