package lo

import (
	"cmp"
)

// Cond is a conditional statement that returns the trueValue if the condition is true and the falseValue otherwise.
func Cond[T any](condition bool, trueValue, falseValue T) T {
	if condition {
		return trueValue
	}

	return falseValue
}

// Map iterates over elements of collection, applies the mapper function to each element
// and returns an array of modified TargetType elements.
func Map[SourceType any, TargetType any](source []SourceType, mapper func(SourceType) TargetType) (target []TargetType) {
	target = make([]TargetType, len(source))
	for i, value := range source {
		target[i] = mapper(value)
	}

	return target
}

// Max returns the maximum value of the collection (or the zero value of T for an empty collection).
func Max[T cmp.Ordered](collection ...T) T {
	var max T
	for i, item := range collection {
		if i == 0 || item > max {
			max = item
		}
	}

	return max
}
