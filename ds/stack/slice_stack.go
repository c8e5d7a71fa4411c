package stack

// sliceStack is a Stack backed by a slice whose end is the top of the Stack.
type sliceStack[T any] []T

func (s *sliceStack[T]) Push(element T) {
	*s = append(*s, element)
}

func (s *sliceStack[T]) Pop() (element T, exists bool) {
	if s.IsEmpty() {
		return element, false
	}

	index := len(*s) - 1
	element = (*s)[index]

	// release the reference so popped elements can be collected
	var zero T
	(*s)[index] = zero
	*s = (*s)[:index]

	return element, true
}

func (s *sliceStack[T]) IsEmpty() bool {
	return len(*s) == 0
}

var _ Stack[int] = new(sliceStack[int])
