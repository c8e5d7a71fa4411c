package stack

// Stack is a LIFO collection of elements.
type Stack[T any] interface {
	// Push puts an element on top of the Stack.
	Push(element T)

	// Pop removes the top element and returns it together with a flag that indicates if the Stack was non-empty.
	Pop() (element T, exists bool)

	// IsEmpty returns true if the Stack contains no elements.
	IsEmpty() bool
}

// New returns an empty Stack that is not safe for concurrent use.
func New[T any]() Stack[T] {
	return new(sliceStack[T])
}
