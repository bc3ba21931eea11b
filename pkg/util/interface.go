package util

// Comparable is implemented by types that carry their own ordering.
type Comparable[T any] interface {
	CompareTo(T) int
}

// FromComparable adapts a self-ordering type to a Comparator.
func FromComparable[T Comparable[T]]() Comparator[T] {
	return func(a, b T) int {
		return a.CompareTo(b)
	}
}
