package buffer

import (
	"github.com/ximtech/Vector/pkg/iterator"
	"golang.org/x/exp/slices"
)

func (v *Vector[T]) IndexOf(item T) int {
	if v == nil {
		return -1
	}
	return v.indexIn(v.items[:v.size], item)
}

func (v *Vector[T]) Contains(item T) bool {
	return v.IndexOf(item) != -1
}

func (v *Vector[T]) Reverse() {
	if v == nil {
		return
	}

	for i, j := 0, v.size-1; i < j; i, j = i+1, j-1 {
		v.items[i], v.items[j] = v.items[j], v.items[i]
	}
}

// Sort orders elements ascending. Equal elements may be reordered.
func (v *Vector[T]) Sort() {
	if v == nil {
		return
	}
	slices.SortFunc(v.items[:v.size], v.cmp.Less)
}

func (v *Vector[T]) Equals(other *Vector[T]) bool {
	return Equals(v, other)
}

// Equals reports whether a and b hold equal elements in the same order,
// using a's comparator. Two nil vectors are equal; a nil and a non-nil one
// are not.
func Equals[T any](a, b *Vector[T]) bool {
	if a == b {
		return true
	}

	if a == nil || b == nil || a.size != b.size {
		return false
	}

	for i := 0; i < a.size; i++ {
		if a.cmp(a.items[i], b.items[i]) != 0 {
			return false
		}
	}
	return true
}

// RemoveDup keeps the first occurrence of every value and preserves order.
func (v *Vector[T]) RemoveDup() {
	if v == nil {
		return
	}

	w := 0
	for i := 0; i < v.size; i++ {
		if v.indexIn(v.items[:w], v.items[i]) == -1 {
			v.items[w] = v.items[i]
			w++
		}
	}
	v.truncate(w)
}

// Group collects the elements equal to Key, in vector order.
type Group[T any] struct {
	Key   T
	Items []T
}

// Groups buckets equal elements under the comparator. Groups appear in the
// order their first element does, and RemoveDup keeps exactly their keys.
func (v *Vector[T]) Groups() iterator.Iterable[Group[T]] {
	if v == nil {
		return iterator.NewEmptyIterable[Group[T]]()
	}

	var groups []Group[T]
	keys := make([]T, 0, v.size)
	for _, item := range v.items[:v.size] {
		if i := v.indexIn(keys, item); i >= 0 {
			groups[i].Items = append(groups[i].Items, item)
			continue
		}
		keys = append(keys, item)
		groups = append(groups, Group[T]{Key: item, Items: []T{item}})
	}
	return iterator.NewSliceIterable(groups)
}

func (v *Vector[T]) indexIn(items []T, item T) int {
	for i := range items {
		if v.cmp(items[i], item) == 0 {
			return i
		}
	}
	return -1
}

func (v *Vector[T]) truncate(size int) {
	clear(v.items[size:v.size])
	v.size = size
}
