package buffer

// Set operations work in place on the receiver, compare with the receiver's
// comparator and cost O(n*m). They return false without touching the
// receiver when either side is nil or the result would not fit.

// Union appends the elements of other that the receiver does not hold yet,
// in other's order.
func (v *Vector[T]) Union(other *Vector[T]) bool {
	if v == nil || other == nil {
		return false
	}

	current := v.items[:v.size]
	var added []T
	for _, item := range other.Items() {
		if v.indexIn(current, item) == -1 && v.indexIn(added, item) == -1 {
			added = append(added, item)
		}
	}

	return v.FromSlice(added)
}

// Intersect keeps the receiver's elements that other also holds.
func (v *Vector[T]) Intersect(other *Vector[T]) bool {
	if v == nil || other == nil {
		return false
	}

	others := other.Items()
	v.retain(func(item T) bool {
		return v.indexIn(others, item) != -1
	})
	return true
}

// Subtract drops the receiver's elements that other holds.
func (v *Vector[T]) Subtract(other *Vector[T]) bool {
	if v == nil || other == nil {
		return false
	}

	others := other.Items()
	v.retain(func(item T) bool {
		return v.indexIn(others, item) == -1
	})
	return true
}

// Disjunction leaves the symmetric difference: the receiver's elements
// missing from other, followed by other's elements missing from the
// receiver.
func (v *Vector[T]) Disjunction(other *Vector[T]) bool {
	if v == nil || other == nil {
		return false
	}

	current := v.Items()
	others := other.Items()

	var left, right []T
	for _, item := range current {
		if v.indexIn(others, item) == -1 {
			left = append(left, item)
		}
	}
	for _, item := range others {
		if v.indexIn(current, item) == -1 {
			right = append(right, item)
		}
	}

	if len(left)+len(right) > len(v.items) {
		return false
	}

	n := copy(v.items, left)
	n += copy(v.items[n:], right)
	if n < v.size {
		clear(v.items[n:v.size])
	}
	v.size = n
	return true
}

func (v *Vector[T]) retain(keep func(T) bool) {
	w := 0
	for i := 0; i < v.size; i++ {
		if keep(v.items[i]) {
			v.items[w] = v.items[i]
			w++
		}
	}
	v.truncate(w)
}
