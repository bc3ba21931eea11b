package iterator

type BaseIterable[V any] struct {
	builder func() Iterator[V]
}

func BaseIterableFrom[V any](builder func() Iterator[V]) *BaseIterable[V] {
	return &BaseIterable[V]{
		builder: builder,
	}
}

func (i *BaseIterable[V]) Itr() Iterator[V] {
	return i.builder()
}

func (i *BaseIterable[V]) Take(n int) Iterable[V] {
	return BaseIterableFrom(func() Iterator[V] {
		return &TakeNIterator[V]{
			Iterator: i.Itr(),
			N:        n,
		}
	})
}

func (i *BaseIterable[V]) Skip(n int) Iterable[V] {
	return BaseIterableFrom(func() Iterator[V] {
		return &SkipNIterator[V]{
			Iterator: i.Itr(),
			N:        n,
		}
	})
}

func (i *BaseIterable[V]) TakeWhile(pred func(V) bool) Iterable[V] {
	return BaseIterableFrom(func() Iterator[V] {
		return &TakeWhileIterator[V]{
			Iterator:  i.Itr(),
			Predicate: pred,
		}
	})
}

func (i *BaseIterable[V]) SkipWhile(pred func(V) bool) Iterable[V] {
	return BaseIterableFrom(func() Iterator[V] {
		return &SkipWhileIterator[V]{
			Iterator:  i.Itr(),
			Predicate: pred,
		}
	})
}

func (i *BaseIterable[V]) Where(pred func(V) bool) Iterable[V] {
	return BaseIterableFrom(func() Iterator[V] {
		return &WhereIterator[V]{
			Iterator:  i.Itr(),
			Predicate: pred,
		}
	})
}

func (i *BaseIterable[V]) Reversed() Iterable[V] {
	return BaseIterableFrom(func() Iterator[V] {
		return &ReversedIterator[V]{
			Iterator: i.Itr(),
		}
	})
}

func (i *BaseIterable[V]) Any(pred func(V) bool) bool {
	itr := i.Itr()
	for v, ok := itr.Move(); ok; v, ok = itr.Move() {
		if pred(v) {
			return true
		}
	}
	return false
}

func (i *BaseIterable[V]) Every(pred func(V) bool) bool {
	itr := i.Itr()
	for v, ok := itr.Move(); ok; v, ok = itr.Move() {
		if !pred(v) {
			return false
		}
	}
	return true
}

func (i *BaseIterable[V]) Count() int {
	n := 0
	itr := i.Itr()
	for _, ok := itr.Move(); ok; _, ok = itr.Move() {
		n++
	}
	return n
}

func (i *BaseIterable[V]) ForEach(f func(V)) {
	itr := i.Itr()
	for v, ok := itr.Move(); ok; v, ok = itr.Move() {
		f(v)
	}
}

func (i *BaseIterable[V]) ToList() []V {
	itr := i.Itr()
	var list []V

	for v, ok := itr.Move(); ok; v, ok = itr.Move() {
		list = append(list, v)
	}

	return list
}

type TakeNIterator[V any] struct {
	Iterator Iterator[V]
	N        int
	idx      int
}

func (i *TakeNIterator[V]) Move() (V, bool) {
	if i.idx >= i.N {
		return *new(V), false
	}

	i.idx++
	return i.Iterator.Move()
}

type SkipNIterator[V any] struct {
	Iterator Iterator[V]
	N        int
	idx      int
}

func (i *SkipNIterator[V]) Move() (V, bool) {
	for i.idx < i.N {
		i.idx++
		if _, ok := i.Iterator.Move(); !ok {
			return *new(V), false
		}
	}

	return i.Iterator.Move()
}

type TakeWhileIterator[V any] struct {
	Iterator  Iterator[V]
	Predicate func(V) bool
	done      bool
}

func (i *TakeWhileIterator[V]) Move() (V, bool) {
	if i.done {
		return *new(V), false
	}

	if v, ok := i.Iterator.Move(); ok && i.Predicate(v) {
		return v, true
	}

	i.done = true
	return *new(V), false
}

type SkipWhileIterator[V any] struct {
	Iterator  Iterator[V]
	Predicate func(V) bool
	started   bool
}

func (i *SkipWhileIterator[V]) Move() (V, bool) {
	if !i.started {
		i.started = true
		for v, ok := i.Iterator.Move(); ok; v, ok = i.Iterator.Move() {
			if !i.Predicate(v) {
				return v, true
			}
		}
		return *new(V), false
	}

	return i.Iterator.Move()
}

type WhereIterator[V any] struct {
	Iterator  Iterator[V]
	Predicate func(V) bool
}

func (i *WhereIterator[V]) Move() (V, bool) {
	for v, ok := i.Iterator.Move(); ok; v, ok = i.Iterator.Move() {
		if i.Predicate(v) {
			return v, true
		}
	}

	return *new(V), false
}

// ReversedIterator drains its source on the first Move.
type ReversedIterator[V any] struct {
	Iterator Iterator[V]
	stack    []V
	loaded   bool
}

func (i *ReversedIterator[V]) Move() (V, bool) {
	if !i.loaded {
		i.loaded = true
		for v, ok := i.Iterator.Move(); ok; v, ok = i.Iterator.Move() {
			i.stack = append(i.stack, v)
		}
	}

	if len(i.stack) == 0 {
		return *new(V), false
	}

	v := i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]
	return v, true
}
