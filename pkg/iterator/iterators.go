package iterator

func NewEmptyIterable[V any]() Iterable[V] {
	return BaseIterableFrom(func() Iterator[V] {
		return &EmptyIterator[V]{}
	})
}

func NewSliceIterable[V any](slice []V) Iterable[V] {
	return BaseIterableFrom(func() Iterator[V] {
		return &SliceIterator[V]{
			Slice: slice,
		}
	})
}

// FromSequence walks seq by index. The size is read on every step, so
// removals made while iterating shorten the walk instead of overrunning it.
func FromSequence[V any](seq Sequence[V]) Iterable[V] {
	return BaseIterableFrom(func() Iterator[V] {
		return &SequenceIterator[V]{
			Sequence: seq,
		}
	})
}

type EmptyIterator[V any] struct{}

func (*EmptyIterator[V]) Move() (V, bool) {
	return *new(V), false
}

type SliceIterator[V any] struct {
	Slice []V
	idx   int
}

func (s *SliceIterator[V]) Move() (V, bool) {
	if s.idx < len(s.Slice) {
		v := s.Slice[s.idx]
		s.idx++
		return v, true
	}
	return *new(V), false
}

type SequenceIterator[V any] struct {
	Sequence Sequence[V]
	idx      int
}

func (s *SequenceIterator[V]) Move() (V, bool) {
	if s.idx >= s.Sequence.Size() {
		return *new(V), false
	}

	v, ok := s.Sequence.Get(s.idx)
	s.idx++
	return v, ok
}
