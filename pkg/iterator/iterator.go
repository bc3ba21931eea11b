package iterator

type Iterable[V any] interface {
	Itr() Iterator[V]

	Take(n int) Iterable[V]

	Skip(n int) Iterable[V]

	TakeWhile(pred func(V) bool) Iterable[V]

	SkipWhile(pred func(V) bool) Iterable[V]

	Where(pred func(V) bool) Iterable[V]

	Reversed() Iterable[V]

	Any(pred func(V) bool) bool

	Every(pred func(V) bool) bool

	Count() int

	ForEach(f func(V))

	ToList() []V
}

type Iterator[V any] interface {
	Move() (V, bool)
}

// Sequence is anything addressable by position, which covers both container
// flavors.
type Sequence[V any] interface {
	Size() int
	Get(index int) (V, bool)
}
