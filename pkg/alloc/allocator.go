package alloc

import (
	"github.com/cockroachdb/errors"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/ximtech/Vector/pkg/capacity"
)

// Allocator hands out backing storage for containers and takes it back when
// a container shrinks, grows past it or is released.
type Allocator[T any] interface {
	Alloc(n int) ([]T, error)
	Free(buf []T)
}

type Heap[T any] struct{}

func NewHeap[T any]() *Heap[T] {
	return &Heap[T]{}
}

func (*Heap[T]) Alloc(n int) ([]T, error) {
	if err := capacity.Validate(n); err != nil {
		return nil, err
	}
	return make([]T, n), nil
}

func (*Heap[T]) Free([]T) {}

type PoolStats struct {
	Hits      int
	Misses    int
	Evictions int
}

// Pool recycles released buffers. Free buffers are grouped by length and the
// groups live in an LRU cache, so lengths that stop being requested get
// dropped first.
type Pool[T any] struct {
	classes  *lru.Cache[int, [][]T]
	perClass int
	stats    PoolStats
}

func NewPool[T any](classes int, perClass int) (*Pool[T], error) {
	if perClass < 1 {
		return nil, errors.Newf("pool needs room for at least one buffer per class, got %d", perClass)
	}

	p := &Pool[T]{perClass: perClass}
	cache, err := lru.NewWithEvict[int, [][]T](classes, func(key int, value [][]T) {
		p.stats.Evictions += len(value)
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating buffer pool")
	}

	p.classes = cache
	return p, nil
}

func (p *Pool[T]) Alloc(n int) ([]T, error) {
	if err := capacity.Validate(n); err != nil {
		return nil, err
	}

	free, ok := p.classes.Get(n)
	if !ok || len(free) == 0 {
		p.stats.Misses++
		return make([]T, n), nil
	}

	buf := free[len(free)-1]
	p.classes.Add(n, free[:len(free)-1])

	clear(buf)
	p.stats.Hits++
	return buf, nil
}

func (p *Pool[T]) Free(buf []T) {
	if len(buf) == 0 {
		return
	}

	buf = buf[:cap(buf)]
	free, _ := p.classes.Peek(len(buf))
	if len(free) >= p.perClass {
		return
	}

	clear(buf)
	p.classes.Add(len(buf), append(free, buf))
}

func (p *Pool[T]) Stats() PoolStats {
	return p.stats
}

// Cached reports how many free buffers of length n are waiting for reuse.
func (p *Pool[T]) Cached(n int) int {
	free, _ := p.classes.Peek(n)
	return len(free)
}
