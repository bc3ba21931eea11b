// Package buffer implements fixed-capacity arrays bound to a comparator.
//
// Capacity is chosen once at construction and never changes; operations
// that would need more room report failure instead of growing. Equality
// everywhere in the package means the comparator returned zero.
//
// A nil *Vector is treated as an absent container: reads return zero values
// and writes report failure.
package buffer

import (
	"github.com/cockroachdb/errors"
	"github.com/ximtech/Vector/pkg/capacity"
	"github.com/ximtech/Vector/pkg/iterator"
	"github.com/ximtech/Vector/pkg/util"
	"golang.org/x/exp/constraints"
)

const (
	Capacity4    = 4
	Capacity8    = 8
	Capacity16   = 16
	Capacity32   = 32
	Capacity64   = 64
	Capacity128  = 128
	Capacity256  = 256
	Capacity512  = 512
	Capacity1024 = 1024
)

var (
	ErrNilComparator    = errors.New("comparator is required")
	ErrCapacityExceeded = errors.New("items do not fit into capacity")
)

type Config[T any] struct {
	Capacity   int
	Comparator util.Comparator[T]
	// Hasher is optional and only feeds HashCode.
	Hasher util.Hasher[T]
}

type Vector[T any] struct {
	items []T
	size  int
	cmp   util.Comparator[T]
	hash  util.Hasher[T]
}

func New[T any](capacity int, cmp util.Comparator[T]) (*Vector[T], error) {
	return NewWithConfig(&Config[T]{Capacity: capacity, Comparator: cmp})
}

func NewWithConfig[T any](config *Config[T]) (*Vector[T], error) {
	if config == nil {
		return nil, errors.Wrap(capacity.ErrInvalidCapacity, "missing config")
	}

	if err := capacity.Validate(config.Capacity); err != nil {
		return nil, err
	}

	if config.Comparator == nil {
		return nil, ErrNilComparator
	}

	return &Vector[T]{
		items: make([]T, config.Capacity),
		cmp:   config.Comparator,
		hash:  config.Hasher,
	}, nil
}

// NewOf creates a vector of the given capacity preloaded with items.
func NewOf[T any](capacity int, cmp util.Comparator[T], items ...T) (*Vector[T], error) {
	v, err := New(capacity, cmp)
	if err != nil {
		return nil, err
	}

	if !v.FromSlice(items) {
		return nil, errors.Wrapf(ErrCapacityExceeded, "%d items, capacity %d", len(items), capacity)
	}
	return v, nil
}

// Of creates a vector sized exactly for items (at least one slot). It
// returns nil when cmp is nil.
func Of[T any](cmp util.Comparator[T], items ...T) *Vector[T] {
	v, err := NewOf(max(len(items), 1), cmp, items...)
	if err != nil {
		return nil
	}
	return v
}

func NewOrdered[T constraints.Ordered](capacity int) (*Vector[T], error) {
	return New[T](capacity, util.OrderedComparator[T])
}

func OrderedOf[T constraints.Ordered](items ...T) *Vector[T] {
	return Of[T](util.OrderedComparator[T], items...)
}

func (v *Vector[T]) Add(item T) bool {
	if v == nil || v.size >= len(v.items) {
		return false
	}

	v.items[v.size] = item
	v.size++
	return true
}

func (v *Vector[T]) Get(index int) (T, bool) {
	if v == nil || index < 0 || index >= v.size {
		return *new(T), false
	}
	return v.items[index], true
}

func (v *Vector[T]) GetOrDefault(index int, fallback T) T {
	if item, ok := v.Get(index); ok {
		return item
	}
	return fallback
}

func (v *Vector[T]) Put(index int, item T) bool {
	if v == nil || index < 0 || index >= v.size {
		return false
	}

	v.items[index] = item
	return true
}

// AddAt inserts item before index. index == Size appends.
func (v *Vector[T]) AddAt(index int, item T) bool {
	if v == nil || index < 0 || index > v.size || v.size >= len(v.items) {
		return false
	}

	copy(v.items[index+1:v.size+1], v.items[index:v.size])
	v.items[index] = item
	v.size++
	return true
}

func (v *Vector[T]) RemoveAt(index int) (T, bool) {
	if v == nil || index < 0 || index >= v.size {
		return *new(T), false
	}

	item := v.items[index]
	copy(v.items[index:], v.items[index+1:v.size])
	v.size--
	v.items[v.size] = *new(T)
	return item, true
}

func (v *Vector[T]) IsEmpty() bool {
	return v.Size() == 0
}

func (v *Vector[T]) IsNotEmpty() bool {
	return !v.IsEmpty()
}

func (v *Vector[T]) Size() int {
	if v == nil {
		return 0
	}
	return v.size
}

func (v *Vector[T]) Capacity() int {
	if v == nil {
		return 0
	}
	return len(v.items)
}

func (v *Vector[T]) Remaining() int {
	return v.Capacity() - v.Size()
}

func (v *Vector[T]) Clear() {
	if v == nil {
		return
	}

	clear(v.items[:v.size])
	v.size = 0
}

// AddAll appends every element of src, or nothing when src does not fit.
func (v *Vector[T]) AddAll(src *Vector[T]) bool {
	if v == nil || src == nil {
		return false
	}
	return v.FromSlice(src.items[:src.size])
}

// FromSlice appends items in order, or nothing when they do not fit.
func (v *Vector[T]) FromSlice(items []T) bool {
	if v == nil || len(items) > v.Remaining() {
		return false
	}

	copy(v.items[v.size:], items)
	v.size += len(items)
	return true
}

func (v *Vector[T]) Items() []T {
	if v == nil {
		return nil
	}

	res := make([]T, v.size)
	copy(res, v.items[:v.size])
	return res
}

func (v *Vector[T]) Iter() iterator.Iterable[T] {
	return iterator.FromSequence[T](v)
}

func (v *Vector[T]) Comparator() util.Comparator[T] {
	if v == nil {
		return nil
	}
	return v.cmp
}

// HashCode folds element hashes together as 31*h + hash(e). It is zero when
// the vector has no hasher.
func (v *Vector[T]) HashCode() int {
	if v == nil || v.hash == nil {
		return 0
	}

	h := 1
	for _, item := range v.items[:v.size] {
		h = 31*h + v.hash(item)
	}
	return h
}
