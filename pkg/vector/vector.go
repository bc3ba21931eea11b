// Package vector implements a resizable array that doubles its storage when
// full and halves it when the load drops below a quarter, never going below
// the capacity it was created with.
//
// A nil or released *Vector behaves like an empty one: reads return zero
// values and writes report failure. Vectors are not safe for concurrent use.
package vector

import (
	"github.com/google/uuid"
	"github.com/ximtech/Vector/pkg/alloc"
	"github.com/ximtech/Vector/pkg/capacity"
	"github.com/ximtech/Vector/pkg/iterator"
	"go.uber.org/zap"
)

// Dynamic holds opaque values of any type.
type Dynamic = Vector[any]

type Vector[T any] struct {
	id     uuid.UUID
	items  []T
	size   int
	policy capacity.Policy

	allocator alloc.Allocator[T]
	logger    *zap.Logger
}

func New[T any](initialCapacity int) (*Vector[T], error) {
	return NewWithConfig(&Config[T]{InitialCapacity: initialCapacity})
}

func NewDynamic(initialCapacity int) (*Dynamic, error) {
	return New[any](initialCapacity)
}

func NewWithConfig[T any](config *Config[T]) (*Vector[T], error) {
	if config == nil {
		config = &Config[T]{}
	}
	config = config.withDefaults()

	policy, err := capacity.NewPolicy(config.InitialCapacity, config.MaxCapacity)
	if err != nil {
		return nil, err
	}

	items, err := config.Allocator.Alloc(policy.Initial)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	return &Vector[T]{
		id:        id,
		items:     items,
		policy:    policy,
		allocator: config.Allocator,
		logger:    config.Logger.With(zap.Stringer("vector", id)),
	}, nil
}

func (v *Vector[T]) live() bool {
	return v != nil && v.items != nil
}

func (v *Vector[T]) ID() uuid.UUID {
	if v == nil {
		return uuid.Nil
	}
	return v.id
}

func (v *Vector[T]) Add(item T) bool {
	if !v.live() {
		return false
	}

	if v.size >= len(v.items) && !v.grow() {
		return false
	}

	v.items[v.size] = item
	v.size++
	return true
}

func (v *Vector[T]) Get(index int) (T, bool) {
	if !v.live() || index < 0 || index >= v.size {
		return *new(T), false
	}
	return v.items[index], true
}

func (v *Vector[T]) Put(index int, item T) bool {
	if !v.live() || index < 0 || index >= v.size {
		return false
	}

	v.items[index] = item
	return true
}

// AddAt inserts before an existing element; use Add to append.
func (v *Vector[T]) AddAt(index int, item T) bool {
	if !v.live() || index < 0 || index >= v.size {
		return false
	}

	if v.size >= len(v.items) && !v.grow() {
		return false
	}

	copy(v.items[index+1:v.size+1], v.items[index:v.size])
	v.items[index] = item
	v.size++
	return true
}

func (v *Vector[T]) RemoveAt(index int) (T, bool) {
	if !v.live() || index < 0 || index >= v.size {
		return *new(T), false
	}

	item := v.items[index]
	copy(v.items[index:], v.items[index+1:v.size])
	v.size--
	v.items[v.size] = *new(T)

	if v.policy.ShouldShrink(v.size, len(v.items)) {
		v.shrink()
	}
	return item, true
}

func (v *Vector[T]) IsEmpty() bool {
	return v.Size() == 0
}

func (v *Vector[T]) IsNotEmpty() bool {
	return !v.IsEmpty()
}

func (v *Vector[T]) Size() int {
	if !v.live() {
		return 0
	}
	return v.size
}

func (v *Vector[T]) Capacity() int {
	if !v.live() {
		return 0
	}
	return len(v.items)
}

func (v *Vector[T]) InitialCapacity() int {
	if !v.live() {
		return 0
	}
	return v.policy.Initial
}

func (v *Vector[T]) Clear() {
	if !v.live() {
		return
	}

	clear(v.items[:v.size])
	v.size = 0
	for len(v.items) > v.policy.Initial {
		if !v.shrink() {
			break
		}
	}
}

// Release hands the backing storage back to the allocator. The vector acts
// as absent afterwards.
func (v *Vector[T]) Release() {
	if !v.live() {
		return
	}

	v.logger.Debug("releasing vector", zap.Int("capacity", len(v.items)))
	v.allocator.Free(v.items)
	v.items = nil
	v.size = 0
}

func (v *Vector[T]) Items() []T {
	if !v.live() {
		return nil
	}

	res := make([]T, v.size)
	copy(res, v.items[:v.size])
	return res
}

func (v *Vector[T]) Iter() iterator.Iterable[T] {
	return iterator.FromSequence[T](v)
}

func (v *Vector[T]) grow() bool {
	next, ok := v.policy.Grow(len(v.items))
	if !ok {
		v.logger.Warn("vector growth refused",
			zap.Int("capacity", len(v.items)),
			zap.Int("max", v.policy.Max))
		return false
	}

	return v.resize(next)
}

func (v *Vector[T]) shrink() bool {
	next, ok := v.policy.Shrink(len(v.items))
	if !ok {
		return false
	}

	return v.resize(next)
}

func (v *Vector[T]) resize(next int) bool {
	items, err := v.allocator.Alloc(next)
	if err != nil {
		v.logger.Warn("vector resize failed",
			zap.Int("capacity", len(v.items)),
			zap.Int("requested", next),
			zap.Error(err))
		return false
	}

	if v.size > next {
		v.size = next
	}
	copy(items, v.items[:v.size])
	v.allocator.Free(v.items)

	v.logger.Debug("vector resized",
		zap.Int("from", len(v.items)),
		zap.Int("to", next),
		zap.Int("size", v.size))
	v.items = items
	return true
}
