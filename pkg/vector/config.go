package vector

import (
	"github.com/ximtech/Vector/pkg/alloc"
	"go.uber.org/zap"
)

type Config[T any] struct {
	InitialCapacity int
	// MaxCapacity caps growth. Zero means capacity.DefaultMax.
	MaxCapacity int
	Allocator   alloc.Allocator[T]
	Logger      *zap.Logger
}

func (c *Config[T]) withDefaults() *Config[T] {
	res := *c
	if res.Allocator == nil {
		res.Allocator = alloc.NewHeap[T]()
	}
	if res.Logger == nil {
		res.Logger = zap.NewNop()
	}
	return &res
}
