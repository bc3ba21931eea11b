package vector

import (
	"sync"

	"github.com/cockroachdb/errors"
)

var ErrNilReference = errors.New("singleton reference is nil")

// InitSingleton constructs a vector into *ref unless one is already there.
// The check and the construction are not atomic; use Shared when several
// goroutines may race on first use.
func InitSingleton[T any](ref **Vector[T], initialCapacity int) error {
	if ref == nil {
		return ErrNilReference
	}

	if *ref != nil {
		return nil
	}

	v, err := New[T](initialCapacity)
	if err != nil {
		return err
	}

	*ref = v
	return nil
}

// Shared lazily builds one vector and hands the same instance to every
// caller.
type Shared[T any] struct {
	once   sync.Once
	config *Config[T]
	vector *Vector[T]
	err    error
}

func NewShared[T any](initialCapacity int) *Shared[T] {
	return NewSharedWithConfig(&Config[T]{InitialCapacity: initialCapacity})
}

func NewSharedWithConfig[T any](config *Config[T]) *Shared[T] {
	return &Shared[T]{config: config}
}

func (s *Shared[T]) Get() (*Vector[T], error) {
	s.once.Do(func() {
		s.vector, s.err = NewWithConfig(s.config)
	})
	return s.vector, s.err
}
