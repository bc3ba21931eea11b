package capacity

import (
	"math"

	"github.com/cockroachdb/errors"
)

const DefaultMax = math.MaxInt32

var (
	ErrInvalidCapacity = errors.New("capacity must be at least 1")
)

func Validate(capacity int) error {
	if capacity < 1 {
		return errors.Wrapf(ErrInvalidCapacity, "got %d", capacity)
	}
	return nil
}

// Policy decides when a resizable container doubles or halves its backing
// storage. Capacity never drops below Initial and never rises above Max.
type Policy struct {
	Initial int
	Max     int
}

func NewPolicy(initial, max int) (Policy, error) {
	if err := Validate(initial); err != nil {
		return Policy{}, err
	}

	if max == 0 {
		max = DefaultMax
	}

	if max < initial {
		return Policy{}, errors.Wrapf(ErrInvalidCapacity, "max %d is below initial %d", max, initial)
	}

	return Policy{Initial: initial, Max: max}, nil
}

func (p Policy) Grow(current int) (int, bool) {
	next := current * 2
	if next <= current || next > p.Max {
		return current, false
	}
	return next, true
}

func (p Policy) ShouldShrink(size, current int) bool {
	return size*4 < current && current > p.Initial
}

func (p Policy) Shrink(current int) (int, bool) {
	if current <= p.Initial {
		return current, false
	}

	next := current / 2
	if next < p.Initial {
		next = p.Initial
	}
	return next, true
}
