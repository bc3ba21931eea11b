package util

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Hasher produces a hash code for a value. Containers accept one but never
// use it for lookups; equality always goes through the Comparator.
type Hasher[T any] func(T) int

func NumberHash[T constraints.Integer](value T) int {
	return int(value)
}

func Int64Hash(value int64) int {
	return int(int32(value ^ (value >> 32)))
}

func Uint64Hash(value uint64) int {
	return int(int32(value ^ (value >> 32)))
}

func Float64Hash(value float64) int {
	return Int64Hash(int64(math.Float64bits(value)))
}

func StringHash(value string) int {
	sum := HashBytes([]byte(value))
	return int(BytesToInt32(sum, 0))
}
