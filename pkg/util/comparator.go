package util

import (
	"math"
	"strings"
	"unicode"

	"golang.org/x/exp/constraints"
)

// Comparator orders two values: negative when a < b, zero when they are
// equal and positive when a > b. Containers treat zero as equality.
type Comparator[T any] func(a, b T) int

func (c Comparator[T]) Equal(a, b T) bool {
	return c(a, b) == 0
}

func (c Comparator[T]) Less(a, b T) bool {
	return c(a, b) < 0
}

func OrderedComparator[T constraints.Ordered](one, two T) int {
	if one < two {
		return -1
	}
	if one == two {
		return 0
	}
	return 1
}

// FloatComparator orders NaN before every other value and treats two NaNs
// as equal, so it stays a total order.
func FloatComparator[T constraints.Float](one, two T) int {
	oneNaN, twoNaN := math.IsNaN(float64(one)), math.IsNaN(float64(two))
	switch {
	case oneNaN && twoNaN:
		return 0
	case oneNaN:
		return -1
	case twoNaN:
		return 1
	}
	return OrderedComparator(one, two)
}

func CharIgnoreCaseComparator(one, two rune) int {
	return OrderedComparator(unicode.ToLower(one), unicode.ToLower(two))
}

func StringComparator(one, two string) int {
	return strings.Compare(one, two)
}

// NaturalSortComparator compares strings so that embedded numbers sort by
// value: "file2" < "file10".
func NaturalSortComparator(one, two string) int {
	i, j := 0, 0
	for i < len(one) && j < len(two) {
		if isDigit(one[i]) && isDigit(two[j]) {
			si, sj := i, j
			for i < len(one) && isDigit(one[i]) {
				i++
			}
			for j < len(two) && isDigit(two[j]) {
				j++
			}
			if res := compareDigits(one[si:i], two[sj:j]); res != 0 {
				return res
			}
			continue
		}

		if one[i] != two[j] {
			return OrderedComparator(one[i], two[j])
		}
		i++
		j++
	}

	return OrderedComparator(len(one)-i, len(two)-j)
}

func compareDigits(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		return OrderedComparator(len(a), len(b))
	}
	return strings.Compare(a, b)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Reverse flips the order produced by cmp.
func Reverse[T any](cmp Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return cmp(b, a)
	}
}
