package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ximtech/Vector/pkg/util"
)

func numbers(t *testing.T, capacity int, items ...string) *Vector[string] {
	t.Helper()
	v, err := NewOf[string](capacity, util.StringComparator, items...)
	require.NoError(t, err)
	return v
}

func TestUnion(t *testing.T) {
	v := numbers(t, 12, "1", "2", "3", "4", "5", "6")
	other := OrderedOf("2", "3", "6", "7", "8", "9")

	require.True(t, v.Union(other))
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}, v.Items())
	assert.Equal(t, []string{"2", "3", "6", "7", "8", "9"}, other.Items(), "other is untouched")

	empty := numbers(t, Capacity16)
	require.True(t, empty.Union(other))
	assert.Equal(t, []string{"2", "3", "6", "7", "8", "9"}, empty.Items())

	var absent *Vector[string]
	assert.False(t, absent.Union(other))
	assert.False(t, numbers(t, Capacity16).Union(absent))
}

func TestUnion_DuplicatesInOther(t *testing.T) {
	v := numbers(t, 8, "1")
	require.True(t, v.Union(OrderedOf("2", "2", "1", "3", "3")))
	assert.Equal(t, []string{"1", "2", "3"}, v.Items())
}

func TestUnion_FailsWithoutMutationWhenFull(t *testing.T) {
	v := numbers(t, 8, "1", "2", "3", "4", "5", "6")
	other := OrderedOf("2", "3", "6", "7", "8", "9")

	assert.False(t, v.Union(other))
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, v.Items())
}

func TestUnion_WithItself(t *testing.T) {
	v := numbers(t, 4, "1", "2")
	require.True(t, v.Union(v))
	assert.Equal(t, []string{"1", "2"}, v.Items())
}

func TestIntersect(t *testing.T) {
	v := numbers(t, 12, "A", "B", "C", "D", "E", "F")
	require.True(t, v.Intersect(OrderedOf("B", "D", "F", "G", "H", "K")))
	assert.Equal(t, []string{"B", "D", "F"}, v.Items())
	assert.Equal(t, 12, v.Capacity())

	disjoint := numbers(t, 4, "A")
	require.True(t, disjoint.Intersect(OrderedOf("Z")))
	assert.True(t, disjoint.IsEmpty())

	var absent *Vector[string]
	assert.False(t, absent.Intersect(v))
	assert.False(t, v.Intersect(absent))
	assert.Equal(t, []string{"B", "D", "F"}, v.Items())
}

func TestIntersect_KeepsOrderOfReceiver(t *testing.T) {
	v := OrderedOf(5, 1, 4, 2)
	require.True(t, v.Intersect(OrderedOf(1, 2, 5)))
	assert.Equal(t, []int{5, 1, 2}, v.Items())
}

func TestSubtract(t *testing.T) {
	v := numbers(t, 12, "1", "2", "3", "4", "5", "6")
	require.True(t, v.Subtract(OrderedOf("2", "3", "6", "7", "8", "9")))
	assert.Equal(t, []string{"1", "4", "5"}, v.Items())

	self := numbers(t, 4, "1", "2")
	require.True(t, self.Subtract(self))
	assert.True(t, self.IsEmpty())

	var absent *Vector[string]
	assert.False(t, absent.Subtract(v))
	assert.False(t, v.Subtract(absent))
}

func TestDisjunction(t *testing.T) {
	v := numbers(t, 12, "1", "2", "3", "4", "5", "6")
	require.True(t, v.Disjunction(OrderedOf("2", "3", "6", "7", "8", "9")))
	assert.Equal(t, []string{"1", "4", "5", "7", "8", "9"}, v.Items())

	var absent *Vector[string]
	assert.False(t, absent.Disjunction(v))
	assert.False(t, v.Disjunction(absent))
}

func TestDisjunction_ShrinksResult(t *testing.T) {
	v := OrderedOf(1, 2, 3, 4)
	require.True(t, v.Disjunction(OrderedOf(1, 2, 3)))
	assert.Equal(t, []int{4}, v.Items())
	_, ok := v.Get(1)
	assert.False(t, ok)

	self := OrderedOf(1, 2)
	require.True(t, self.Disjunction(self))
	assert.True(t, self.IsEmpty())
}

func TestDisjunction_FailsWithoutMutationWhenFull(t *testing.T) {
	v := OrderedOf(1, 2, 3)
	assert.False(t, v.Disjunction(OrderedOf(4)))
	assert.Equal(t, []int{1, 2, 3}, v.Items())
}
