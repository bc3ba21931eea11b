package capacity

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPolicy(t *testing.T) {
	p, err := NewPolicy(8, 0)
	require.NoError(t, err)
	assert.Equal(t, 8, p.Initial)
	assert.Equal(t, DefaultMax, p.Max)

	_, err = NewPolicy(0, 0)
	require.True(t, errors.Is(err, ErrInvalidCapacity))

	_, err = NewPolicy(-3, 0)
	require.True(t, errors.Is(err, ErrInvalidCapacity))

	_, err = NewPolicy(16, 8)
	require.True(t, errors.Is(err, ErrInvalidCapacity))
}

func TestPolicy_Grow(t *testing.T) {
	p, err := NewPolicy(1, 8)
	require.NoError(t, err)

	cases := []struct {
		name    string
		current int
		next    int
		ok      bool
	}{
		{"one_to_two", 1, 2, true},
		{"four_to_eight", 4, 8, true},
		{"above_max", 8, 8, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next, ok := p.Grow(tc.current)
			assert.Equal(t, tc.next, next)
			assert.Equal(t, tc.ok, ok)
		})
	}
}

func TestPolicy_GrowOverflow(t *testing.T) {
	p := Policy{Initial: 1, Max: math.MaxInt}
	next, ok := p.Grow(math.MaxInt/2 + 1)
	assert.False(t, ok)
	assert.Equal(t, math.MaxInt/2+1, next)
}

func TestPolicy_Shrink(t *testing.T) {
	p, err := NewPolicy(2, 0)
	require.NoError(t, err)

	assert.True(t, p.ShouldShrink(1, 8))
	assert.False(t, p.ShouldShrink(2, 8))
	assert.False(t, p.ShouldShrink(0, 2))

	next, ok := p.Shrink(8)
	assert.True(t, ok)
	assert.Equal(t, 4, next)

	next, ok = p.Shrink(3)
	assert.True(t, ok)
	assert.Equal(t, 2, next)

	next, ok = p.Shrink(2)
	assert.False(t, ok)
	assert.Equal(t, 2, next)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(1))
	require.True(t, errors.Is(Validate(0), ErrInvalidCapacity))
}
