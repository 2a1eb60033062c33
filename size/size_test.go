package size

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	t.Run("exact", func(t *testing.T) {
		s := Exact(3)
		assert.Equal(t, 3, s.Value())
		assert.True(t, s.IsExact())
		assert.False(t, s.IsDynamic())
		assert.Equal(t, KindExact, s.Kind())
		assert.Equal(t, "Exact(3)", s.String())
	})

	t.Run("dynamic", func(t *testing.T) {
		s := Dynamic(5)
		assert.Equal(t, 5, s.Value())
		assert.True(t, s.IsDynamic())
		assert.Equal(t, "Dynamic(5)", s.String())
	})

	t.Run("zero value is exact zero", func(t *testing.T) {
		var s Size
		assert.Equal(t, Exact(0), s)
	})

	t.Run("negative panics", func(t *testing.T) {
		assert.Panics(t, func() { Exact(-1) })
		assert.Panics(t, func() { Dynamic(-1) })
	})

	t.Run("exact and dynamic differ", func(t *testing.T) {
		assert.NotEqual(t, Exact(2), Dynamic(2))
	})
}

func TestIncrement(t *testing.T) {
	assert.Equal(t, Exact(1), Increment(Exact(0)))
	assert.Equal(t, Exact(8), Increment(Exact(7)))
	assert.Equal(t, Dynamic(1), Increment(Dynamic(0)))
	assert.Equal(t, Dynamic(43), Increment(Dynamic(42)))
}

func TestDecrement(t *testing.T) {
	t.Run("exact nonzero", func(t *testing.T) {
		got, err := Decrement(Exact(4))
		require.NoError(t, err)
		assert.Equal(t, Exact(3), got)
	})

	t.Run("exact zero has no valid form", func(t *testing.T) {
		_, err := Decrement(Exact(0))
		assert.ErrorIs(t, err, ErrUnderflow)
	})

	t.Run("dynamic nonzero", func(t *testing.T) {
		got, err := Decrement(Dynamic(1))
		require.NoError(t, err)
		assert.Equal(t, Dynamic(0), got)
	})

	t.Run("dynamic zero is absent", func(t *testing.T) {
		_, err := Decrement(Dynamic(0))
		assert.ErrorIs(t, err, ErrEmpty)
	})
}

func TestIncrementDecrementRoundTrip(t *testing.T) {
	for _, s := range []Size{Exact(0), Exact(9), Dynamic(0), Dynamic(9)} {
		got, err := Decrement(Increment(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b Size
		want Size
	}{
		{"exact+exact", Exact(2), Exact(3), Exact(5)},
		{"exact+zero", Exact(2), Exact(0), Exact(2)},
		{"dynamic+exact", Dynamic(2), Exact(3), Dynamic(5)},
		{"exact+dynamic", Exact(2), Dynamic(3), Dynamic(5)},
		{"dynamic+dynamic", Dynamic(0), Dynamic(0), Dynamic(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Add(tt.a, tt.b))
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "exact", KindExact.String())
	assert.Equal(t, "dynamic", KindDynamic.String())
	assert.Equal(t, "kind(7)", Kind(7).String())
}
