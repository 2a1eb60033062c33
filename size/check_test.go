package size

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckIndex(t *testing.T) {
	tests := []struct {
		name          string
		length, index Size
		want          Verdict
	}{
		{"first of one", Exact(1), Exact(0), InRange},
		{"last", Exact(6), Exact(5), InRange},
		{"at length", Exact(4), Exact(4), OutOfRange},
		{"empty", Exact(0), Exact(0), OutOfRange},
		{"beyond", Exact(2), Exact(9), OutOfRange},
		{"dynamic length", Dynamic(3), Exact(1), Undecidable},
		{"dynamic index", Exact(3), Dynamic(1), Undecidable},
		{"dynamic both", Dynamic(0), Dynamic(7), Undecidable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckIndex(tt.length, tt.index)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want != Undecidable, got.Decided())
		})
	}
}

func TestCheckIndexInclusive(t *testing.T) {
	tests := []struct {
		name          string
		length, index Size
		want          Verdict
	}{
		{"front of empty", Exact(0), Exact(0), InRange},
		{"end", Exact(4), Exact(4), InRange},
		{"middle", Exact(4), Exact(2), InRange},
		{"past end", Exact(5), Exact(6), OutOfRange},
		{"dynamic length", Dynamic(0), Exact(3), Undecidable},
		{"dynamic index", Exact(3), Dynamic(10), Undecidable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckIndexInclusive(tt.length, tt.index))
		})
	}
}

func TestInBounds(t *testing.T) {
	assert.True(t, InBounds(3, 2, false))
	assert.False(t, InBounds(3, 3, false))
	assert.True(t, InBounds(3, 3, true))
	assert.False(t, InBounds(3, 4, true))
	assert.False(t, InBounds(3, -1, false))
	assert.False(t, InBounds(3, -1, true))
}

func TestVerdictString(t *testing.T) {
	assert.Equal(t, "undecidable", Undecidable.String())
	assert.Equal(t, "in-range", InRange.String())
	assert.Equal(t, "out-of-range", OutOfRange.String())
	assert.Equal(t, "verdict(9)", Verdict(9).String())
}
