package typevec

import (
	"cmp"
	"fmt"
	"iter"
	"log/slog"
	"slices"

	"github.com/hupe1980/typevec/size"
)

// buffer is the storage shared by the successive values of one vector.
// epoch advances each time a value is consumed; only the value holding the
// current epoch may touch data.
type buffer[T any] struct {
	data  []T
	epoch uint64
}

// Vect is a vector of T whose length is tracked by the tag S.
//
// The zero value of Vect[T, U0] and Vect[T, Dyn] is an empty vector.
type Vect[T any, S Length] struct {
	buf   *buffer[T]
	epoch uint64
}

// New creates an empty vector with static length 0.
func New[T any]() Vect[T, Zero] {
	return own[Zero](&buffer[T]{})
}

// WithCapacity creates an empty vector with static length 0 that can hold
// capacity elements before reallocating.
func WithCapacity[T any](capacity int) Vect[T, Zero] {
	return own[Zero](&buffer[T]{data: make([]T, 0, capacity)})
}

// NewDyn creates an empty vector with dynamic length.
func NewDyn[T any]() Vect[T, Dyn] {
	return own[Dyn](&buffer[T]{})
}

// DynWithCapacity creates an empty vector with dynamic length that can hold
// capacity elements before reallocating.
func DynWithCapacity[T any](capacity int) Vect[T, Dyn] {
	return own[Dyn](&buffer[T]{data: make([]T, 0, capacity)})
}

// FromSlice creates a dynamic-length vector backed by data.
// The vector takes ownership of data; the caller must not use it afterwards.
func FromSlice[T any](data []T) Vect[T, Dyn] {
	return own[Dyn](&buffer[T]{data: data})
}

func own[S Length, T any](b *buffer[T]) Vect[T, S] {
	return Vect[T, S]{buf: b, epoch: b.epoch}
}

// elems borrows the storage without consuming v.
func (v Vect[T, S]) elems() []T {
	if v.buf == nil {
		v.checkZero()
		return nil
	}
	if v.epoch != v.buf.epoch {
		panic(ErrConsumed)
	}
	return v.buf.data
}

// take consumes v and hands its storage to the caller.
func (v Vect[T, S]) take() *buffer[T] {
	if v.buf == nil {
		v.checkZero()
		return &buffer[T]{}
	}
	if v.epoch != v.buf.epoch {
		panic(ErrConsumed)
	}
	v.buf.epoch++
	return v.buf
}

func (v Vect[T, S]) checkZero() {
	var s S
	if k, ok := s.static(); ok && k != 0 {
		panic(ErrZeroValue)
	}
}

// Len returns the number of elements.
func (v Vect[T, S]) Len() int {
	return len(v.elems())
}

// Cap returns the capacity of the underlying storage.
func (v Vect[T, S]) Cap() int {
	return cap(v.elems())
}

// IsEmpty reports whether v holds no elements.
func (v Vect[T, S]) IsEmpty() bool {
	return v.Len() == 0
}

// Size returns the size model of v: Exact for static tags, Dynamic for Dyn.
func (v Vect[T, S]) Size() size.Size {
	return sizeOf[S](v.Len())
}

// Get returns the element at index, checked against the length at runtime.
func (v Vect[T, S]) Get(index int) (T, bool) {
	data := v.elems()
	if !size.InBounds(len(data), index, false) {
		var zero T
		return zero, false
	}
	return data[index], true
}

// All returns an iterator over the index/element pairs of v.
// Ranging over it after v has been consumed panics with ErrConsumed.
func (v Vect[T, S]) All() iter.Seq2[int, T] {
	v.elems()
	return func(yield func(int, T) bool) {
		data := v.elems()
		for i := 0; i < len(data); i++ {
			if !yield(i, data[i]) {
				return
			}
			data = v.elems()
		}
	}
}

// Clone returns an independent copy of v with the same tag.
func (v Vect[T, S]) Clone() Vect[T, S] {
	return own[S](&buffer[T]{data: slices.Clone(v.elems())})
}

// IntoDyn retags v as a dynamic-length vector. The storage is reused.
func (v Vect[T, S]) IntoDyn() Vect[T, Dyn] {
	return own[Dyn](v.take())
}

// IntoSlice consumes v and returns its elements.
func (v Vect[T, S]) IntoSlice() []T {
	b := v.take()
	data := b.data
	b.data = nil
	return data
}

func (v Vect[T, S]) String() string {
	return fmt.Sprint(v.elems())
}

// LogValue implements slog.LogValuer.
func (v Vect[T, S]) LogValue() slog.Value {
	s := v.Size()
	return slog.GroupValue(
		slog.Int("len", v.Len()),
		slog.String("kind", s.Kind().String()),
	)
}

// Equal reports whether a and b hold the same elements in the same order.
func Equal[T comparable, S Length](a, b Vect[T, S]) bool {
	return slices.Equal(a.elems(), b.elems())
}

// Compare orders a and b lexicographically, like slices.Compare.
func Compare[T cmp.Ordered, S Length](a, b Vect[T, S]) int {
	return slices.Compare(a.elems(), b.elems())
}

// IntoExact retags v with the static length N if v holds exactly N
// elements. Otherwise it returns false and v stays usable.
func IntoExact[N Nat, T any, S Length](v Vect[T, S]) (Vect[T, N], bool) {
	if v.Len() != ValueOf[N]() {
		return Vect[T, N]{}, false
	}
	return own[N](v.take()), true
}
