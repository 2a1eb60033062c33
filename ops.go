package typevec

import (
	"slices"

	"github.com/hupe1980/typevec/size"
)

// Push appends elem to a vector of static length N.
func Push[T any, N Nat](v Vect[T, N], elem T) Vect[T, Succ[N]] {
	return push[Succ[N]](v, elem)
}

// PushDyn appends elem to a dynamic-length vector.
func PushDyn[T any](v Vect[T, Dyn], elem T) Vect[T, Dyn] {
	return push[Dyn](v, elem)
}

func push[R Length, T any, S Length](v Vect[T, S], elem T) Vect[T, R] {
	b := v.take()
	b.data = append(b.data, elem)
	return own[R](b)
}

// Pop removes the last element of a vector of static length N+1.
// Popping a vector of static length 0 does not compile.
func Pop[T any, N Nat](v Vect[T, Succ[N]]) (Vect[T, N], T) {
	return removeUnchecked[N](v, v.Len()-1)
}

// PopDyn removes the last element of a dynamic-length vector.
// If v is empty it returns v unchanged and false.
func PopDyn[T any](v Vect[T, Dyn]) (Vect[T, Dyn], T, bool) {
	n := v.Len()
	if n == 0 {
		var zero T
		return v, zero, false
	}
	rest, elem := removeUnchecked[Dyn](v, n-1)
	return rest, elem, true
}

// GetAt returns the element at the static index I, checked against the
// length at runtime. Use Get0..Get7 when the length is static as well.
func GetAt[I Nat, T any, S Length](v Vect[T, S]) (T, bool) {
	return v.Get(ValueOf[I]())
}

// Insert inserts elem at index into a vector of static length N.
// It panics with *IndexError unless 0 <= index <= N.
func Insert[T any, N Nat](v Vect[T, N], index int, elem T) Vect[T, Succ[N]] {
	checkIndex(v, "insert", index, true)
	return insertUnchecked[Succ[N]](v, index, elem)
}

// InsertDyn inserts elem at index into a dynamic-length vector.
// It panics with *IndexError unless 0 <= index <= v.Len().
func InsertDyn[T any](v Vect[T, Dyn], index int, elem T) Vect[T, Dyn] {
	checkIndex(v, "insert", index, true)
	return insertUnchecked[Dyn](v, index, elem)
}

// InsertAt inserts elem at the static index I into a dynamic-length vector.
// It panics with *IndexError unless I <= v.Len().
func InsertAt[I Nat, T any](v Vect[T, Dyn], elem T) Vect[T, Dyn] {
	return InsertDyn(v, ValueOf[I](), elem)
}

// Remove removes the element at index from a vector of static length N+1.
// It panics with *IndexError unless 0 <= index <= N.
func Remove[T any, N Nat](v Vect[T, Succ[N]], index int) (Vect[T, N], T) {
	checkIndex(v, "remove", index, false)
	return removeUnchecked[N](v, index)
}

// RemoveDyn removes the element at index from a dynamic-length vector.
// It panics with *IndexError unless 0 <= index < v.Len().
func RemoveDyn[T any](v Vect[T, Dyn], index int) (Vect[T, Dyn], T) {
	checkIndex(v, "remove", index, false)
	return removeUnchecked[Dyn](v, index)
}

// RemoveAt removes the element at the static index I from a dynamic-length
// vector. It panics with *IndexError unless I < v.Len().
func RemoveAt[I Nat, T any](v Vect[T, Dyn]) (Vect[T, Dyn], T) {
	return RemoveDyn(v, ValueOf[I]())
}

// checkIndex runs before v is consumed, so a recovered panic leaves v usable.
func checkIndex[T any, S Length](v Vect[T, S], op string, index int, inclusive bool) {
	n := v.Len()
	if !size.InBounds(n, index, inclusive) {
		panic(&IndexError{Op: op, Index: index, Len: n, Inclusive: inclusive})
	}
}

// The unchecked helpers back the codepaths whose index is already proven in
// range, either by the tag pattern or by checkIndex.

func getUnchecked[T any, S Length](v Vect[T, S], index int) T {
	return v.elems()[index]
}

func insertUnchecked[R Length, T any, S Length](v Vect[T, S], index int, elem T) Vect[T, R] {
	b := v.take()
	b.data = slices.Insert(b.data, index, elem)
	return own[R](b)
}

func removeUnchecked[R Length, T any, S Length](v Vect[T, S], index int) (Vect[T, R], T) {
	b := v.take()
	elem := b.data[index]
	b.data = slices.Delete(b.data, index, index+1)
	return own[R](b), elem
}
