// Package typevec provides a vector whose length is part of its type.
//
// A Vect[T, S] owns a contiguous sequence of T. The length tag S is either a
// static length built from Zero and Succ (aliased as U0, U1, ...) or Dyn, a
// length only known at runtime. Every operation derives the tag of its result
// from the tag of its input, so length bookkeeping is checked by the compiler
// whenever the length is known ahead of use.
//
// # Quick Start
//
//	v := typevec.New[int]()        // Vect[int, U0]
//	v1 := typevec.Push(v, 3)       // Vect[int, U1]
//	v2 := typevec.Push(v1, 1)      // Vect[int, U2]
//	v1, x := typevec.Pop(v2)       // x == 1
//	_ = typevec.Get0(v1)           // 3, no runtime check
//
//	// typevec.Pop(v) does not compile: v is statically empty.
//
// # Static and Dynamic Codepaths
//
// Each operation has a pre-verified form and a runtime-checked form, chosen by
// the static type the caller holds:
//
//	Static length, static index:  Get0..Get7, Insert0..Insert7, Remove0..Remove7
//	Static length, runtime index: Insert, Remove, (Vect).Get
//	Runtime length:               PushDyn, PopDyn, InsertDyn, RemoveDyn, (Vect).Get,
//	                              GetAt, InsertAt, RemoveAt
//
// Pre-verified forms return values directly and fail to compile when the
// index is out of range. Runtime-checked accessors report absence with a
// boolean; Insert and Remove treat an out-of-range index as a programmer
// error and panic with *IndexError.
//
// # Ownership
//
// Operations that change the length consume their input and return a new
// Vect sharing the same storage. Using a consumed Vect again panics with
// ErrConsumed, so no two live values ever alias the storage. A Vect is not
// safe for concurrent use.
//
// # Conversions
//
//	d := v.IntoDyn()                          // Vect[T, Dyn]
//	s, ok := typevec.IntoExact[typevec.U3](d) // ok only if d.Len() == 3
//	raw := s.IntoSlice()
package typevec

//go:generate go run ./internal/cmd/vectgen --output . --package typevec --max-index 7 --max-length 16
