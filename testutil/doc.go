// Package testutil provides testing utilities for typevec.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source for generating operation sequences and
// a plain-slice reference model to check vectors against.
//
// # Random Operation Sequences
//
//	rng := testutil.NewRNG(seed)
//	values := rng.Ints(16, 100) // 16 values in [0, 100)
//	i := rng.Intn(n + 1)        // an insertion position
//
// # Reference Model
//
//	var m testutil.Model[int]
//	m.Insert(0, 7)
//	x, ok := m.Pop()
package testutil
