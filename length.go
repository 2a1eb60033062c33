package typevec

import "github.com/hupe1980/typevec/size"

// Length is satisfied by every length tag: Zero, Succ[N] and Dyn.
type Length interface {
	// static returns the length fixed by the tag, or false for Dyn.
	static() (int, bool)
}

// Nat is satisfied by the statically known lengths Zero and Succ[N].
// Dyn does not satisfy Nat.
type Nat interface {
	Length
	nat()
}

// Zero is the static length 0.
type Zero struct{}

func (Zero) static() (int, bool) { return 0, true }
func (Zero) nat()                {}

// Succ is the static length N+1.
type Succ[N Nat] struct{}

func (Succ[N]) static() (int, bool) {
	var n N
	k, _ := n.static()
	return k + 1, true
}

func (Succ[N]) nat() {}

// Dyn tags a vector whose length is only known at runtime.
type Dyn struct{}

func (Dyn) static() (int, bool) { return 0, false }

// ValueOf returns the value of the static length N.
func ValueOf[N Nat]() int {
	var n N
	k, _ := n.static()
	return k
}

// sizeOf describes a vector of tag S holding n elements.
func sizeOf[S Length](n int) size.Size {
	var s S
	if k, ok := s.static(); ok {
		return size.Exact(k)
	}
	return size.Dynamic(n)
}
