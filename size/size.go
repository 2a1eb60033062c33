package size

import (
	"errors"
	"fmt"
)

var (
	// ErrUnderflow is returned when decrementing an Exact zero size.
	// The transition has no valid form.
	ErrUnderflow = errors.New("size: decrement of exact zero")

	// ErrEmpty is returned when decrementing a Dynamic zero size.
	ErrEmpty = errors.New("size: decrement of empty dynamic size")
)

// Kind distinguishes Exact from Dynamic sizes.
type Kind uint8

const (
	// KindExact marks a size fixed ahead of use.
	KindExact Kind = iota
	// KindDynamic marks a size known only at runtime.
	KindDynamic
)

func (k Kind) String() string {
	switch k {
	case KindExact:
		return "exact"
	case KindDynamic:
		return "dynamic"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Size is a non-negative length or index tagged with its Kind.
//
// The zero value is Exact(0).
type Size struct {
	kind Kind
	n    int
}

// Exact returns a statically known size. It panics if n is negative.
func Exact(n int) Size {
	if n < 0 {
		panic(fmt.Sprintf("size: negative exact size %d", n))
	}
	return Size{kind: KindExact, n: n}
}

// Dynamic returns a runtime size. It panics if n is negative.
func Dynamic(n int) Size {
	if n < 0 {
		panic(fmt.Sprintf("size: negative dynamic size %d", n))
	}
	return Size{kind: KindDynamic, n: n}
}

// Kind returns the kind of s.
func (s Size) Kind() Kind { return s.kind }

// Value returns the numeric value of s.
func (s Size) Value() int { return s.n }

// IsDynamic reports whether s is only known at runtime.
func (s Size) IsDynamic() bool { return s.kind == KindDynamic }

// IsExact reports whether s is known ahead of use.
func (s Size) IsExact() bool { return s.kind == KindExact }

func (s Size) String() string {
	if s.IsDynamic() {
		return fmt.Sprintf("Dynamic(%d)", s.n)
	}
	return fmt.Sprintf("Exact(%d)", s.n)
}

// Increment returns s plus one, keeping its kind. It never fails.
func Increment(s Size) Size {
	return Size{kind: s.kind, n: s.n + 1}
}

// Decrement returns s minus one, keeping its kind.
//
// Exact(0) yields ErrUnderflow and Dynamic(0) yields ErrEmpty.
func Decrement(s Size) (Size, error) {
	if s.n == 0 {
		if s.IsDynamic() {
			return Size{}, ErrEmpty
		}
		return Size{}, ErrUnderflow
	}
	return Size{kind: s.kind, n: s.n - 1}, nil
}

// Add returns a + b. The result is Exact only if both operands are.
func Add(a, b Size) Size {
	if a.IsDynamic() || b.IsDynamic() {
		return Dynamic(a.n + b.n)
	}
	return Exact(a.n + b.n)
}
